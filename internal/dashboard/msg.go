// Package dashboard implements a two-pane TUI for browsing an address book:
// contact names on the left, the selected contact or upcoming birthdays on
// the right.
package dashboard

// Mode represents the current dashboard view mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Browsing contacts with detail pane.
	ModeConfirm             // Asking before deleting the selected contact.
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Left pane (contact list) has focus.
	PaneRight              // Right pane (detail viewport) has focus.
)

// RightView selects what the right pane shows.
type RightView int

const (
	ViewDetail    RightView = iota // Selected contact.
	ViewBirthdays                  // Upcoming birthdays across the book.
)

// ContactDeletedMsg is emitted after a confirmed delete.
type ContactDeletedMsg struct {
	Name string
}
