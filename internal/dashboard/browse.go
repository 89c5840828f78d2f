package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// browseState manages the contact name list and cursor for the left pane.
type browseState struct {
	names  []string
	cursor int
}

// newBrowseState returns a browseState over names with the cursor on the first.
func newBrowseState(names []string) browseState {
	return browseState{names: append([]string(nil), names...)}
}

// Update processes key messages for the browse state.
func (bs browseState) Update(msg tea.Msg) browseState {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(bs.names) == 0 {
		return bs
	}
	switch km.String() {
	case "up", "k":
		bs.cursor--
		if bs.cursor < 0 {
			bs.cursor = len(bs.names) - 1
		}
	case "down", "j":
		bs.cursor++
		if bs.cursor >= len(bs.names) {
			bs.cursor = 0
		}
	}
	return bs
}

// withNames replaces the list, keeping the cursor on the same index when
// possible and clamping it otherwise.
func (bs browseState) withNames(names []string) browseState {
	bs.names = append([]string(nil), names...)
	if bs.cursor >= len(bs.names) {
		bs.cursor = len(bs.names) - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	return bs
}

// SelectedName returns the contact name at the cursor, or "" if the list is empty.
func (bs browseState) SelectedName() string {
	if len(bs.names) == 0 || bs.cursor < 0 || bs.cursor >= len(bs.names) {
		return ""
	}
	return bs.names[bs.cursor]
}

// View renders the contact list. Rows beyond height are scrolled so the
// cursor stays visible.
func (bs browseState) View(height int) string {
	if len(bs.names) == 0 {
		return mutedText.Render("No contacts")
	}

	start := 0
	if height > 0 && bs.cursor >= height {
		start = bs.cursor - height + 1
	}
	end := len(bs.names)
	if height > 0 && end-start > height {
		end = start + height
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		if i == bs.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(bs.names[i])
	}
	return b.String()
}
