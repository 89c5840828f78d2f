package dashboard

import (
	"fmt"
	"strings"
)

// confirmState holds the data needed for the delete confirmation screen.
type confirmState struct {
	name   string
	phones int
}

// View renders the confirmation screen.
func (cs confirmState) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete %s?\n", cs.name)
	switch cs.phones {
	case 0:
		b.WriteString("\n  No phone numbers will be lost.")
	case 1:
		b.WriteString("\n  1 phone number will be removed with it.")
	default:
		fmt.Fprintf(&b, "\n  %d phone numbers will be removed with it.", cs.phones)
	}
	b.WriteString("\n\n  [Enter] Confirm   [Esc] Cancel")
	return b.String()
}
