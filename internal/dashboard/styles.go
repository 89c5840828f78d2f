package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MinLeftWidth is the minimum character width for the left pane.
const MinLeftWidth = 28

var (
	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	headingText = lipgloss.NewStyle().Bold(true)
	statusText  = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
)

// Badge colors for how soon a birthday is: today, within two days, later.
var (
	soonToday = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	soonNear  = lipgloss.AdaptiveColor{Light: "208", Dark: "208"}
	soonLater = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
)

// DaysBadge returns a styled label like "today", "tomorrow" or "in 5 days".
// Negative values render as a muted "passed".
func DaysBadge(days int) string {
	switch {
	case days < 0:
		return mutedText.Render("passed")
	case days == 0:
		return lipgloss.NewStyle().Foreground(soonToday).Bold(true).Render("today")
	case days == 1:
		return lipgloss.NewStyle().Foreground(soonNear).Render("tomorrow")
	case days == 2:
		return lipgloss.NewStyle().Foreground(soonNear).Render("in 2 days")
	default:
		return lipgloss.NewStyle().Foreground(soonLater).Render(fmt.Sprintf("in %d days", days))
	}
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// PaneWidths calculates the left and right pane widths from a total width.
// Left pane gets 1/3 (minimum MinLeftWidth), right pane gets the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 3
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
