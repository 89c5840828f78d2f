package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// renderDetail renders one contact for the right pane.
func renderDetail(r *contact.Record, today time.Time, policy book.LeapDayPolicy) string {
	if r == nil {
		return mutedText.Render("No contact selected")
	}

	var b strings.Builder
	b.WriteString(headingText.Render(r.Name()))
	b.WriteString("\n\nPhones:")
	phones := r.Phones()
	if len(phones) == 0 {
		b.WriteString("\n  " + mutedText.Render("none"))
	}
	for _, p := range phones {
		b.WriteString("\n  " + p.String())
	}

	b.WriteString("\n\nBirthday: ")
	bd, ok := r.Birthday()
	if !ok {
		b.WriteString(mutedText.Render("Not specified"))
		return b.String()
	}
	next := book.NextOccurrence(bd, today, policy)
	age := next.Year() - bd.Time().Year()
	fmt.Fprintf(&b, "%s\nNext: %s (turns %d) %s", bd, next.Format("02.01.2006"), age, DaysBadge(daysBetween(today, next)))
	return b.String()
}

// renderBirthdays renders the upcoming birthdays list for the right pane.
func renderBirthdays(list []book.Upcoming, today time.Time, windowDays int) string {
	var b strings.Builder
	b.WriteString(headingText.Render(fmt.Sprintf("Upcoming birthdays (%d days)", windowDays)))
	if len(list) == 0 {
		b.WriteString("\n\n" + mutedText.Render("None"))
		return b.String()
	}
	b.WriteByte('\n')
	for _, u := range list {
		fmt.Fprintf(&b, "\n%s  %s  %s", u.Date.Format("02.01"), u.Name, DaysBadge(daysBetween(today, u.Date)))
	}
	return b.String()
}

// daysBetween counts calendar days from a to b, ignoring time of day and zone offsets.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
