package book

import (
	"fmt"
	"time"

	"github.com/smileynet/rolodex/internal/contact"
)

// LeapDayPolicy decides where a February 29 birthday lands in a common year.
type LeapDayPolicy string

const (
	// LeapDayFeb28 clamps the occurrence to February 28.
	LeapDayFeb28 LeapDayPolicy = "feb28"
	// LeapDayMar1 rolls the occurrence forward to March 1.
	LeapDayMar1 LeapDayPolicy = "mar1"
)

// ParseLeapDayPolicy converts a config value into a LeapDayPolicy.
// An empty string selects LeapDayFeb28.
func ParseLeapDayPolicy(s string) (LeapDayPolicy, error) {
	switch LeapDayPolicy(s) {
	case "", LeapDayFeb28:
		return LeapDayFeb28, nil
	case LeapDayMar1:
		return LeapDayMar1, nil
	default:
		return "", fmt.Errorf("book: unknown leap day policy %q (want %q or %q)", s, LeapDayFeb28, LeapDayMar1)
	}
}

// occurrenceIn returns the birthday's date in year, applying policy when the
// birthday is February 29 and year is not a leap year.
func occurrenceIn(b contact.Birthday, year int, loc *time.Location, policy LeapDayPolicy) time.Time {
	month, day := b.Month(), b.Day()
	if b.IsLeapDay() && !isLeap(year) {
		if policy == LeapDayMar1 {
			month, day = time.March, 1
		} else {
			day = 28
		}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
