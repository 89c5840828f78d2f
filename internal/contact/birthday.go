package contact

import (
	"errors"
	"fmt"
	"time"
)

// BirthdayLayout is the accepted birthday text form, DD.MM.YYYY.
const BirthdayLayout = "02.01.2006"

// ErrInvalidBirthday indicates birthday text is not a valid DD.MM.YYYY date.
var ErrInvalidBirthday = errors.New("contact: invalid date format, use DD.MM.YYYY")

// Birthday is a parsed calendar date stored at UTC midnight.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses value in BirthdayLayout. Day and month must be two
// digits, the year four, and the date must exist on the calendar.
func ParseBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, value)
	}
	return Birthday{date: t}, nil
}

// Time returns the birthday as a time.Time at UTC midnight.
func (b Birthday) Time() time.Time {
	return b.date
}

// Month returns the birthday month.
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Day returns the birthday day of month.
func (b Birthday) Day() int {
	return b.date.Day()
}

// IsLeapDay reports whether the birthday falls on February 29.
func (b Birthday) IsLeapDay() bool {
	return b.date.Month() == time.February && b.date.Day() == 29
}

// String formats the birthday in BirthdayLayout.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
