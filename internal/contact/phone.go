package contact

import (
	"errors"
	"fmt"
)

// PhoneLength is the exact number of digits a phone number must have.
const PhoneLength = 10

// ErrInvalidPhone indicates a phone value is not exactly PhoneLength decimal digits.
var ErrInvalidPhone = errors.New("contact: phone number must be 10 digits")

// Phone is a validated phone number. The zero value is not a valid phone.
type Phone struct {
	value string
}

// ParsePhone validates value and returns it as a Phone.
// No normalization is done: separators, spaces and a leading + are rejected.
func ParsePhone(value string) (Phone, error) {
	if err := ValidatePhone(value); err != nil {
		return Phone{}, err
	}
	return Phone{value: value}, nil
}

// ValidatePhone reports whether value is exactly PhoneLength ASCII digits.
func ValidatePhone(value string) error {
	if len(value) != PhoneLength {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, value)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidPhone, value)
		}
	}
	return nil
}

// String returns the stored digits.
func (p Phone) String() string {
	return p.value
}
