// Package contact defines a single address book entry: a name, its phone
// numbers and an optional birthday.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// birthdayUnset is rendered by String when no birthday was added.
const birthdayUnset = "Not specified"

// ErrEmptyName indicates a contact name is empty or only whitespace.
var ErrEmptyName = errors.New("contact: name cannot be empty")

// ValidateName returns ErrEmptyName if name has no visible characters.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %q", ErrEmptyName, name)
	}
	return nil
}

// Record is one contact. The name is fixed at construction; phones and the
// birthday are validated on every write.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with no phones and no birthday.
// The name is stored as given; callers check it with ValidateName first.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// AddPhone appends value to the phone list.
// Returns ErrInvalidPhone without modifying the record if value is not 10 digits.
// Duplicates are allowed.
func (r *Record) AddPhone(value string) error {
	p, err := ParsePhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value. Missing values are ignored.
func (r *Record) RemovePhone(value string) {
	i := r.indexOf(value)
	if i < 0 {
		return
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
}

// EditPhone replaces the first phone equal to oldValue with newValue in place.
// newValue is validated before the lookup, so an invalid replacement fails even
// when oldValue is absent. A missing oldValue is otherwise a no-op.
func (r *Record) EditPhone(oldValue, newValue string) error {
	p, err := ParsePhone(newValue)
	if err != nil {
		return err
	}
	if i := r.indexOf(oldValue); i >= 0 {
		r.phones[i] = p
	}
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday parses value as DD.MM.YYYY and replaces any existing birthday.
// Returns ErrInvalidBirthday and keeps the previous birthday on failure.
func (r *Record) AddBirthday(value string) error {
	b, err := ParseBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one was set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record for display, e.g.
// "Contact name: John, phones: 1234567890; 5555555555, birthday: 01.05.1990".
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := birthdayUnset
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}

func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if p.value == value {
			return i
		}
	}
	return -1
}
