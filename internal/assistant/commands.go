package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// phoneRetryPrompt is shown when "add" asks again for a phone number.
const phoneRetryPrompt = "Phone number must be 10 digits.> "

// Builtins returns a Registry with every built-in command.
func Builtins() *Registry {
	r := NewRegistry()
	r.Register("hello", cmdHello)
	r.Register("help", cmdHelp)
	r.Register("add", cmdAdd)
	r.Register("change", cmdChange)
	r.Register("phone", cmdPhone)
	r.Register("remove-phone", cmdRemovePhone)
	r.Register("all", cmdAll)
	r.Register("add-birthday", cmdAddBirthday)
	r.Register("show-birthday", cmdShowBirthday)
	r.Register("birthdays", cmdBirthdays)
	r.Register("delete", cmdDelete)
	return r
}

func cmdHello(_ context.Context, _ *Session, _ []string) (string, error) {
	return "How can I help you?", nil
}

func cmdHelp(_ context.Context, s *Session, _ []string) (string, error) {
	return "Commands: " + strings.Join(s.registry.Available(), ", ") + ", close, exit", nil
}

// cmdAdd creates the contact if needed and appends a phone. An invalid phone
// is asked for again, up to the session's phone attempts; the contact is only
// created once a valid phone is given.
func cmdAdd(ctx context.Context, s *Session, args []string) (string, error) {
	if len(args) != 2 {
		return "", &UsageError{Usage: "add <name> <phone>"}
	}
	name := args[0]
	if err := contact.ValidateName(name); err != nil {
		return "", err
	}
	phone, err := s.promptPhone(ctx, args[1])
	if err != nil {
		return "", err
	}

	r, exists := s.book.Find(name)
	if !exists {
		r = contact.NewRecord(name)
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	if !exists {
		s.book.AddRecord(r)
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

func cmdChange(_ context.Context, s *Session, args []string) (string, error) {
	if len(args) != 3 {
		return "", &UsageError{Usage: "change <name> <old phone> <new phone>"}
	}
	r, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func cmdPhone(_ context.Context, s *Session, args []string) (string, error) {
	if len(args) != 1 {
		return "", &UsageError{Usage: "phone <name>"}
	}
	r, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phones.", r.Name()), nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", r.Name(), strings.Join(values, "; ")), nil
}

func cmdRemovePhone(_ context.Context, s *Session, args []string) (string, error) {
	if len(args) != 2 {
		return "", &UsageError{Usage: "remove-phone <name> <phone>"}
	}
	r, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	r.RemovePhone(args[1])
	return "Contact updated.", nil
}

func cmdAll(_ context.Context, s *Session, _ []string) (string, error) {
	records := s.book.Records()
	if len(records) == 0 {
		return "No contacts.", nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func cmdAddBirthday(_ context.Context, s *Session, args []string) (string, error) {
	if len(args) != 2 {
		return "", &UsageError{Usage: "add-birthday <name> <DD.MM.YYYY>"}
	}
	r, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func cmdShowBirthday(_ context.Context, s *Session, args []string) (string, error) {
	if len(args) != 1 {
		return "", &UsageError{Usage: "show-birthday <name>"}
	}
	r, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	b, ok := r.Birthday()
	if !ok {
		return fmt.Sprintf("%s has no birthday set.", r.Name()), nil
	}
	return fmt.Sprintf("%s: %s", r.Name(), b), nil
}

func cmdBirthdays(_ context.Context, s *Session, args []string) (string, error) {
	days := s.windowDays
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", &UsageError{Usage: "birthdays [days]"}
		}
		days = n
	default:
		return "", &UsageError{Usage: "birthdays [days]"}
	}
	return FormatUpcoming(s.book.UpcomingBirthdays(days)), nil
}

// cmdDelete reports a missing contact to the user; the book itself treats
// deleting an unknown name as a no-op.
func cmdDelete(_ context.Context, s *Session, args []string) (string, error) {
	if len(args) != 1 {
		return "", &UsageError{Usage: "delete <name>"}
	}
	if _, err := s.find(args[0]); err != nil {
		return "", err
	}
	s.book.Delete(args[0])
	return "Contact deleted.", nil
}

// FormatUpcoming renders upcoming birthdays as "Name: DD.MM" lines under a header.
func FormatUpcoming(list []book.Upcoming) string {
	if len(list) == 0 {
		return "No upcoming birthdays."
	}
	var b strings.Builder
	b.WriteString("Upcoming birthdays:")
	for _, u := range list {
		fmt.Fprintf(&b, "\n%s: %s", u.Name, u.Date.Format("02.01"))
	}
	return b.String()
}

func (s *Session) find(name string) (*contact.Record, error) {
	r, ok := s.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrContactNotFound, name)
	}
	return r, nil
}

// promptPhone returns value if it is a valid phone, otherwise asks for a new
// one until the attempts run out or input ends, in which case the last
// validation error is returned. Read failures and cancellation are returned
// as an *inputError so Run can stop.
func (s *Session) promptPhone(ctx context.Context, value string) (string, error) {
	for attempt := 1; ; attempt++ {
		err := contact.ValidatePhone(value)
		if err == nil {
			return value, nil
		}
		if attempt >= s.phoneAttempts {
			return "", err
		}
		next, askErr := s.ask(ctx, phoneRetryPrompt)
		if errors.Is(askErr, io.EOF) {
			return "", err
		}
		if askErr != nil {
			return "", &inputError{err: askErr}
		}
		value = next
	}
}
