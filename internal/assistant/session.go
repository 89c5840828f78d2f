// Package assistant implements the interactive command shell over an address
// book: command parsing, user-facing replies, and re-prompting for input the
// book rejects.
package assistant

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// ErrContactNotFound indicates a command named a contact that is not in the book.
var ErrContactNotFound = errors.New("assistant: contact not found")

// Greeting is written once when Run starts.
const Greeting = "Welcome to the assistant bot!"

// Farewell is the reply to close and exit.
const Farewell = "Good bye!"

// Session holds the book and settings for one shell conversation.
type Session struct {
	book          *book.Book
	registry      *Registry
	prompt        string
	windowDays    int
	phoneAttempts int

	// Set only while Run is active.
	lines <-chan inputLine
	out   io.Writer
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the text written before each command is read.
func WithPrompt(p string) Option {
	return func(s *Session) {
		s.prompt = p
	}
}

// WithWindowDays sets the default window for the birthdays command.
func WithWindowDays(days int) Option {
	return func(s *Session) {
		s.windowDays = days
	}
}

// WithPhoneAttempts sets how many phone values "add" will try, including the
// one given on the command line, before giving up. Values below 1 mean 1.
func WithPhoneAttempts(n int) Option {
	return func(s *Session) {
		if n < 1 {
			n = 1
		}
		s.phoneAttempts = n
	}
}

// withRegistry replaces the built-in command set.
func withRegistry(r *Registry) Option {
	return func(s *Session) {
		s.registry = r
	}
}

// New creates a Session over b with the built-in commands.
func New(b *book.Book, opts ...Option) *Session {
	s := &Session{
		book:          b,
		registry:      Builtins(),
		prompt:        "Enter a command: ",
		windowDays:    book.DefaultWindowDays,
		phoneAttempts: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseInput splits a command line into a lower-cased command and its arguments.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Execute runs one command line and returns the reply. quit reports whether
// the line asked to end the session. Errors are turned into replies.
func (s *Session) Execute(ctx context.Context, line string) (reply string, quit bool) {
	reply, quit, err := s.execute(ctx, line)
	if err != nil {
		return Reply(err), false
	}
	return reply, quit
}

// execute is Execute for Run: a failure reading follow-up input from a
// handler is returned as err instead of being turned into a reply.
func (s *Session) execute(ctx context.Context, line string) (string, bool, error) {
	cmd, args := ParseInput(line)
	switch cmd {
	case "":
		return "", false, nil
	case "close", "exit":
		return Farewell, true, nil
	}

	h, err := s.registry.Lookup(cmd)
	if err != nil {
		return Reply(err), false, nil
	}
	out, err := h(ctx, s, args)
	var ie *inputError
	if errors.As(err, &ie) {
		return "", false, ie.err
	}
	if err != nil {
		return Reply(err), false, nil
	}
	return out, false, nil
}

// Run reads commands from in and writes replies to out until close or exit,
// end of input, or ctx cancellation. It returns ctx.Err() when cancelled, the
// read error when input fails, and nil otherwise.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.lines = readLines(ctx, in)
	s.out = out
	defer func() {
		s.lines = nil
		s.out = nil
	}()

	_, _ = fmt.Fprintln(out, Greeting)
	for {
		line, err := s.ask(ctx, s.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		reply, quit, err := s.execute(ctx, line)
		if err != nil {
			return err
		}
		if reply != "" {
			_, _ = fmt.Fprintln(out, reply)
		}
		if quit {
			return nil
		}
	}
}

// Reply converts a command error into the message shown to the user.
func Reply(err error) string {
	var uce *UnknownCommandError
	var ue *UsageError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, contact.ErrInvalidPhone):
		return "Phone number must be 10 digits."
	case errors.Is(err, contact.ErrInvalidBirthday):
		return "Invalid date format. Use DD.MM.YYYY"
	case errors.Is(err, contact.ErrEmptyName):
		return "Contact name cannot be empty."
	case errors.Is(err, ErrContactNotFound):
		return "Contact not found."
	case errors.As(err, &ue):
		return "Usage: " + ue.Usage
	case errors.As(err, &uce):
		return fmt.Sprintf("Invalid command. Available: %s, close, exit", strings.Join(uce.Available, ", "))
	default:
		return "Error: " + err.Error()
	}
}

// inputError carries a read failure or cancellation out of a handler that
// asked for more input.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

type inputLine struct {
	text string
	err  error
}

// readLines scans in on a goroutine so that a blocked read does not prevent
// ctx cancellation from being observed. The channel is closed at end of input.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	ch := make(chan inputLine)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- inputLine{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}

// ask writes prompt and waits for the next input line.
// Returns io.EOF at end of input or when no input is attached.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if s.lines == nil {
		return "", io.EOF
	}
	if prompt != "" {
		_, _ = fmt.Fprint(s.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", fmt.Errorf("assistant: reading input: %w", l.err)
		}
		return strings.TrimSpace(l.text), nil
	}
}
