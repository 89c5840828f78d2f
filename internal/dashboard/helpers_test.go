package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// testBook returns a book dated 2024-05-01 holding John and Jane.
func testBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New(book.WithClock(func() time.Time {
		return time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	}))
	john := contact.NewRecord("John")
	for _, p := range []string{"1234567890", "5555555555"} {
		if err := john.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}
	if err := john.AddBirthday("03.05.1990"); err != nil {
		t.Fatalf("AddBirthday error = %v", err)
	}
	jane := contact.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		t.Fatalf("AddPhone error = %v", err)
	}
	if err := jane.AddBirthday("15.05.1985"); err != nil {
		t.Fatalf("AddBirthday error = %v", err)
	}
	b.AddRecord(john)
	b.AddRecord(jane)
	return b
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
