package contact

import (
	"errors"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain", value: "John"},
		{name: "inner space", value: "Mary Ann"},
		{name: "empty", value: "", wantErr: true},
		{name: "spaces", value: "   ", wantErr: true},
		{name: "tabs and newline", value: "\t\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyName) {
					t.Errorf("ValidateName(%q) error = %v, want ErrEmptyName", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateName(%q) error = %v", tt.value, err)
			}
		})
	}
}

func TestRecord_AddPhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "ten digits", value: "1234567890"},
		{name: "all zeros", value: "0000000000"},
		{name: "nine digits", value: "123456789", wantErr: true},
		{name: "eleven digits", value: "12345678901", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "dashes", value: "123-456-78", wantErr: true},
		{name: "spaces", value: "123 456 78", wantErr: true},
		{name: "leading plus", value: "+123456789", wantErr: true},
		{name: "letters", value: "12345abcde", wantErr: true},
		{name: "non-ascii digits", value: "١٢٣٤٥", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given a record with one phone
			r := NewRecord("John")
			if err := r.AddPhone("5555555555"); err != nil {
				t.Fatalf("AddPhone(seed) error = %v", err)
			}

			// When AddPhone is called
			err := r.AddPhone(tt.value)

			// Then invalid values are rejected and leave the list unchanged
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("AddPhone(%q) error = %v, want ErrInvalidPhone", tt.value, err)
				}
				if got := len(r.Phones()); got != 1 {
					t.Errorf("phones len = %d, want 1", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddPhone(%q) error = %v", tt.value, err)
			}
			if got := len(r.Phones()); got != 2 {
				t.Errorf("phones len = %d, want 2", got)
			}
		})
	}
}

func TestRecord_AddPhoneAllowsDuplicates(t *testing.T) {
	r := NewRecord("John")
	for i := 0; i < 2; i++ {
		if err := r.AddPhone("1234567890"); err != nil {
			t.Fatalf("AddPhone() error = %v", err)
		}
	}
	if got := len(r.Phones()); got != 2 {
		t.Errorf("phones len = %d, want 2", got)
	}
}

func TestRecord_PhonesReturnsCopy(t *testing.T) {
	r := NewRecord("John")
	_ = r.AddPhone("1234567890")

	phones := r.Phones()
	phones[0] = Phone{value: "oops"}

	if got := r.Phones()[0].String(); got != "1234567890" {
		t.Errorf("stored phone = %q, want %q", got, "1234567890")
	}
}

func TestRecord_RemovePhone(t *testing.T) {
	// Given a record with a duplicated phone
	r := NewRecord("John")
	for _, p := range []string{"1111111111", "2222222222", "1111111111"} {
		if err := r.AddPhone(p); err != nil {
			t.Fatal(err)
		}
	}

	// When the duplicated phone is removed once
	r.RemovePhone("1111111111")

	// Then only the first occurrence is gone
	got := phoneStrings(r.Phones())
	want := "2222222222,1111111111"
	if got != want {
		t.Errorf("phones = %s, want %s", got, want)
	}
}

func TestRecord_RemovePhoneMissingIsNoop(t *testing.T) {
	r := NewRecord("John")
	_ = r.AddPhone("1111111111")

	r.RemovePhone("9999999999")

	if got := phoneStrings(r.Phones()); got != "1111111111" {
		t.Errorf("phones = %s, want 1111111111", got)
	}
}

func TestRecord_EditPhone(t *testing.T) {
	// Given a record with two phones
	r := NewRecord("John")
	_ = r.AddPhone("1234567890")
	_ = r.AddPhone("5555555555")

	// When the first is edited
	if err := r.EditPhone("1234567890", "1112223333"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	// Then it is replaced in place
	if got := phoneStrings(r.Phones()); got != "1112223333,5555555555" {
		t.Errorf("phones = %s, want 1112223333,5555555555", got)
	}
	if _, ok := r.FindPhone("1234567890"); ok {
		t.Error("FindPhone(old) found = true, want false")
	}
	if _, ok := r.FindPhone("1112223333"); !ok {
		t.Error("FindPhone(new) found = false, want true")
	}
}

func TestRecord_EditPhoneInvalidReplacement(t *testing.T) {
	tests := []struct {
		name string
		old  string
	}{
		{name: "existing old", old: "1234567890"},
		{name: "missing old", old: "0000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord("John")
			_ = r.AddPhone("1234567890")

			err := r.EditPhone(tt.old, "12345")

			if !errors.Is(err, ErrInvalidPhone) {
				t.Fatalf("EditPhone() error = %v, want ErrInvalidPhone", err)
			}
			if got := phoneStrings(r.Phones()); got != "1234567890" {
				t.Errorf("phones = %s, want unchanged", got)
			}
		})
	}
}

func TestRecord_EditPhoneMissingOldIsNoop(t *testing.T) {
	r := NewRecord("John")
	_ = r.AddPhone("1234567890")

	if err := r.EditPhone("9999999999", "1112223333"); err != nil {
		t.Fatalf("EditPhone() error = %v, want nil", err)
	}
	if got := phoneStrings(r.Phones()); got != "1234567890" {
		t.Errorf("phones = %s, want unchanged", got)
	}
}

func TestRecord_FindPhone(t *testing.T) {
	r := NewRecord("John")
	_ = r.AddPhone("5555555555")

	p, ok := r.FindPhone("5555555555")
	if !ok {
		t.Fatal("FindPhone() found = false, want true")
	}
	if p.String() != "5555555555" {
		t.Errorf("FindPhone() = %q, want %q", p.String(), "5555555555")
	}

	if _, ok := r.FindPhone("1111111111"); ok {
		t.Error("FindPhone(missing) found = true, want false")
	}
}

func TestRecord_AddBirthday(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "01.05.1990"},
		{name: "leap day in leap year", value: "29.02.2000"},
		{name: "iso order", value: "1990-05-01", wantErr: true},
		{name: "day out of range", value: "32.01.2020", wantErr: true},
		{name: "month out of range", value: "01.13.2020", wantErr: true},
		{name: "leap day in common year", value: "29.02.2021", wantErr: true},
		{name: "single digit day", value: "1.05.1990", wantErr: true},
		{name: "two digit year", value: "01.05.90", wantErr: true},
		{name: "slashes", value: "01/05/1990", wantErr: true},
		{name: "trailing text", value: "01.05.1990x", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord("John")

			err := r.AddBirthday(tt.value)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBirthday) {
					t.Fatalf("AddBirthday(%q) error = %v, want ErrInvalidBirthday", tt.value, err)
				}
				if _, ok := r.Birthday(); ok {
					t.Error("Birthday() set after failed AddBirthday")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddBirthday(%q) error = %v", tt.value, err)
			}
			b, ok := r.Birthday()
			if !ok {
				t.Fatal("Birthday() ok = false, want true")
			}
			if b.String() != tt.value {
				t.Errorf("Birthday() = %q, want %q", b.String(), tt.value)
			}
		})
	}
}

func TestRecord_AddBirthdayOverwrites(t *testing.T) {
	r := NewRecord("John")
	_ = r.AddBirthday("01.05.1990")

	if err := r.AddBirthday("15.05.1985"); err != nil {
		t.Fatal(err)
	}
	// A failed parse keeps the previous value.
	_ = r.AddBirthday("bogus")

	b, _ := r.Birthday()
	want := time.Date(1985, time.May, 15, 0, 0, 0, 0, time.UTC)
	if !b.Time().Equal(want) {
		t.Errorf("Birthday() = %v, want %v", b.Time(), want)
	}
}

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name     string
		phones   []string
		birthday string
		want     string
	}{
		{
			name: "no phones or birthday",
			want: "Contact name: John, phones: , birthday: Not specified",
		},
		{
			name:     "phones and birthday",
			phones:   []string{"1234567890", "5555555555"},
			birthday: "01.05.1990",
			want:     "Contact name: John, phones: 1234567890; 5555555555, birthday: 01.05.1990",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord("John")
			for _, p := range tt.phones {
				_ = r.AddPhone(p)
			}
			if tt.birthday != "" {
				_ = r.AddBirthday(tt.birthday)
			}
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- properties ---

func TestProperty_InvalidPhoneRejected(t *testing.T) {
	invalid := rapid.OneOf(
		rapid.String().Filter(func(s string) bool { return len(s) != PhoneLength }),
		rapid.StringMatching(`[0-9]{0,5}[^0-9][0-9]{0,4}`),
	)
	rapid.Check(t, func(t *rapid.T) {
		s := invalid.Draw(t, "phone")
		r := NewRecord("John")
		_ = r.AddPhone("1234567890")

		if err := r.AddPhone(s); !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("AddPhone(%q) error = %v, want ErrInvalidPhone", s, err)
		}
		if err := r.EditPhone("1234567890", s); !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("EditPhone(_, %q) error = %v, want ErrInvalidPhone", s, err)
		}
		if got := phoneStrings(r.Phones()); got != "1234567890" {
			t.Fatalf("phones = %s, want unchanged", got)
		}
	})
}

func TestProperty_AddFindRemove(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[0-9]{10}`).Draw(t, "phone")
		r := NewRecord("John")

		if err := r.AddPhone(s); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", s, err)
		}
		if _, ok := r.FindPhone(s); !ok {
			t.Fatalf("FindPhone(%q) after add found = false", s)
		}
		r.RemovePhone(s)
		if _, ok := r.FindPhone(s); ok {
			t.Fatalf("FindPhone(%q) after remove found = true", s)
		}
	})
}

func TestProperty_EditKeepsLength(t *testing.T) {
	digits := rapid.StringMatching(`[0-9]{10}`)
	rapid.Check(t, func(t *rapid.T) {
		others := rapid.SliceOfN(digits, 0, 5).Draw(t, "others")
		oldValue := digits.Draw(t, "old")
		newValue := digits.Filter(func(s string) bool { return s != oldValue }).Draw(t, "new")

		r := NewRecord("John")
		for _, p := range others {
			if p == oldValue {
				continue
			}
			_ = r.AddPhone(p)
		}
		_ = r.AddPhone(oldValue)
		before := len(r.Phones())

		if err := r.EditPhone(oldValue, newValue); err != nil {
			t.Fatalf("EditPhone() error = %v", err)
		}
		if _, ok := r.FindPhone(oldValue); ok {
			t.Fatalf("FindPhone(old=%q) found = true after edit", oldValue)
		}
		if _, ok := r.FindPhone(newValue); !ok {
			t.Fatalf("FindPhone(new=%q) found = false after edit", newValue)
		}
		if got := len(r.Phones()); got != before {
			t.Fatalf("phones len = %d, want %d", got, before)
		}
	})
}

func phoneStrings(phones []Phone) string {
	s := make([]string, len(phones))
	for i, p := range phones {
		s[i] = p.String()
	}
	return strings.Join(s, ",")
}
