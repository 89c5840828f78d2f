// Package book implements the in-memory address book: a name-keyed set of
// contact records and the upcoming birthdays query.
package book

import (
	"time"

	"github.com/smileynet/rolodex/internal/contact"
)

// DefaultWindowDays is the default length of the upcoming birthdays window.
const DefaultWindowDays = 7

// Upcoming is a contact whose next birthday falls inside the query window.
type Upcoming struct {
	Name string
	Date time.Time
}

// Book maps contact names to records. Names are unique; adding a record under
// an existing name replaces the old one.
// It is not safe for concurrent use.
type Book struct {
	records map[string]*contact.Record
	order   []string // insertion order of names, for display
	now     func() time.Time
	leapDay LeapDayPolicy
}

// Option configures a Book.
type Option func(*Book)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(b *Book) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLeapDayPolicy sets how February 29 birthdays are placed in common years.
func WithLeapDayPolicy(p LeapDayPolicy) Option {
	return func(b *Book) {
		b.leapDay = p
	}
}

// New creates an empty Book.
func New(opts ...Option) *Book {
	b := &Book{
		records: make(map[string]*contact.Record),
		now:     time.Now,
		leapDay: LeapDayFeb28,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord stores r under r.Name(), replacing any record with that name.
// A replaced name keeps its original display position. Nil records are ignored.
func (b *Book) AddRecord(r *contact.Record) {
	if r == nil {
		return
	}
	name := r.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*contact.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. Missing names are ignored.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// Names returns record names in insertion order.
func (b *Book) Names() []string {
	return append([]string(nil), b.order...)
}

// Records returns the records in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// LeapDay returns the policy used to place February 29 birthdays in common years.
func (b *Book) LeapDay() LeapDayPolicy {
	return b.leapDay
}

// Today returns the book's current date at midnight.
func (b *Book) Today() time.Time {
	return midnight(b.now())
}

// UpcomingBirthdays returns every contact whose next birthday falls within
// [today, today+windowDays], inclusive on both ends. today is the current
// time truncated to midnight. A negative window yields no results.
func (b *Book) UpcomingBirthdays(windowDays int) []Upcoming {
	if windowDays < 0 {
		return nil
	}
	today := b.Today()
	end := today.AddDate(0, 0, windowDays)

	var out []Upcoming
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		next := NextOccurrence(bd, today, b.leapDay)
		if next.After(end) {
			continue
		}
		out = append(out, Upcoming{Name: r.Name(), Date: next})
	}
	return out
}

// NextOccurrence returns the first date on or after today on which bd recurs.
// today must already be truncated to midnight; its location is kept.
func NextOccurrence(bd contact.Birthday, today time.Time, policy LeapDayPolicy) time.Time {
	next := occurrenceIn(bd, today.Year(), today.Location(), policy)
	if next.Before(today) {
		next = occurrenceIn(bd, today.Year()+1, today.Location(), policy)
	}
	return next
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
