// Package seed loads contact fixtures from YAML into an in-memory book.
// Fixtures are read-only input; nothing is ever written back.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// ErrInvalidName indicates a seed set name is empty or contains path separators.
var ErrInvalidName = errors.New("seed: invalid seed name")

// Entry is one contact in a seed file.
type Entry struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday"`
}

type document struct {
	Contacts []Entry `yaml:"contacts"`
}

// Parse decodes a seed document. Unknown fields are rejected.
// Empty and comment-only documents yield no entries.
func Parse(data []byte) ([]Entry, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("seed: parsing: %w", err)
	}
	return doc.Contacts, nil
}

// Record builds a validated contact.Record from the entry.
func (e Entry) Record() (*contact.Record, error) {
	if err := contact.ValidateName(e.Name); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	r := contact.NewRecord(e.Name)
	for _, p := range e.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("seed: contact %q: %w", e.Name, err)
		}
	}
	if e.Birthday != "" {
		if err := r.AddBirthday(e.Birthday); err != nil {
			return nil, fmt.Errorf("seed: contact %q: %w", e.Name, err)
		}
	}
	return r, nil
}

// Apply adds every entry to b. All entries are validated before any is added,
// so a bad entry leaves b untouched.
func Apply(b *book.Book, entries []Entry) error {
	records := make([]*contact.Record, 0, len(entries))
	for _, e := range entries {
		r, err := e.Record()
		if err != nil {
			return err
		}
		records = append(records, r)
	}
	for _, r := range records {
		b.AddRecord(r)
	}
	return nil
}

// Loader reads named seed sets (<name>.yaml) from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads and parses the seed set called name.
func (l *Loader) Load(name string) ([]Entry, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := fs.ReadFile(l.fsys, name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("seed: loading %s: %w", name, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", name, err)
	}
	return entries, nil
}

// LoadInto reads the seed set called name and adds its contacts to b.
func (l *Loader) LoadInto(b *book.Book, name string) error {
	entries, err := l.Load(name)
	if err != nil {
		return err
	}
	return Apply(b, entries)
}
