package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Handler runs one command against the session and returns the reply text.
type Handler func(ctx context.Context, s *Session, args []string) (string, error)

// Registry maps command names to handlers.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a named command handler. Overwrites if name already exists.
// Names are matched case-insensitively.
// Panics if name is empty or h is nil (programmer error).
func (r *Registry) Register(name string, h Handler) {
	if name == "" {
		panic("assistant: Register called with empty name")
	}
	if h == nil {
		panic("assistant: Register called with nil handler")
	}
	r.handlers[strings.ToLower(name)] = h
}

// Lookup returns the handler registered under name.
// Returns an *UnknownCommandError if the name is not registered.
func (r *Registry) Lookup(name string) (Handler, error) {
	h, ok := r.handlers[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownCommandError{
			Name:      name,
			Available: r.Available(),
		}
	}
	return h, nil
}

// Available returns registered command names in sorted order.
func (r *Registry) Available() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownCommandError indicates a command name is not registered.
type UnknownCommandError struct {
	Name      string
	Available []string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// UsageError indicates a command was called with the wrong arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}
