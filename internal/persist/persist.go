// Package persist stores encoded lists under a name.
// File and bbolt backends share the Persister interface; SaveList and
// LoadList handle encoding so backends only move bytes.
package persist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/comalice/conslist"
)

var (
	ErrNotFound    = errors.New("list not found")
	ErrInvalidName = errors.New("invalid list name")
)

// Persister saves and loads encoded lists by name.
type Persister interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)
	// Format is the encoding the persister expects for data.
	Format() conslist.Format
	Close() error
}

// SaveList encodes l in the persister's format and stores it as name.
func SaveList[T any](ctx context.Context, p Persister, name string, l *conslist.List[T]) error {
	data, err := conslist.Marshal(l, p.Format())
	if err != nil {
		return fmt.Errorf("encode %q: %w", name, err)
	}
	return p.Save(ctx, name, data)
}

// LoadList loads and decodes the list stored as name.
func LoadList[T any](ctx context.Context, p Persister, name string) (*conslist.List[T], error) {
	data, err := p.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	l, err := conslist.Unmarshal[T](data, p.Format())
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", name, err)
	}
	return l, nil
}

// LoadOrNew is like LoadList but returns an empty list when name is not stored.
func LoadOrNew[T any](ctx context.Context, p Persister, name string) (*conslist.List[T], error) {
	l, err := LoadList[T](ctx, p, name)
	if errors.Is(err, ErrNotFound) {
		return conslist.New[T](), nil
	}
	return l, err
}

// ValidateName rejects names that cannot be used as a file name or key.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}
