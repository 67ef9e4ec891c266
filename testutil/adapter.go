package testutil

import (
	"path/filepath"
	"testing"

	"github.com/comalice/conslist"
	"github.com/comalice/conslist/internal/persist"
)

// BackendAdapter opens a persister of one kind inside a test directory.
// This allows running the same test suite against every backend.
type BackendAdapter interface {
	Name() string
	Open(t testing.TB, dir string) persist.Persister
}

// FileAdapter opens a FilePersister writing the given format.
type FileAdapter struct {
	Format conslist.Format
}

// NewFileAdapter creates an adapter for file persisters in format f.
func NewFileAdapter(f conslist.Format) *FileAdapter {
	return &FileAdapter{Format: f}
}

func (a *FileAdapter) Name() string {
	return "file-" + string(a.Format)
}

func (a *FileAdapter) Open(t testing.TB, dir string) persist.Persister {
	t.Helper()
	p, err := persist.NewFilePersister(dir, persist.WithFormat(a.Format))
	if err != nil {
		t.Fatalf("NewFilePersister failed: %v", err)
	}
	return p
}

// BoltAdapter opens a BoltPersister on a database file in the test directory.
type BoltAdapter struct{}

// NewBoltAdapter creates an adapter for bbolt persisters.
func NewBoltAdapter() *BoltAdapter {
	return &BoltAdapter{}
}

func (a *BoltAdapter) Name() string {
	return "bolt"
}

func (a *BoltAdapter) Open(t testing.TB, dir string) persist.Persister {
	t.Helper()
	p, err := persist.NewBoltPersister(filepath.Join(dir, "lists.db"))
	if err != nil {
		t.Fatalf("NewBoltPersister failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

// Backends returns an adapter for every persister kind.
func Backends() []BackendAdapter {
	return []BackendAdapter{
		NewFileAdapter(conslist.FormatJSON),
		NewFileAdapter(conslist.FormatYAML),
		NewBoltAdapter(),
	}
}

// AssertElements fails the test unless l holds want in head-to-tail order.
func AssertElements[T comparable](t testing.TB, l *conslist.List[T], want ...T) {
	t.Helper()
	if !conslist.Equal(l, conslist.FromSlice(want)) {
		t.Errorf("list = %v, want %v", l, want)
	}
}
