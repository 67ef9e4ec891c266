// Tests for the persisters, run against every backend.
package persist_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/comalice/conslist"
	"github.com/comalice/conslist/internal/persist"
	"github.com/comalice/conslist/testutil"
)

func TestPersister_RoundTrip(t *testing.T) {
	for _, a := range testutil.Backends() {
		t.Run(a.Name(), func(t *testing.T) {
			p := a.Open(t, t.TempDir())
			ctx := context.Background()

			words := conslist.FromSlice([]string{"head", "middle", "tail"})
			if err := persist.SaveList(ctx, p, "words", words); err != nil {
				t.Fatalf("SaveList failed: %v", err)
			}
			loaded, err := persist.LoadList[string](ctx, p, "words")
			if err != nil {
				t.Fatalf("LoadList failed: %v", err)
			}
			testutil.AssertElements(t, loaded, "head", "middle", "tail")

			// Overwrite with an empty list.
			if err := persist.SaveList(ctx, p, "words", conslist.New[string]()); err != nil {
				t.Fatal(err)
			}
			loaded, err = persist.LoadList[string](ctx, p, "words")
			if err != nil {
				t.Fatal(err)
			}
			if !loaded.IsEmpty() {
				t.Errorf("expected empty list, got %v", loaded)
			}
		})
	}
}

func TestPersister_LoadNonExistent(t *testing.T) {
	for _, a := range testutil.Backends() {
		t.Run(a.Name(), func(t *testing.T) {
			p := a.Open(t, t.TempDir())
			_, err := p.Load(context.Background(), "nonexistent")
			if !errors.Is(err, persist.ErrNotFound) {
				t.Errorf("Expected ErrNotFound wrapped error, got %v", err)
			}
			if err := p.Delete(context.Background(), "nonexistent"); !errors.Is(err, persist.ErrNotFound) {
				t.Errorf("Delete: expected ErrNotFound, got %v", err)
			}

			l, err := persist.LoadOrNew[int](context.Background(), p, "nonexistent")
			if err != nil {
				t.Fatalf("LoadOrNew failed: %v", err)
			}
			if !l.IsEmpty() {
				t.Errorf("LoadOrNew returned %v", l)
			}
		})
	}
}

func TestPersister_ListAndDelete(t *testing.T) {
	for _, a := range testutil.Backends() {
		t.Run(a.Name(), func(t *testing.T) {
			p := a.Open(t, t.TempDir())
			ctx := context.Background()
			for _, name := range []string{"b", "a", "c"} {
				if err := persist.SaveList(ctx, p, name, conslist.Of(1)); err != nil {
					t.Fatal(err)
				}
			}
			if err := p.Delete(ctx, "b"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			names, err := p.List(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(names, []string{"a", "c"}) {
				t.Errorf("List = %v, want [a c]", names)
			}
		})
	}
}

func TestPersister_InvalidNames(t *testing.T) {
	for _, a := range testutil.Backends() {
		t.Run(a.Name(), func(t *testing.T) {
			p := a.Open(t, t.TempDir())
			for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
				err := p.Save(context.Background(), name, []byte("[]"))
				if !errors.Is(err, persist.ErrInvalidName) {
					t.Errorf("Save(%q): expected ErrInvalidName, got %v", name, err)
				}
			}
		})
	}
}

func TestPersister_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, a := range testutil.Backends() {
		t.Run(a.Name(), func(t *testing.T) {
			p := a.Open(t, t.TempDir())
			if err := persist.SaveList(ctx, p, "x", conslist.Of(1)); !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
			if _, err := p.List(ctx); !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		})
	}
}

func TestFilePersister_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	p, err := persist.NewFilePersister(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`[1,"two"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = persist.LoadList[int](context.Background(), p, "bad")
	if !errors.Is(err, conslist.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestFilePersister_WritesArrayForm(t *testing.T) {
	dir := t.TempDir()
	p, err := persist.NewFilePersister(dir, persist.WithFileMode(0o600))
	if err != nil {
		t.Fatal(err)
	}
	if err := persist.SaveList(context.Background(), p, "nums", conslist.Of(1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "nums.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[3,2,1]" {
		t.Errorf("file contents = %s, want [3,2,1]", data)
	}
	fi, err := os.Stat(filepath.Join(dir, "nums.json"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", fi.Mode().Perm())
	}
}

func TestFilePersister_IgnoresOtherFormats(t *testing.T) {
	dir := t.TempDir()
	jp, err := persist.NewFilePersister(dir)
	if err != nil {
		t.Fatal(err)
	}
	yp, err := persist.NewFilePersister(dir, persist.WithFormat(conslist.FormatYAML))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := persist.SaveList(ctx, jp, "j", conslist.Of(1)); err != nil {
		t.Fatal(err)
	}
	if err := persist.SaveList(ctx, yp, "y", conslist.Of(1)); err != nil {
		t.Fatal(err)
	}
	names, err := yp.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"y"}) {
		t.Errorf("List = %v, want [y]", names)
	}
}

func TestNewPersister_UnknownFormat(t *testing.T) {
	_, err := persist.NewFilePersister(t.TempDir(), persist.WithFormat("xml"))
	if !errors.Is(err, conslist.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	_, err = persist.NewBoltPersister(filepath.Join(t.TempDir(), "x.db"), persist.WithFormat("xml"))
	if !errors.Is(err, conslist.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestBoltPersister_Bucket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.db")
	p, err := persist.NewBoltPersister(path, persist.WithBucket("stacks"), persist.WithFormat(conslist.FormatYAML))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := persist.SaveList(ctx, p, "s", conslist.Of("x", "y")); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen and read back.
	p, err = persist.NewBoltPersister(path, persist.WithBucket("stacks"), persist.WithFormat(conslist.FormatYAML))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	l, err := persist.LoadList[string](ctx, p, "s")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertElements(t, l, "y", "x")
}
