package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/comalice/conslist"
)

// FilePersister keeps one file per list in a directory, named after the list
// with the extension of its format.
type FilePersister struct {
	dir string
	cfg config
}

// NewFilePersister creates a FilePersister, ensuring the directory exists.
func NewFilePersister(dir string, opts ...Option) (*FilePersister, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := conslist.ParseFormat(string(cfg.format)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FilePersister{dir: dir, cfg: cfg}, nil
}

func (p *FilePersister) Format() conslist.Format {
	return p.cfg.format
}

func (p *FilePersister) path(name string) string {
	return filepath.Join(p.dir, name+p.cfg.format.Ext())
}

// Save writes data to <dir>/<name><ext>, replacing any earlier contents.
func (p *FilePersister) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	fn := p.path(name)
	if err := os.WriteFile(fn, data, p.cfg.fileMode); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *FilePersister) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	fn := p.path(name)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("list %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}

func (p *FilePersister) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	fn := p.path(name)
	if err := os.Remove(fn); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("list %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("remove %s: %w", fn, err)
	}
	return nil
}

// List returns the sorted names of the lists stored in the persister's
// format. Files with other extensions are ignored.
func (p *FilePersister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", p.dir, err)
	}

	ext := p.cfg.format.Ext()
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op; FilePersister holds no open handles.
func (p *FilePersister) Close() error {
	return nil
}
