package persist

import (
	"io/fs"

	"github.com/comalice/conslist"
)

type config struct {
	format   conslist.Format
	fileMode fs.FileMode
	bucket   string
}

func defaultConfig() config {
	return config{
		format:   conslist.FormatJSON,
		fileMode: 0o644,
		bucket:   "lists",
	}
}

// Option configures a persister.
type Option func(*config)

// WithFormat sets the encoding used for stored lists. Defaults to JSON.
func WithFormat(f conslist.Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithFileMode sets the permission bits of files created by the persister.
func WithFileMode(mode fs.FileMode) Option {
	return func(c *config) {
		c.fileMode = mode
	}
}

// WithBucket sets the bbolt bucket holding the lists. Ignored by FilePersister.
func WithBucket(name string) Option {
	return func(c *config) {
		c.bucket = name
	}
}
