package persist

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/comalice/conslist"
)

// BoltPersister keeps lists as values in a single bbolt bucket, keyed by name.
type BoltPersister struct {
	db     *bolt.DB
	bucket []byte
	cfg    config
}

// NewBoltPersister opens (creating if needed) the database at path.
func NewBoltPersister(path string, opts ...Option) (*BoltPersister, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := conslist.ParseFormat(string(cfg.format)); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, cfg.fileMode, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	bucket := []byte(cfg.bucket)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket %q: %w", cfg.bucket, err)
	}
	return &BoltPersister{db: db, bucket: bucket, cfg: cfg}, nil
}

func (p *BoltPersister) Format() conslist.Format {
	return p.cfg.format
}

// Save stores data under name in the configured bucket.
func (p *BoltPersister) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	err := p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(p.bucket).Put([]byte(name), data)
	})
	if err != nil {
		return fmt.Errorf("put %q: %w", name, err)
	}
	return nil
}

// Load returns a copy of the value stored under name.
func (p *BoltPersister) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	var data []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(p.bucket).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("list %q: %w", name, ErrNotFound)
		}
		// v is only valid inside the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (p *BoltPersister) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(p.bucket)
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("list %q: %w", name, ErrNotFound)
		}
		return b.Delete([]byte(name))
	})
}

func (p *BoltPersister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var names []string
	err := p.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(p.bucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return names, nil
}

func (p *BoltPersister) Close() error {
	return p.db.Close()
}
