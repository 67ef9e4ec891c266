package conslist

import (
	"errors"
	"fmt"
)

var (
	// ErrBorrowed is wrapped by the panic value raised when a list is
	// mutated, or a conflicting view opened, while a view is live.
	ErrBorrowed = errors.New("list is borrowed")

	// ErrDecode is wrapped by every decoding failure.
	ErrDecode = errors.New("cannot decode list")

	// ErrUnknownFormat is returned for a Format other than json or yaml.
	ErrUnknownFormat = errors.New("unknown list format")
)

// borrowState counts live views over a list.
type borrowState struct {
	shared    int
	exclusive bool
}

func (b *borrowState) live() bool {
	return b.exclusive || b.shared > 0
}

func borrowPanic(op string, b borrowState) {
	held := "shared view"
	if b.exclusive {
		held = "mutable view"
	}
	panic(fmt.Errorf("conslist: %s with live %s: %w", op, held, ErrBorrowed))
}
