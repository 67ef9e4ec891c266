package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kr/pretty"

	"github.com/comalice/conslist"
	"github.com/comalice/conslist/internal/persist"
)

// appMixin gives every command access to the global options.
type appMixin struct {
	opts *options
}

func (m *appMixin) open() (persist.Persister, error) {
	format, err := conslist.ParseFormat(m.opts.Format)
	if err != nil {
		return nil, err
	}
	switch m.opts.Backend {
	case "bolt":
		return persist.NewBoltPersister(filepath.Join(m.opts.Store, "lists.db"), persist.WithFormat(format))
	default:
		return persist.NewFilePersister(m.opts.Store, persist.WithFormat(format))
	}
}

// withList loads the selected list, runs fn on it and stores the result if
// fn reports a change.
func (m *appMixin) withList(fn func(l *conslist.List[int64]) (*conslist.List[int64], bool, error)) error {
	ctx := context.Background()
	logger := m.opts.logger()

	p, err := m.open()
	if err != nil {
		return err
	}
	defer p.Close()

	l, err := persist.LoadOrNew[int64](ctx, p, m.opts.Name)
	if err != nil {
		return err
	}
	logger.Printf("loaded %q from %s backend: %v", m.opts.Name, m.opts.Backend, l)

	l, changed, err := fn(l)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := persist.SaveList(ctx, p, m.opts.Name, l); err != nil {
		return err
	}
	logger.Printf("saved %q: %v", m.opts.Name, l)
	return nil
}

func (m *appMixin) errEmpty() error {
	return fmt.Errorf("list %q is empty", m.opts.Name)
}

type cmdPush struct {
	appMixin
	Positional struct {
		Values []string `positional-arg-name:"<value>" required:"1"`
	} `positional-args:"yes"`
}

func (c *cmdPush) Execute([]string) error {
	values := make([]int64, 0, len(c.Positional.Values))
	for _, s := range c.Positional.Values {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot push %q: not an integer", s)
		}
		values = append(values, v)
	}
	return c.withList(func(l *conslist.List[int64]) (*conslist.List[int64], bool, error) {
		for _, v := range values {
			l.Cons(v)
		}
		return l, true, nil
	})
}

type cmdPop struct {
	appMixin
}

func (c *cmdPop) Execute([]string) error {
	return c.withList(func(l *conslist.List[int64]) (*conslist.List[int64], bool, error) {
		v, ok := l.Pop()
		if !ok {
			return nil, false, c.errEmpty()
		}
		fmt.Fprintln(Stdout, v)
		return l, true, nil
	})
}

type cmdPeek struct {
	appMixin
}

func (c *cmdPeek) Execute([]string) error {
	return c.withList(func(l *conslist.List[int64]) (*conslist.List[int64], bool, error) {
		v, ok := l.Peek()
		if !ok {
			return nil, false, c.errEmpty()
		}
		fmt.Fprintln(Stdout, v)
		return l, false, nil
	})
}

type cmdLen struct {
	appMixin
}

func (c *cmdLen) Execute([]string) error {
	return c.withList(func(l *conslist.List[int64]) (*conslist.List[int64], bool, error) {
		fmt.Fprintln(Stdout, l.Len())
		return l, false, nil
	})
}

type cmdShow struct {
	appMixin
	Debug bool `long:"debug" description:"Dump the node chain instead of the encoded list"`
}

func (c *cmdShow) Execute([]string) error {
	return c.withList(func(l *conslist.List[int64]) (*conslist.List[int64], bool, error) {
		if c.Debug {
			fmt.Fprintf(Stdout, "%# v\n", pretty.Formatter(l))
			return l, false, nil
		}
		format, err := conslist.ParseFormat(c.opts.Format)
		if err != nil {
			return nil, false, err
		}
		data, err := conslist.Marshal(l, format)
		if err != nil {
			return nil, false, err
		}
		fmt.Fprintln(Stdout, strings.TrimRight(string(data), "\n"))
		return l, false, nil
	})
}

type cmdReverse struct {
	appMixin
}

func (c *cmdReverse) Execute([]string) error {
	return c.withList(func(l *conslist.List[int64]) (*conslist.List[int64], bool, error) {
		return l.Reverse(), true, nil
	})
}

type cmdClear struct {
	appMixin
}

func (c *cmdClear) Execute([]string) error {
	return c.withList(func(l *conslist.List[int64]) (*conslist.List[int64], bool, error) {
		l.Clear()
		return l, true, nil
	})
}

type cmdNames struct {
	appMixin
}

func (c *cmdNames) Execute([]string) error {
	p, err := c.open()
	if err != nil {
		return err
	}
	defer p.Close()

	names, err := p.List(context.Background())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(Stdout, name)
	}
	return nil
}
