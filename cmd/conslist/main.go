package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type options struct {
	Store   string `long:"store" default:"." description:"Directory holding the stored lists"`
	Backend string `long:"backend" choice:"file" choice:"bolt" default:"file" description:"Storage backend"`
	Format  string `long:"format" choice:"json" choice:"yaml" default:"json" description:"Encoding of stored lists"`
	Name    string `short:"n" long:"name" default:"default" description:"Name of the list to operate on"`
	Verbose bool   `short:"v" long:"verbose" description:"Log each operation to stderr"`

	CmdPush    cmdPush    `command:"push" description:"Cons values onto the head of the list"`
	CmdPop     cmdPop     `command:"pop" description:"Remove and print the head of the list"`
	CmdPeek    cmdPeek    `command:"peek" description:"Print the head of the list"`
	CmdLen     cmdLen     `command:"len" description:"Print the number of elements"`
	CmdShow    cmdShow    `command:"show" description:"Print the encoded list"`
	CmdReverse cmdReverse `command:"reverse" description:"Reverse the list in place"`
	CmdClear   cmdClear   `command:"clear" description:"Remove every element of the list"`
	CmdNames   cmdNames   `command:"names" description:"Print the names of the stored lists"`
}

func (opts *options) bind() {
	for _, m := range []*appMixin{
		&opts.CmdPush.appMixin,
		&opts.CmdPop.appMixin,
		&opts.CmdPeek.appMixin,
		&opts.CmdLen.appMixin,
		&opts.CmdShow.appMixin,
		&opts.CmdReverse.appMixin,
		&opts.CmdClear.appMixin,
		&opts.CmdNames.appMixin,
	} {
		m.opts = opts
	}
}

func (opts *options) logger() *log.Logger {
	if !opts.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(Stderr, "conslist: ", log.Ltime)
}

func run(args []string) error {
	var opts options
	opts.bind()
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)

	if _, err := p.ParseArgs(args); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(Stdout, flagErr.Message)
			return
		}
		fmt.Fprintf(Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
