package main

import "io"

var Run = run

func MockStdout(w io.Writer) (restore func()) {
	old := Stdout
	Stdout = w
	return func() {
		Stdout = old
	}
}

func MockStderr(w io.Writer) (restore func()) {
	old := Stderr
	Stderr = w
	return func() {
		Stderr = old
	}
}
