// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package repl is a line-based command prompt for poking the running
// compositor. It knows nothing about the commands themselves; every
// line goes to a handler that produces the reply.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MessageHandler receives each input line and returns the reply to
// print. Returning an error stops the repl.
type MessageHandler func(string, *Repl) (string, error)

// ReadCloser combines the Reader and Closer interfaces
type ReadCloser interface {
	io.Reader
	io.Closer
}

type Repl struct {
	Input   ReadCloser
	Output  io.WriteCloser
	scanner *bufio.Scanner
	writer  *bufio.Writer
}

// NewRepl builds a repl over the given streams. Nil input or output
// falls back to stdin/stdout. Both streams get closed when the repl
// stops, so wrap stdin/stdout (util/wrappers) if they must survive.
func NewRepl(in ReadCloser, out io.WriteCloser) Repl {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return Repl{
		Input:   in,
		Output:  out,
		scanner: bufio.NewScanner(in),
		writer:  bufio.NewWriter(out),
	}
}

// Run blocks, feeding every input line through the handler and printing
// the reply, until input runs dry or the handler errors out.
func (r *Repl) Run(onMessage MessageHandler) error {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		reply, err := onMessage(line, r)
		if err != nil {
			r.Close()
			return fmt.Errorf("message handler errored out on message \"%s\": %w", line, err)
		}
		if _, err = r.writer.WriteString(reply + "\n"); err != nil {
			r.Close()
			return fmt.Errorf("failed to write result \"%s\": %w", reply, err)
		}
		if err = r.writer.Flush(); err != nil {
			r.Close()
			return fmt.Errorf("failed to flush writer: %w", err)
		}
	}
	return nil
}

// Close stops the repl by closing both its streams.
func (r *Repl) Close() {
	r.Input.Close()
	r.Output.Close()
}
