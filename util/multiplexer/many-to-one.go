// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package multiplexer has the channel plumbing between the event loop
// and its peripheral goroutines: many producers feeding the loop's
// input channel, and the loop fanning server events out to many
// listeners. Raw channels would almost do it, but a send to a closed
// channel panics; these wrappers turn that into an error instead.
package multiplexer

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("multiplexer has been closed")

// ManyToOne funnels messages from any number of sender goroutines into
// one receiving channel. The repl, the shortcut feeder and test drivers
// all send input batches through one of these.
type ManyToOne[T any] struct {
	outbound chan T
	mu       sync.Mutex
	closed   bool
}

// NewManyToOne wraps the channel all messages get funneled into.
func NewManyToOne[T any](receiver chan T) *ManyToOne[T] {
	return &ManyToOne[T]{outbound: receiver}
}

// Send forwards one message. After Close it reports ErrClosed instead
// of panicking like a raw channel send would.
func (m *ManyToOne[T]) Send(msg T) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.mu.Unlock()
	m.outbound <- msg
	return nil
}

// Close closes the receiving channel. Safe to call more than once.
func (m *ManyToOne[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.outbound)
}
