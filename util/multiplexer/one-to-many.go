// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package multiplexer

import (
	"sync"
)

// OneToMany fans messages from one sender out to named receiver
// channels. The event loop publishes server events through one of
// these; the repl and any other listeners each register a receiver.
type OneToMany[T any] struct {
	inbound   chan T
	outbound  map[string]chan T // Named so receivers can be torn down individually
	lock      sync.Mutex
	closeChan chan struct{}
	closed    bool
}

func NewOneToMany[T any]() *OneToMany[T] {
	return &OneToMany[T]{
		inbound:   make(chan T),
		outbound:  make(map[string]chan T),
		closeChan: make(chan struct{}),
	}
}

// GetSender returns the channel messages get published into.
func (o *OneToMany[T]) GetSender() chan T {
	return o.inbound
}

// MakeReceiver registers a new named receiver channel. Don't close the
// returned channel yourself; use CloseReceiver.
func (o *OneToMany[T]) MakeReceiver(name string) (chan T, error) {
	o.lock.Lock()
	defer o.lock.Unlock()
	if o.closed {
		return nil, ErrClosed
	}
	if _, ok := o.outbound[name]; ok {
		return nil, ErrReceiverExists
	}
	rec := make(chan T)
	o.outbound[name] = rec
	return rec, nil
}

// CloseReceiver closes and removes the named receiver channel.
func (o *OneToMany[T]) CloseReceiver(name string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	if o.closed {
		return
	}
	if val, ok := o.outbound[name]; ok {
		close(val)
		delete(o.outbound, name)
	}
}

// StartPlexer runs the distribution loop until CloseSender is called.
// Intended as a goroutine (`go plexer.StartPlexer()`).
func (o *OneToMany[T]) StartPlexer() {
	for {
		select {
		case msg := <-o.inbound:
			o.lock.Lock()
			for _, c := range o.outbound {
				c <- msg
			}
			o.lock.Unlock()
		case <-o.closeChan:
			o.lock.Lock()
			// Receivers just see their channel close, no extra signal
			// needed
			for name, c := range o.outbound {
				close(c)
				delete(o.outbound, name)
			}
			o.closed = true
			o.lock.Unlock()
			return
		}
	}
}

// CloseSender stops the distribution loop and closes every receiver.
func (o *OneToMany[T]) CloseSender() {
	o.closeChan <- struct{}{}
}
