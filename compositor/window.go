// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package compositor

import (
	"github.com/mstarongithub/driftwc/input"
	"github.com/sirupsen/logrus"
)

// WindowState is the arrangement state of a window.
type WindowState int

const (
	// Placed freely, geometry managed by the client or the user
	WindowStateFloating = WindowState(iota)
	// Placed by the tiling layout
	WindowStateTiled
	// Hidden away, not visible
	WindowStateMinimized
)

func (s WindowState) String() string {
	switch s {
	case WindowStateFloating:
		return "floating"
	case WindowStateTiled:
		return "tiled"
	case WindowStateMinimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// Window is one client window the compositor manages.
//
// A window that is not mapped is invisible, can't hold seat focus and never
// receives dispatched input. Map and Unmap toggle that without destroying
// the record.
type Window struct {
	ID       uint32
	ClientID uint32
	Title    string
	Width    uint32
	Height   uint32
	X        int32
	Y        int32
	State    WindowState
	AppID    string
	Focused  bool
	Mapped   bool

	// FIFO queue of input events waiting to be drained
	pendingEvents []input.Event
}

// NewWindow creates a floating, unfocused window. New windows start mapped
// so they immediately take part in tiling and focus cycling.
func NewWindow(id, clientID uint32, title string, width, height uint32, x, y int32) *Window {
	return &Window{
		ID:       id,
		ClientID: clientID,
		Title:    title,
		Width:    width,
		Height:   height,
		X:        x,
		Y:        y,
		State:    WindowStateFloating,
		Mapped:   true,
	}
}

// Map makes the window visible and eligible for input again.
func (w *Window) Map() {
	w.Mapped = true
}

// Unmap hides the window. Focus is forcibly dropped; an unmapped window
// must never read back as focused.
func (w *Window) Unmap() {
	w.Mapped = false
	w.Focused = false
}

// QueueEvent appends one event to the window's pending queue.
func (w *Window) QueueEvent(ev input.Event) {
	w.pendingEvents = append(w.pendingEvents, ev)
}

// PendingEvents reports how many events are waiting to be drained.
func (w *Window) PendingEvents() int {
	return len(w.pendingEvents)
}

// DrainEvents hands back all queued events in FIFO order and empties the
// queue.
func (w *Window) DrainEvents() []input.Event {
	if len(w.pendingEvents) == 0 {
		return nil
	}
	drained := w.pendingEvents
	w.pendingEvents = nil
	logrus.WithFields(logrus.Fields{
		"window": w.ID,
		"events": len(drained),
	}).Debugln("Drained window event queue")
	return drained
}
