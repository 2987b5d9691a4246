// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package input

import "github.com/sirupsen/logrus"

// Key codes the tracker watches for composed shortcuts
const (
	keyCodeCopy  = 67 // C
	keyCodePaste = 86 // V
)

// Tracker is a pure state reducer over the incoming event stream.
// It is not safe for concurrent use; all events go through the single
// server control path.
type Tracker struct {
	State State

	devices []Device
}

func NewTracker() *Tracker {
	return &Tracker{State: NewState()}
}

// AddDevice registers an event source. Duplicate ids are rejected.
func (t *Tracker) AddDevice(dev Device) bool {
	for _, existing := range t.devices {
		if existing.ID == dev.ID {
			logrus.WithField("device", dev).Debugln("Device id already registered")
			return false
		}
	}
	t.devices = append(t.devices, dev)
	logrus.WithField("device", dev).Infoln("Device added")
	return true
}

// RemoveDevice drops a registered device by id.
func (t *Tracker) RemoveDevice(id uint32) bool {
	for i, dev := range t.devices {
		if dev.ID == id {
			t.devices = append(t.devices[:i], t.devices[i+1:]...)
			logrus.WithField("device", dev).Infoln("Device removed")
			return true
		}
	}
	return false
}

// Devices lists the registered event sources in registration order.
func (t *Tracker) Devices() []Device {
	return t.devices
}

// Process folds one event into the tracked state and hands it back.
// If the event completes a composed shortcut (ctrl+copy key, ctrl+paste
// key on press), a ShortcutEvent is returned in its place so the caller
// can intercept it instead of dispatching it to a window.
func (t *Tracker) Process(ev Event) Event {
	// Last writer wins, regardless of event kind
	t.State.Modifiers = ev.EventModifiers()

	switch e := ev.(type) {
	case KeyboardEvent:
		if e.State == KeyStatePressed {
			t.State.PressedKeys[e.Code] = struct{}{}
			if e.Modifiers.Ctrl {
				switch e.Code {
				case keyCodeCopy:
					return ShortcutEvent{Kind: ShortcutCopy, Modifiers: e.Modifiers}
				case keyCodePaste:
					return ShortcutEvent{Kind: ShortcutPaste, Modifiers: e.Modifiers}
				}
			}
		} else {
			delete(t.State.PressedKeys, e.Code)
		}
	case PointerMotionEvent:
		// Deltas accumulate, the event never carries an absolute position
		t.State.PointerX += e.DX
		t.State.PointerY += e.DY
	case PointerButtonEvent:
		if e.State == ButtonStatePressed {
			t.State.PressedButtons[e.Button] = struct{}{}
		} else {
			delete(t.State.PressedButtons, e.Button)
		}
	case PointerAxisEvent:
		// Modifier refresh only, no scroll accumulation
	case TouchDownEvent:
		t.State.Touches[e.TouchID] = TouchPoint{X: e.X, Y: e.Y}
	case TouchMotionEvent:
		// Motion for a touch id we never saw go down is dropped
		if _, ok := t.State.Touches[e.TouchID]; ok {
			t.State.Touches[e.TouchID] = TouchPoint{X: e.X, Y: e.Y}
		} else {
			logrus.WithField("touch-id", e.TouchID).Debugln("Dropping motion for unknown touch point")
		}
	case TouchUpEvent:
		delete(t.State.Touches, e.TouchID)
	}
	return ev
}
