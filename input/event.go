// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package input

// Modifiers is the complete modifier snapshot carried by every event.
// There is no merging across events; the latest snapshot always wins.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Logo  bool
}

type KeyState int

const (
	KeyStateReleased = KeyState(iota)
	KeyStatePressed
)

type ButtonState int

const (
	ButtonStateReleased = ButtonState(iota)
	ButtonStatePressed
)

type AxisOrientation int

const (
	AxisOrientationVertical = AxisOrientation(iota)
	AxisOrientationHorizontal
)

type ShortcutKind int

const (
	// Ctrl held while the copy key goes down
	ShortcutCopy = ShortcutKind(iota)
	// Ctrl held while the paste key goes down
	ShortcutPaste
)

// Event is one raw input event as fed into the tracker.
// Every event carries a full modifier snapshot.
type Event interface {
	EventModifiers() Modifiers
	isInputEvent()
}

type (
	// A key going down or up on a keyboard
	KeyboardEvent struct {
		Code      uint32
		State     KeyState
		Modifiers Modifiers
	}

	// Relative pointer motion. DX/DY are deltas, not absolute positions.
	PointerMotionEvent struct {
		DX        float64
		DY        float64
		Modifiers Modifiers
	}

	// A pointer button going down or up
	PointerButtonEvent struct {
		Button    uint32
		State     ButtonState
		Modifiers Modifiers
	}

	// Scroll wheel movement. Currently only refreshes the modifier
	// snapshot, no scroll distance is accumulated.
	PointerAxisEvent struct {
		Orientation AxisOrientation
		Delta       float64
		Modifiers   Modifiers
	}

	// A new touch point appearing on screen
	TouchDownEvent struct {
		TouchID   uint32
		X         float64
		Y         float64
		Modifiers Modifiers
	}

	// An existing touch point moving
	TouchMotionEvent struct {
		TouchID   uint32
		X         float64
		Y         float64
		Modifiers Modifiers
	}

	// A touch point disappearing
	TouchUpEvent struct {
		TouchID   uint32
		Modifiers Modifiers
	}

	// A composed shortcut the tracker recognized. These are consumed by
	// the server itself and never forwarded to a window.
	ShortcutEvent struct {
		Kind      ShortcutKind
		Modifiers Modifiers
	}
)

func (e KeyboardEvent) EventModifiers() Modifiers      { return e.Modifiers }
func (e PointerMotionEvent) EventModifiers() Modifiers { return e.Modifiers }
func (e PointerButtonEvent) EventModifiers() Modifiers { return e.Modifiers }
func (e PointerAxisEvent) EventModifiers() Modifiers   { return e.Modifiers }
func (e TouchDownEvent) EventModifiers() Modifiers     { return e.Modifiers }
func (e TouchMotionEvent) EventModifiers() Modifiers   { return e.Modifiers }
func (e TouchUpEvent) EventModifiers() Modifiers       { return e.Modifiers }
func (e ShortcutEvent) EventModifiers() Modifiers      { return e.Modifiers }

func (KeyboardEvent) isInputEvent()      {}
func (PointerMotionEvent) isInputEvent() {}
func (PointerButtonEvent) isInputEvent() {}
func (PointerAxisEvent) isInputEvent()   {}
func (TouchDownEvent) isInputEvent()     {}
func (TouchMotionEvent) isInputEvent()   {}
func (TouchUpEvent) isInputEvent()       {}
func (ShortcutEvent) isInputEvent()      {}
