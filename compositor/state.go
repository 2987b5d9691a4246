// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package compositor

import (
	"github.com/mstarongithub/driftwc/input"
	"github.com/sirupsen/logrus"
	"gitlab.com/mstarongitlab/goutils/sliceutils"
)

// Fallback arrangement target used when no outputs exist at all
const (
	defaultScreenWidth  = 1920
	defaultScreenHeight = 1080
)

// State owns the canonical collections of outputs, windows and seats.
//
// It is a single, exclusively owned aggregate: all mutation happens on one
// control path (the server loop), so the engine itself takes no locks.
// Windows and outputs live in flat slices located by linear scan. Fine at
// desktop window counts, a known ceiling beyond that.
type State struct {
	Outputs []Output
	Windows []*Window
	Seats   []Seat

	nextWindowID uint32
	nextOutputID uint32
}

// NewState builds a state with the default arrangement: one seat ("seat0"),
// a primary 1920x1080 output at (0,0) and a secondary 1280x720 output to
// its right.
func NewState() *State {
	return NewStateForSeat("seat0")
}

// NewStateForSeat is NewState with the seeded seat named by the caller.
func NewStateForSeat(seatName string) *State {
	state := &State{
		Seats:        []Seat{NewSeat(seatName)},
		nextWindowID: 1,
		nextOutputID: 1,
	}
	state.AddOutput(NewOutput(state.NextOutputID(), "Primary-1920x1080", 1920, 1080, 0, 0, true))
	state.AddOutput(NewOutput(state.NextOutputID(), "Secondary-1280x720", 1280, 720, 1920, 0, false))
	return state
}

// NextOutputID hands out the next output id. Ids count up from 1 and are
// never reused, even after removal.
func (s *State) NextOutputID() uint32 {
	id := s.nextOutputID
	s.nextOutputID++
	return id
}

// NextWindowID hands out the next window id, independent of the output
// counter.
func (s *State) NextWindowID() uint32 {
	id := s.nextWindowID
	s.nextWindowID++
	return id
}

func (s *State) AddOutput(output Output) {
	s.Outputs = append(s.Outputs, output)
}

// RemoveOutput removes an output by id. Reports whether one was removed;
// a missing id is not a fault.
func (s *State) RemoveOutput(outputID uint32) bool {
	for i, o := range s.Outputs {
		if o.ID == outputID {
			s.Outputs = append(s.Outputs[:i], s.Outputs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *State) AddWindow(window *Window) {
	s.Windows = append(s.Windows, window)
}

// RemoveWindow removes a window by id. Reports whether one was removed.
func (s *State) RemoveWindow(windowID uint32) bool {
	for i, w := range s.Windows {
		if w.ID == windowID {
			s.Windows = append(s.Windows[:i], s.Windows[i+1:]...)
			return true
		}
	}
	return false
}

// FindWindow looks a window up by id. Returns nil on a miss.
func (s *State) FindWindow(windowID uint32) *Window {
	for _, w := range s.Windows {
		if w.ID == windowID {
			return w
		}
	}
	return nil
}

// FindSeat looks a seat up by name. Returns nil on a miss.
func (s *State) FindSeat(name string) *Seat {
	for i := range s.Seats {
		if s.Seats[i].Name == name {
			return &s.Seats[i]
		}
	}
	return nil
}

// MapWindow makes a window visible again. Reports whether it was found.
func (s *State) MapWindow(windowID uint32) bool {
	window := s.FindWindow(windowID)
	if window == nil {
		return false
	}
	window.Map()
	return true
}

// UnmapWindow hides a window. Any seat focusing it loses that focus
// immediately, keeping the focus invariant intact.
func (s *State) UnmapWindow(windowID uint32) bool {
	window := s.FindWindow(windowID)
	if window == nil {
		return false
	}
	window.Unmap()
	for i := range s.Seats {
		if id, ok := s.Seats[i].FocusTarget(); ok && id == windowID {
			s.Seats[i].FocusedWindow = nil
			logrus.WithFields(logrus.Fields{
				"seat":   s.Seats[i].Name,
				"window": windowID,
			}).Debugln("Cleared seat focus for unmapped window")
		}
	}
	return true
}

// SetFocus moves a seat's focus to the given window id, or clears it when
// windowID is nil.
//
// The target is accepted only if it exists and is mapped. Anything else
// degrades to "no focus" instead of keeping a stale reference around, and
// every window's focus flag is recomputed against the accepted target.
// Reports whether the seat was found.
func (s *State) SetFocus(seatName string, windowID *uint32) bool {
	seat := s.FindSeat(seatName)
	if seat == nil {
		logrus.WithField("seat", seatName).Debugln("Focus change for unknown seat")
		return false
	}

	var accepted *uint32
	if windowID != nil {
		if target := s.FindWindow(*windowID); target != nil && target.Mapped {
			// Copy so later writes through the caller's pointer can't
			// retarget the seat
			id := *windowID
			accepted = &id
		} else {
			logrus.WithFields(logrus.Fields{
				"seat":   seatName,
				"window": *windowID,
			}).Debugln("Focus target missing or unmapped, clearing focus")
		}
	}

	seat.FocusedWindow = accepted
	for _, w := range s.Windows {
		w.Focused = accepted != nil && w.ID == *accepted
	}
	return true
}

// DispatchInputEvent queues an event into the focused, mapped window of
// the given seat.
//
// A false return is a no-dispatch outcome, not a fault: missing seat, no
// focus, focused window gone, or focused window unmapped.
func (s *State) DispatchInputEvent(ev input.Event, seatName string) bool {
	seat := s.FindSeat(seatName)
	if seat == nil {
		return false
	}
	focusedID, ok := seat.FocusTarget()
	if !ok {
		return false
	}
	window := s.FindWindow(focusedID)
	if window == nil || !window.Mapped {
		return false
	}
	window.QueueEvent(ev)
	return true
}

func (s *State) mappedWindows() []*Window {
	return sliceutils.Filter(s.Windows, func(w *Window) bool {
		return w.Mapped
	})
}

// TileWindows arranges all mapped windows side by side on one output.
//
// The primary output wins, else the first output, else a synthesized
// 1920x1080 screen at (0,0). The output width is divided evenly between
// the mapped windows; leftover pixels from the integer division stay
// unassigned on the right. That rounding policy is deliberate.
func (s *State) TileWindows() {
	mapped := s.mappedWindows()
	if len(mapped) == 0 {
		logrus.Debugln("No mapped windows to tile")
		return
	}

	screenX, screenY := int32(0), int32(0)
	screenWidth, screenHeight := uint32(defaultScreenWidth), uint32(defaultScreenHeight)

	var target *Output
	for i := range s.Outputs {
		if s.Outputs[i].Primary {
			target = &s.Outputs[i]
			break
		}
	}
	if target == nil && len(s.Outputs) > 0 {
		target = &s.Outputs[0]
	}
	if target != nil {
		screenX, screenY = target.X, target.Y
		screenWidth, screenHeight = target.Width, target.Height
		logrus.WithFields(logrus.Fields{
			"output":  target.Name,
			"primary": target.Primary,
		}).Debugln("Tiling onto output")
	} else {
		logrus.Debugln("No outputs, tiling onto default 1920x1080 screen")
	}

	windowWidth := screenWidth / uint32(len(mapped))
	for i, window := range mapped {
		window.X = screenX + int32(uint32(i)*windowWidth)
		window.Y = screenY
		window.Width = windowWidth
		window.Height = screenHeight
		window.State = WindowStateTiled
	}
	logrus.WithFields(logrus.Fields{
		"windows":       len(mapped),
		"window-width":  windowWidth,
		"window-height": screenHeight,
	}).Debugln("Tiled windows")
}

// FocusNextWindow cycles the seat's focus through the mapped windows in
// collection order, wrapping at the end.
//
// A stale or unmapped current focus restarts the cycle at the first mapped
// window. With no mapped windows at all, focus is cleared. Reports whether
// the seat exists.
func (s *State) FocusNextWindow(seatName string) bool {
	seat := s.FindSeat(seatName)
	if seat == nil {
		logrus.WithField("seat", seatName).Debugln("Focus cycle for unknown seat")
		return false
	}

	mapped := s.mappedWindows()
	if len(mapped) == 0 {
		return s.SetFocus(seatName, nil)
	}

	next := 0
	if currentID, ok := seat.FocusTarget(); ok {
		for i, w := range mapped {
			if w.ID == currentID {
				next = (i + 1) % len(mapped)
				break
			}
		}
	}

	chosen := mapped[next].ID
	logrus.WithFields(logrus.Fields{
		"seat":   seatName,
		"window": chosen,
	}).Debugln("Cycled focus")
	// Routes through the focus transition rule, so the result is always a
	// mapped, present window.
	return s.SetFocus(seatName, &chosen)
}

// ResizeWindow sets a window's dimensions. Zero in either dimension is
// rejected without touching the window. The arrangement state is left
// alone, so a tiled window stays tagged tiled even though its geometry no
// longer matches the grid.
func (s *State) ResizeWindow(windowID, newWidth, newHeight uint32) bool {
	if newWidth == 0 || newHeight == 0 {
		logrus.WithFields(logrus.Fields{
			"window": windowID,
			"width":  newWidth,
			"height": newHeight,
		}).Debugln("Rejecting resize to zero dimension")
		return false
	}
	window := s.FindWindow(windowID)
	if window == nil {
		return false
	}
	window.Width = newWidth
	window.Height = newHeight
	return true
}

// MoveWindow places a window's top-left corner at the given coordinates.
// Any signed pair is accepted.
func (s *State) MoveWindow(windowID uint32, newX, newY int32) bool {
	window := s.FindWindow(windowID)
	if window == nil {
		return false
	}
	window.X = newX
	window.Y = newY
	return true
}
