package input

// TouchPoint is the last known position of one active touch id.
type TouchPoint struct {
	X float64
	Y float64
}

// State is the reduced view over everything the tracker has seen so far.
// No event history is kept, only the current situation.
type State struct {
	// Key codes currently held down
	PressedKeys map[uint32]struct{}
	// Pointer button codes currently held down
	PressedButtons map[uint32]struct{}
	// Accumulated absolute pointer position
	PointerX float64
	PointerY float64
	// Active touch points by touch id
	Touches map[uint32]TouchPoint
	// Modifier snapshot from the most recent event
	Modifiers Modifiers
}

func NewState() State {
	return State{
		PressedKeys:    map[uint32]struct{}{},
		PressedButtons: map[uint32]struct{}{},
		Touches:        map[uint32]TouchPoint{},
	}
}

func (s *State) KeyPressed(code uint32) bool {
	_, ok := s.PressedKeys[code]
	return ok
}

func (s *State) ButtonPressed(button uint32) bool {
	_, ok := s.PressedButtons[button]
	return ok
}
