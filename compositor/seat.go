package compositor

// Seat is one input focus context. It points at at most one focused
// window, identified by id.
//
// Invariant: if FocusedWindow is set, the referenced window exists and is
// mapped. The state engine self-heals any violation to "no focus" the next
// time focus logic runs.
type Seat struct {
	Name string
	// nil means nothing is focused
	FocusedWindow *uint32
}

func NewSeat(name string) Seat {
	return Seat{Name: name}
}

// FocusTarget returns the focused window id and whether one is set.
func (s *Seat) FocusTarget() (uint32, bool) {
	if s.FocusedWindow == nil {
		return 0, false
	}
	return *s.FocusedWindow, true
}
