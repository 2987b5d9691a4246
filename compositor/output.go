package compositor

// Output is one display surface (monitor) placed in the shared global
// coordinate space.
type Output struct {
	ID     uint32
	Name   string
	Width  uint32
	Height uint32
	X      int32
	Y      int32
	// At most one output should be primary. Tiling prefers it as the
	// arrangement target.
	Primary bool
}

func NewOutput(id uint32, name string, width, height uint32, x, y int32, primary bool) Output {
	return Output{
		ID:      id,
		Name:    name,
		Width:   width,
		Height:  height,
		X:       x,
		Y:       y,
		Primary: primary,
	}
}
