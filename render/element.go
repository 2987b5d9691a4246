package render

// Element is one drawable unit submitted into a frame. Elements are
// transient; they never outlive the frame they were submitted to.
//
// Elements draw in submission order, later ones over earlier ones
// (Painter's Algorithm). There is no depth sorting.
type Element interface {
	isRenderElement()
}

// SurfaceElement draws a client or shell surface from its texture.
type SurfaceElement struct {
	Texture Texture
	// Destination on the output, in logical pixels
	Geometry Rect
	// Changed regions inside the texture, in buffer-local pixels. Lets a
	// backend skip untouched texels.
	Damage    []Rect
	Transform Transform
	// Extra alpha on top of the texture's own channel, 0..1
	Alpha float64
	// Optional clip region in physical output pixels
	Clip *Rect
}

// SolidColorElement fills a rectangle with one color.
type SolidColorElement struct {
	Color Color
	// Destination on the output, in logical pixels
	Geometry Rect
}

// CursorElement draws the pointer image at its hotspot.
type CursorElement struct {
	// A nil Texture means the backend draws its default cursor image.
	Texture Texture
	// Hotspot position on the output, in logical pixels
	Hotspot Point
	// Scale of the output the cursor lands on
	OutputScale Scale
}

func (SurfaceElement) isRenderElement()    {}
func (SolidColorElement) isRenderElement() {}
func (CursorElement) isRenderElement()     {}
