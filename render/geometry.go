package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Geometry helper types for the render element vocabulary. All are plain
// values; the coordinate space (logical, physical, buffer-local) is stated
// at each use site.

type Point struct {
	X int32
	Y int32
}

type Size struct {
	Width  int32
	Height int32
}

type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// Scale is a per-axis output scale factor.
type Scale struct {
	X float64
	Y float64
}

// Transform mirrors the wl_output transform set.
type Transform int

const (
	TransformNormal = Transform(iota)
	TransformRotated90
	TransformRotated180
	TransformRotated270
	TransformFlipped
	TransformFlippedRotated90
	TransformFlippedRotated180
	TransformFlippedRotated270
)

// Color is a straight (non-premultiplied) RGBA color, each channel 0..1.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// ParseColor reads a "#RRGGBB" or "#RRGGBBAA" hex string. A missing
// alpha channel means fully opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	channels := [4]float32{0, 0, 0, 1}
	for i := 0; i*2 < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		channels[i] = float32(v) / 255
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}
