// Package layout implements the scale-consistent layout engine: fitting the
// fixed master frame into a tile, partitioning the A4 page into tiles,
// fitting the page into the browser viewport and switching to exact
// physical dimensions for print.
package layout

import "math"

// ScaleEpsilon is the tolerance below which two scale factors are equal
const ScaleEpsilon = 1e-9

// Size is a width/height pair in CSS pixels unless stated otherwise
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether both dimensions are finite and strictly positive
func (s Size) Valid() bool {
	return positive(s.Width) && positive(s.Height)
}

// Scaled multiplies both dimensions by the same factor
func (s Size) Scaled(scale float64) Size {
	return Size{Width: s.Width * scale, Height: s.Height * scale}
}

// Rect is a rectangle expressed as fractions (0..1) of its parent
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is a uniform scale. There is deliberately one scalar: the frame
// can never be stretched independently per axis.
type Transform struct {
	Scale float64 `json:"scale"`
}

// Identity is the transform applied to printed output
var Identity = Transform{Scale: 1}

// IsIdentity reports whether t leaves geometry untouched
func (t Transform) IsIdentity() bool {
	return sameScale(t.Scale, 1)
}

// Apply scales s by t
func (t Transform) Apply(s Size) Size {
	return s.Scaled(t.Scale)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func sameScale(a, b float64) bool {
	return math.Abs(a-b) <= ScaleEpsilon
}
