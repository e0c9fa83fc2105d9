package pitch

import (
	"github.com/chewxy/math32"
)

// Standard field dimensions in meters, and the pixel margin kept clear
// between the surface edge and the drawn touchlines.
const (
	FieldLength = 105.0
	FieldWidth  = 68.0
	Padding     = 30.0
)

// A Point is a location in pitch space: meters, origin at the center of
// the field, x along the long axis (-52.5..52.5), y along the short
// axis (-34..34). Z is informational only (ball height); projection
// ignores it.
type Point struct {
	X, Y, Z float32
}

// Pt is shorthand for a ground-level pitch point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// ToDrawingSpace maps p onto a w×h pixel surface using the standard
// field dimensions and padding.
//
// Sign convention: increasing pitch-y maps to increasing drawing-y
// (no flip). Every marker and trail in this package projects through
// this one function, so the convention cannot drift between layers.
func ToDrawingSpace(p Point, w, h int) (x, y float32) {
	return Project(p, w, h, FieldLength, FieldWidth, Padding)
}

// Project maps p onto a w×h pixel surface for a field of the given
// real dimensions, keeping pad pixels clear on every side. Each axis
// is normalized into [0,1] by (coord + dim/2) / dim, scaled into the
// drawable span, and offset by the padding. Pure; no state.
func Project(p Point, w, h int, length, width, pad float32) (x, y float32) {
	x = pad + (p.X+length/2)/length*(float32(w)-2*pad)
	y = pad + (p.Y+width/2)/width*(float32(h)-2*pad)
	return x, y
}

// dist returns the Euclidean distance between two drawing-space points.
func dist(x0, y0, x1, y1 float32) float32 {
	return math32.Hypot(x1-x0, y1-y0)
}
