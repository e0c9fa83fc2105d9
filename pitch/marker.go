package pitch

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// A Marker is anything bound to a pitch-space position that can draw
// itself onto a surface and answer pointer queries against its drawn
// geometry. Markers never cache projected coordinates; they reproject
// from the surface dimensions on every call, so a stored scene
// survives resizes untouched.
//
// The variant set is closed: PlayerMarker, BallMarker, EventMarker.
type Marker interface {
	// Render draws the marker onto dst, projecting its pitch-space
	// position into a w×h surface.
	Render(dst *ebiten.Image, w, h int)
	// HitTest reports whether the drawing-space point (px,py) falls
	// inside the marker's pointer-target area on a w×h surface.
	HitTest(px, py float32, w, h int) bool
}

// markerBase carries the position shared by every marker variant.
//
// Its Render panics on purpose: a variant that reaches this method
// forgot to provide its own drawing code, which is a programming
// error, not bad input data. Input-level problems (missing
// coordinates, unknown tags) are always normalized to "draw nothing"
// instead.
type markerBase struct {
	Pos Point
}

func (b markerBase) Render(dst *ebiten.Image, w, h int) {
	panic("pitch: marker variant does not implement Render")
}

func (b markerBase) HitTest(px, py float32, w, h int) bool {
	return false
}

// project maps the marker's position into drawing space.
func (b markerBase) project(w, h int) (float32, float32) {
	return ToDrawingSpace(b.Pos, w, h)
}

// withinRadius reports whether (px,py) lies within r of the marker's
// projected center.
func (b markerBase) withinRadius(px, py float32, w, h int, r float32) bool {
	cx, cy := b.project(w, h)
	return dist(px, py, cx, cy) <= r
}
