package pitch

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Trail segment drawing constants: dash pattern, stroke width, and
// arrowhead geometry (back corners arrowLen pixels from the apex at
// ±arrowAngle from the line direction).
const (
	trailDashOn  = 8
	trailDashOff = 4
	trailWidth   = 2
	arrowLen     = 12
	arrowAngle   = math32.Pi / 6
)

// A TrailPoint is one step of the ball along a possession, tagged
// with the team in possession at that moment.
type TrailPoint struct {
	Pos    Point
	TeamID string
}

// A TrailSegment is one directed, faded arrow between two consecutive
// ball positions. Segments are rebuilt wholesale whenever the pass
// sequence changes and never mutated in place. Opacity is derived
// from the segment's place in the sequence, not stored.
type TrailSegment struct {
	From, To Point
	Color    color.RGBA
	Index    int
	Total    int
}

// Opacity derives the segment's alpha: early segments are faint,
// later ones approach full strength.
func (s TrailSegment) Opacity() float32 {
	if s.Total <= 0 {
		return 1
	}
	return 0.4 + 0.6*float32(s.Index)/float32(s.Total)
}

// BuildTrail converts an ordered ball-position sequence into directed
// segments. Each adjacent pair yields one segment colored by the
// origin point's team; teams missing from colors get the fallback.
// Fewer than two points yield no segments.
func BuildTrail(points []TrailPoint, colors map[string]color.RGBA, fallback color.RGBA) []TrailSegment {
	if len(points) < 2 {
		return nil
	}
	segs := make([]TrailSegment, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		col, ok := colors[points[i].TeamID]
		if !ok {
			col = fallback
		}
		segs = append(segs, TrailSegment{
			From:  points[i].Pos,
			To:    points[i+1].Pos,
			Color: col,
			Index: i,
			Total: len(points),
		})
	}
	return segs
}

// Render draws the segment as a dashed line capped with a solid
// arrowhead, both at the derived opacity. Coincident endpoints draw
// nothing.
func (s TrailSegment) Render(dst *ebiten.Image, w, h int) {
	x0, y0 := ToDrawingSpace(s.From, w, h)
	x1, y1 := ToDrawingSpace(s.To, w, h)
	total := dist(x0, y0, x1, y1)
	if total == 0 {
		return
	}

	col := scaleAlpha(s.Color, s.Opacity())
	strokeDashed(dst, x0, y0, x1, y1, trailWidth, trailDashOn, trailDashOff, col)

	theta := math32.Atan2(y1-y0, x1-x0)
	sl, cl := math32.Sincos(theta - arrowAngle)
	sr, cr := math32.Sincos(theta + arrowAngle)
	fillTriangle(dst,
		x1, y1,
		x1-arrowLen*cl, y1-arrowLen*sl,
		x1-arrowLen*cr, y1-arrowLen*sr,
		col)
}
