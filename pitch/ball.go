package pitch

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BallRadius is the drawn radius of the ball in pixels.
const BallRadius = 10

// A BallMarker is the ball: a white disc with a black outline and an
// inner dot, under a soft white glow.
type BallMarker struct {
	markerBase
	Radius float32
}

// NewBallMarker builds a ball marker at the standard radius.
func NewBallMarker(pos Point) *BallMarker {
	return &BallMarker{markerBase: markerBase{Pos: pos}, Radius: BallRadius}
}

func (m *BallMarker) Render(dst *ebiten.Image, w, h int) {
	cx, cy := m.project(w, h)

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{0x00, 0x00, 0x00, 0xff}
	vector.DrawFilledCircle(dst, cx, cy, m.Radius+6, scaleAlpha(white, 0.25), true)
	vector.DrawFilledCircle(dst, cx, cy, m.Radius, white, true)
	vector.StrokeCircle(dst, cx, cy, m.Radius, 1.5, black, true)
	// inner dot suggesting the panel pattern
	vector.DrawFilledCircle(dst, cx, cy, m.Radius*0.4, black, true)
}

func (m *BallMarker) HitTest(px, py float32, w, h int) bool {
	return m.withinRadius(px, py, w, h, m.Radius+hitSlop)
}
