package pitch

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Field marking proportions, fixed ratios of the drawable area so the
// pitch stays proportionate at any surface size. The center circle
// ratio derives from the real geometry: 9.15m radius over a 105m
// pitch.
const (
	centerCircleRatio = 0.0873
	penaltyAreaWRatio = 0.157
	penaltyAreaHRatio = 0.6
	goalAreaWRatio    = 0.0524
	goalAreaHRatio    = 0.265
	penaltySpotRatio  = 0.105
	goalDepthRatio    = 0.015
	goalMouthRatio    = 0.108
	mowingStripes     = 10
	lineWidth         = 2
	spotRadius        = 3
)

// A Field draws the static pitch markings. The zero value uses the
// stock colors; construct with custom colors for themed surfaces.
type Field struct {
	Background  color.RGBA
	GrassTop    color.RGBA
	GrassBottom color.RGBA
	Stripe      color.RGBA
	Line        color.RGBA
}

// DefaultField is the stock dark-background pitch.
func DefaultField() Field {
	return Field{
		Background:  color.RGBA{0x0f, 0x17, 0x2a, 0xff},
		GrassTop:    color.RGBA{0x16, 0x65, 0x34, 0xff},
		GrassBottom: color.RGBA{0x14, 0x53, 0x2d, 0xff},
		Stripe:      color.RGBA{0xff, 0xff, 0xff, 0xff},
		Line:        color.RGBA{0xf8, 0xfa, 0xfc, 0xff},
	}
}

// fieldLayout is the computed drawing-space geometry for one surface
// size. Kept separate from the drawing calls so the proportions are
// testable as plain numbers.
type fieldLayout struct {
	x, y, dw, dh float32 // drawable rect
	cx, cy       float32
	circleR      float32
	penW, penH   float32
	goalW, goalH float32
	spotInset    float32
	mouthD       float32 // goal depth outside the byline
	mouthH       float32
}

func layoutField(w, h int) fieldLayout {
	l := fieldLayout{
		x:  Padding,
		y:  Padding,
		dw: float32(w) - 2*Padding,
		dh: float32(h) - 2*Padding,
	}
	l.cx = l.x + l.dw/2
	l.cy = l.y + l.dh/2
	l.circleR = centerCircleRatio * l.dw
	l.penW = penaltyAreaWRatio * l.dw
	l.penH = penaltyAreaHRatio * l.dh
	l.goalW = goalAreaWRatio * l.dw
	l.goalH = goalAreaHRatio * l.dh
	l.spotInset = penaltySpotRatio * l.dw
	l.mouthD = goalDepthRatio * l.dw
	l.mouthH = goalMouthRatio * l.dh
	return l
}

// Draw renders the full background layer: fill, grass gradient,
// mowing stripes, then the white markings. It repaints every pixel of
// dst, so it doubles as the compositor's frame clear. All style
// choices are per-call; nothing persists on the surface afterward.
func (f Field) Draw(dst *ebiten.Image, w, h int) {
	if f == (Field{}) {
		f = DefaultField()
	}
	l := layoutField(w, h)

	dst.Fill(f.Background)
	fillVerticalGradient(dst, l.x, l.y, l.dw, l.dh, f.GrassTop, f.GrassBottom)

	// alternating mowing stripes across the long axis
	stripeW := l.dw / mowingStripes
	for i := 0; i < mowingStripes; i += 2 {
		vector.DrawFilledRect(dst, l.x+float32(i)*stripeW, l.y, stripeW, l.dh,
			scaleAlpha(f.Stripe, 0.04), false)
	}

	// boundary and halfway line
	vector.StrokeRect(dst, l.x, l.y, l.dw, l.dh, lineWidth, f.Line, true)
	vector.StrokeLine(dst, l.cx, l.y, l.cx, l.y+l.dh, lineWidth, f.Line, true)

	// center circle and spot
	vector.StrokeCircle(dst, l.cx, l.cy, l.circleR, lineWidth, f.Line, true)
	vector.DrawFilledCircle(dst, l.cx, l.cy, spotRadius, f.Line, true)

	// penalty and goal areas, both ends
	vector.StrokeRect(dst, l.x, l.cy-l.penH/2, l.penW, l.penH, lineWidth, f.Line, true)
	vector.StrokeRect(dst, l.x+l.dw-l.penW, l.cy-l.penH/2, l.penW, l.penH, lineWidth, f.Line, true)
	vector.StrokeRect(dst, l.x, l.cy-l.goalH/2, l.goalW, l.goalH, lineWidth, f.Line, true)
	vector.StrokeRect(dst, l.x+l.dw-l.goalW, l.cy-l.goalH/2, l.goalW, l.goalH, lineWidth, f.Line, true)

	// penalty spots
	vector.DrawFilledCircle(dst, l.x+l.spotInset, l.cy, spotRadius, f.Line, true)
	vector.DrawFilledCircle(dst, l.x+l.dw-l.spotInset, l.cy, spotRadius, f.Line, true)

	// goals, drawn outside the bylines
	vector.StrokeRect(dst, l.x-l.mouthD, l.cy-l.mouthH/2, l.mouthD, l.mouthH, lineWidth, f.Line, true)
	vector.StrokeRect(dst, l.x+l.dw, l.cy-l.mouthH/2, l.mouthD, l.mouthH, lineWidth, f.Line, true)
}
