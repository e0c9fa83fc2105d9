package pitch

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// eventIconOffset lifts the glyph above the projected position so it
// doesn't cover the ball or player underneath.
const eventIconOffset = 25

// eventStyle is one entry of the closed event icon table.
type eventStyle struct {
	glyph string
	fill  color.RGBA
	glow  color.RGBA
}

// eventStyles keys the display labels the match data produces. Glyphs
// stay inside the WGL4 set so the embedded font covers them. Unknown
// labels are a silent no-op, not an error; there is no fallback icon.
var eventStyles = map[string]eventStyle{
	"Pass":          {"→", color.RGBA{0x60, 0xa5, 0xfa, 0xff}, color.RGBA{0x1d, 0x4e, 0xd8, 0xff}},
	"Shot":          {"●", color.RGBA{0xf9, 0x73, 0x16, 0xff}, color.RGBA{0xc2, 0x41, 0x0c, 0xff}},
	"Cross":         {"↗", color.RGBA{0xa7, 0x8b, 0xfa, 0xff}, color.RGBA{0x6d, 0x28, 0xd9, 0xff}},
	"Clearance":     {"↑", color.RGBA{0xfb, 0xbf, 0x24, 0xff}, color.RGBA{0xb4, 0x53, 0x09, 0xff}},
	"Challenge":     {"×", color.RGBA{0xf8, 0x71, 0x71, 0xff}, color.RGBA{0xb9, 0x1c, 0x1c, 0xff}},
	"Touch":         {"○", color.RGBA{0x4a, 0xde, 0x80, 0xff}, color.RGBA{0x15, 0x80, 0x3d, 0xff}},
	"Ball Carry":    {"►", color.RGBA{0x2d, 0xd4, 0xbf, 0xff}, color.RGBA{0x0f, 0x76, 0x6e, 0xff}},
	"Initial Touch": {"■", color.RGBA{0x94, 0xa3, 0xb8, 0xff}, color.RGBA{0x47, 0x55, 0x69, 0xff}},
	"Rebound":       {"▼", color.RGBA{0xe8, 0x79, 0xf9, 0xff}, color.RGBA{0xa2, 0x1c, 0xaf, 0xff}},
}

// eventStyleFor looks up the icon entry for a label.
func eventStyleFor(kind string) (eventStyle, bool) {
	s, ok := eventStyles[kind]
	return s, ok
}

// An EventMarker flags the single active event at a pitch position
// with a typed glyph. Markers with an unrecognized Kind render
// nothing.
type EventMarker struct {
	markerBase
	Kind string
}

// NewEventMarker builds an event marker; any string is accepted as
// Kind, recognized or not.
func NewEventMarker(kind string, pos Point) *EventMarker {
	return &EventMarker{markerBase: markerBase{Pos: pos}, Kind: kind}
}

func (m *EventMarker) Render(dst *ebiten.Image, w, h int) {
	st, ok := eventStyleFor(m.Kind)
	if !ok {
		return
	}
	cx, cy := m.project(w, h)
	cy -= eventIconOffset

	// stacked translucent discs stand in for a shadow blur
	vector.DrawFilledCircle(dst, cx, cy, 14, scaleAlpha(st.glow, 0.25), true)
	vector.DrawFilledCircle(dst, cx, cy, 10, scaleAlpha(st.glow, 0.45), true)
	drawCentered(dst, st.glyph, cx, cy, 14, st.fill)
}

// HitTest always misses: event markers are annotations, not pointer
// targets.
func (m *EventMarker) HitTest(px, py float32, w, h int) bool {
	return false
}
