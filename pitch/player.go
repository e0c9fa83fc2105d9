package pitch

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerRadius is the drawn radius of a player disc in pixels,
// constant at every surface size.
const PlayerRadius = 10

// hitSlop widens the pointer target beyond the visible disc.
const hitSlop = 5

// A PlayerMarker is one player on the pitch: a team-colored disc with
// a glow ring, a home/away outline, and the jersey number.
type PlayerMarker struct {
	markerBase
	Jersey int
	Name   string
	Group  string
	Home   bool
	Style  Style
	Radius float32
}

// NewPlayerMarker builds a player marker at the standard radius.
func NewPlayerMarker(pos Point, jersey int, name, group string, home bool, style Style) *PlayerMarker {
	return &PlayerMarker{
		markerBase: markerBase{Pos: pos},
		Jersey:     jersey,
		Name:       name,
		Group:      group,
		Home:       home,
		Style:      style,
		Radius:     PlayerRadius,
	}
}

// outline is keyed to side, not kit, so two teams in similar kits stay
// distinguishable.
func (m *PlayerMarker) outline() Style {
	if m.Home {
		return Style{Fill: HomeFallback, Text: TextFallback}
	}
	return Style{Fill: AwayFallback, Text: TextFallback}
}

func (m *PlayerMarker) Render(dst *ebiten.Image, w, h int) {
	cx, cy := m.project(w, h)

	// glow ring, then disc, then outline, then number
	vector.DrawFilledCircle(dst, cx, cy, m.Radius+2, scaleAlpha(m.Style.Fill, 0.35), true)
	vector.DrawFilledCircle(dst, cx, cy, m.Radius, m.Style.Fill, true)
	vector.StrokeCircle(dst, cx, cy, m.Radius, 2, m.outline().Fill, true)
	drawCentered(dst, strconv.Itoa(m.Jersey), cx, cy, 11, m.Style.Text)
}

func (m *PlayerMarker) HitTest(px, py float32, w, h int) bool {
	return m.withinRadius(px, py, w, h, m.Radius+hitSlop)
}
