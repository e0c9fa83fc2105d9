package pitch

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// AspectRatio is the recommended surface height/width ratio, matching
// the real pitch proportions (68/105).
const AspectRatio = FieldWidth / FieldLength

// A PlayerSpot is one player's raw input record for SetPlayers. Pos is
// nil when the upstream data carried no coordinates for the player;
// such records are skipped, never errored on.
type PlayerSpot struct {
	Pos    *Point
	Jersey int
	Name   string
	Group  string
}

// A MarkerInfo describes the marker under a pointer, for tooltip use
// by the surrounding application.
type MarkerInfo struct {
	Name   string
	Jersey int
	Group  string
	Team   string // "Home" or "Away"
}

// A Renderer owns the current scene and composites it onto its own
// offscreen surface in fixed layer order: pitch markings, pass
// trails, players, ball, event marker. The scene stores pitch-space
// positions only; pixel coordinates are computed at render and
// hit-test time, never cached, so the scene is resize-agnostic.
//
// Single-threaded by design: the renderer is driven synchronously by
// UI events and is its surface's sole mutator.
type Renderer struct {
	w, h    int
	surface *ebiten.Image
	field   Field

	players []*PlayerMarker // home before away, hit-test order
	ball    *BallMarker
	trail   []TrailSegment
	event   *EventMarker
}

// NewRenderer creates a renderer for a w×h surface. The surface
// itself is allocated lazily at first Render, so scene bookkeeping
// and hit-testing work without a graphics context.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{w: w, h: h, field: DefaultField()}
}

// SetField swaps the background theme.
func (r *Renderer) SetField(f Field) {
	r.field = f
}

// SetPlayers replaces the player layer. Records without coordinates
// are silently dropped; styles have documented fallbacks for missing
// colors.
func (r *Renderer) SetPlayers(home, away []PlayerSpot, homeStyle, awayStyle TeamStyle) {
	r.players = r.players[:0]
	hs, as := homeStyle.Resolve(true), awayStyle.Resolve(false)
	for _, p := range home {
		if p.Pos == nil {
			continue
		}
		r.players = append(r.players, NewPlayerMarker(*p.Pos, p.Jersey, p.Name, p.Group, true, hs))
	}
	for _, p := range away {
		if p.Pos == nil {
			continue
		}
		r.players = append(r.players, NewPlayerMarker(*p.Pos, p.Jersey, p.Name, p.Group, false, as))
	}
}

// SetBall replaces the ball layer; nil clears it.
func (r *Renderer) SetBall(p *Point) {
	if p == nil {
		r.ball = nil
		return
	}
	r.ball = NewBallMarker(*p)
}

// SetPassSequence replaces the trail layer from an ordered ball-track
// sequence. Empty or single-point input clears the layer.
func (r *Renderer) SetPassSequence(points []TrailPoint, colors map[string]color.RGBA) {
	r.trail = BuildTrail(points, colors, TrailFallback)
}

// SetEventMarker replaces the event layer; a nil position clears it.
// Unrecognized kinds are stored and render nothing.
func (r *Renderer) SetEventMarker(kind string, pos *Point) {
	if pos == nil {
		r.event = nil
		return
	}
	r.event = NewEventMarker(kind, *pos)
}

// A layer is one step of the compositing order. The first layer of
// every frame must repaint the whole surface; later layers only add
// on top of it.
type layer struct {
	name        string
	fullRepaint bool
	draw        func(dst *ebiten.Image)
}

// layers builds the draw list for the current scene: background,
// trails, players, ball, event marker, in that order. Render executes
// exactly this list; the list is also the testable statement that the
// surface-clearing background comes first.
func (r *Renderer) layers() []layer {
	w, h := r.w, r.h
	ls := []layer{{
		name:        "field",
		fullRepaint: true,
		draw:        func(dst *ebiten.Image) { r.field.Draw(dst, w, h) },
	}}
	for _, s := range r.trail {
		s := s
		ls = append(ls, layer{name: "trail", draw: func(dst *ebiten.Image) { s.Render(dst, w, h) }})
	}
	for _, p := range r.players {
		p := p
		ls = append(ls, layer{name: "player", draw: func(dst *ebiten.Image) { p.Render(dst, w, h) }})
	}
	if r.ball != nil {
		b := r.ball
		ls = append(ls, layer{name: "ball", draw: func(dst *ebiten.Image) { b.Render(dst, w, h) }})
	}
	if r.event != nil {
		e := r.event
		ls = append(ls, layer{name: "event", draw: func(dst *ebiten.Image) { e.Render(dst, w, h) }})
	}
	return ls
}

// Render redraws the whole scene. The background layer repaints every
// pixel first, so no frame ever carries artifacts of the previous
// one. Safe to call with no scene set; that draws the bare pitch.
func (r *Renderer) Render() {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	if r.surface == nil {
		r.surface = ebiten.NewImage(r.w, r.h)
	}
	for _, l := range r.layers() {
		l.draw(r.surface)
	}
}

// Resize updates the surface dimensions and immediately re-renders
// the last-known scene so every marker reprojects; stale pixel
// coordinates never survive a size change.
func (r *Renderer) Resize(w, h int) {
	if w == r.w && h == r.h {
		return
	}
	r.w, r.h = w, h
	if r.surface != nil {
		r.surface.Deallocate()
		r.surface = nil
		r.Render()
	}
}

// HitTest returns the player under the drawing-space point (x,y), or
// nil. Players are scanned in insertion order, home side first; the
// ball, trails, and background are not pointer targets.
func (r *Renderer) HitTest(x, y float32) *MarkerInfo {
	for _, p := range r.players {
		if !p.HitTest(x, y, r.w, r.h) {
			continue
		}
		team := "Away"
		if p.Home {
			team = "Home"
		}
		return &MarkerInfo{Name: p.Name, Jersey: p.Jersey, Group: p.Group, Team: team}
	}
	return nil
}

// Surface returns the composited image, or nil before the first
// Render.
func (r *Renderer) Surface() *ebiten.Image {
	return r.surface
}

// Size returns the current surface dimensions.
func (r *Renderer) Size() (int, int) {
	return r.w, r.h
}
