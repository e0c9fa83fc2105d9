package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var surfaceSizes = [][2]int{
	{800, 520},
	{1024, 663},
	{400, 300},
	{1920, 1080},
}

func TestProjectionStaysInsidePadding(t *testing.T) {
	for _, size := range surfaceSizes {
		w, h := size[0], size[1]
		for x := float32(-52.5); x <= 52.5; x += 2.5 {
			for y := float32(-34); y <= 34; y += 2 {
				px, py := ToDrawingSpace(Pt(x, y), w, h)
				assert.GreaterOrEqual(t, px, float32(Padding), "x at (%v,%v) on %dx%d", x, y, w, h)
				assert.LessOrEqual(t, px, float32(w)-Padding, "x at (%v,%v) on %dx%d", x, y, w, h)
				assert.GreaterOrEqual(t, py, float32(Padding), "y at (%v,%v) on %dx%d", x, y, w, h)
				assert.LessOrEqual(t, py, float32(h)-Padding, "y at (%v,%v) on %dx%d", x, y, w, h)
			}
		}
	}
}

func TestProjectionCorners(t *testing.T) {
	w, h := 800, 520
	x, y := ToDrawingSpace(Pt(-52.5, -34), w, h)
	assert.InDelta(t, Padding, x, 1e-3)
	assert.InDelta(t, Padding, y, 1e-3)
	x, y = ToDrawingSpace(Pt(52.5, 34), w, h)
	assert.InDelta(t, float32(w)-Padding, x, 1e-3)
	assert.InDelta(t, float32(h)-Padding, y, 1e-3)
}

// A player marker and an event marker at the identical pitch point
// must land on the identical pixel; the projection has one sign
// convention for every variant.
func TestSignConventionSharedAcrossVariants(t *testing.T) {
	pos := Pt(17.25, -12.5)
	pm := NewPlayerMarker(pos, 9, "x", "CF", true, TeamStyle{}.Resolve(true))
	em := NewEventMarker("Shot", pos)
	bm := NewBallMarker(pos)

	for _, size := range surfaceSizes {
		px, py := pm.project(size[0], size[1])
		ex, ey := em.project(size[0], size[1])
		bx, by := bm.project(size[0], size[1])
		assert.Equal(t, px, ex)
		assert.Equal(t, py, ey)
		assert.Equal(t, px, bx)
		assert.Equal(t, py, by)
	}
}

func TestCenterScenario(t *testing.T) {
	// ball at midfield on an 800x520 surface sits at the exact
	// surface center; a player at x=-10 is left of it
	bx, by := ToDrawingSpace(Pt(0, 0), 800, 520)
	assert.InDelta(t, 400, bx, 1e-3)
	assert.InDelta(t, 260, by, 1e-3)

	px, _ := ToDrawingSpace(Pt(-10, 0), 800, 520)
	assert.Less(t, px, bx)
}

func TestProjectIgnoresZ(t *testing.T) {
	flat := Pt(3, 4)
	aired := Point{X: 3, Y: 4, Z: 2.5}
	fx, fy := ToDrawingSpace(flat, 800, 520)
	ax, ay := ToDrawingSpace(aired, 800, 520)
	assert.Equal(t, fx, ax)
	assert.Equal(t, fy, ay)
}
