package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldLayoutProportions(t *testing.T) {
	l := layoutField(800, 520)
	dw, dh := float32(740), float32(460)

	assert.Equal(t, dw, l.dw)
	assert.Equal(t, dh, l.dh)
	assert.Equal(t, float32(400), l.cx)
	assert.Equal(t, float32(260), l.cy)

	assert.InDelta(t, 0.0873*dw, l.circleR, 1e-3)
	assert.InDelta(t, 0.157*dw, l.penW, 1e-3)
	assert.InDelta(t, 0.6*dh, l.penH, 1e-3)
	assert.InDelta(t, 0.0524*dw, l.goalW, 1e-3)
	assert.InDelta(t, 0.265*dh, l.goalH, 1e-3)
	assert.InDelta(t, 0.105*dw, l.spotInset, 1e-3)
}

// Proportions are ratios of the drawable area, not absolute pixels:
// doubling the surface doubles every measure.
func TestFieldLayoutScales(t *testing.T) {
	small := layoutField(800, 520)
	l2 := layoutField(740*2+2*Padding, 460*2+2*Padding)
	assert.InDelta(t, small.circleR*2, l2.circleR, 1e-3)
	assert.InDelta(t, small.penW*2, l2.penW, 1e-3)
	assert.InDelta(t, small.penH*2, l2.penH, 1e-3)
	assert.InDelta(t, small.goalH*2, l2.goalH, 1e-3)
}
