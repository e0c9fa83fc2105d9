package pitch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"valid", "#3b82f6", color.RGBA{0x3b, 0x82, 0xf6, 0xff}},
		{"empty falls back", "", TrailFallback},
		{"garbage falls back", "notacolor", TrailFallback},
		{"missing hash falls back", "3b82f6", TrailFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHex(tt.in, TrailFallback))
		})
	}
}

func TestResolveFallbacks(t *testing.T) {
	home := TeamStyle{}.Resolve(true)
	assert.Equal(t, HomeFallback, home.Fill)
	assert.Equal(t, TextFallback, home.Text)

	away := TeamStyle{}.Resolve(false)
	assert.Equal(t, AwayFallback, away.Fill)

	styled := TeamStyle{PrimaryColor: "#112233", TextColor: "#445566"}.Resolve(false)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0xff}, styled.Fill)
	assert.Equal(t, color.RGBA{0x44, 0x55, 0x66, 0xff}, styled.Text)
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, scaleAlpha(c, 0.5))
	assert.Equal(t, c, scaleAlpha(c, 1))
	assert.Equal(t, color.RGBA{}, scaleAlpha(c, 0))
	// clamped
	assert.Equal(t, c, scaleAlpha(c, 2))
	assert.Equal(t, color.RGBA{}, scaleAlpha(c, -1))
}
