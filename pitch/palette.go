package pitch

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Fallback kit colors, used whenever a team style omits or mangles a
// color value.
var (
	HomeFallback  = color.RGBA{0x3b, 0x82, 0xf6, 0xff} // blue
	AwayFallback  = color.RGBA{0xef, 0x44, 0x44, 0xff} // red
	TextFallback  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	TrailFallback = color.RGBA{0x94, 0xa3, 0xb8, 0xff} // slate gray
)

// A TeamStyle is the raw per-side styling record supplied by the
// caller. Colors are hex strings ("#rrggbb"); empty or malformed
// values fall back to the side's defaults rather than erroring.
type TeamStyle struct {
	PrimaryColor string
	TextColor    string
	ShortName    string
	Name         string
}

// A Style bundles the resolved drawing colors for one side.
type Style struct {
	Fill color.RGBA
	Text color.RGBA
}

// Resolve parses the style's hex colors, substituting the home or
// away fallbacks for anything unparseable.
func (ts TeamStyle) Resolve(home bool) Style {
	fill := HomeFallback
	if !home {
		fill = AwayFallback
	}
	return Style{
		Fill: ParseHex(ts.PrimaryColor, fill),
		Text: ParseHex(ts.TextColor, TextFallback),
	}
}

// ParseHex converts a "#rrggbb" string to an opaque RGBA, returning
// fallback when s is empty or not a valid hex color.
func ParseHex(s string, fallback color.RGBA) color.RGBA {
	if s == "" {
		return fallback
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// scaleAlpha multiplies an alpha-premultiplied color by a, clamped to
// [0,1]. Used for trail fading and marker glows.
func scaleAlpha(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
