package pitch

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	fontSrc  *text.GoTextFaceSource
)

// fontSource parses the embedded face on first use. The font is
// compiled into the binary, so a parse failure is a programming
// error and panics; this package never logs.
func fontSource() *text.GoTextFaceSource {
	fontOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("pitch: can't parse embedded font: " + err.Error())
		}
		fontSrc = s
	})
	return fontSrc
}

// Face returns a text face at the given size, backed by the package's
// embedded font. Exposed so callers drawing overlays (tooltips) match
// the marker typography.
func Face(size float64) text.Face {
	return &text.GoTextFace{Source: fontSource(), Size: size}
}

// drawCentered draws s centered on (x,y). Options are per-call; no
// drawing state survives the return.
func drawCentered(dst *ebiten.Image, s string, x, y float32, size float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, Face(size), op)
}
