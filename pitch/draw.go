package pitch

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage backs every DrawTriangles call in this package. The 1px
// sub-image avoids bleeding from the texture border when filtering.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// strokeDashed draws a dashed line from (x0,y0) to (x1,y1) with the
// given on/off pattern. Zero-length lines draw nothing.
func strokeDashed(dst *ebiten.Image, x0, y0, x1, y1, width, on, off float32, col color.RGBA) {
	total := dist(x0, y0, x1, y1)
	if total == 0 {
		return
	}
	ux, uy := (x1-x0)/total, (y1-y0)/total
	for d := float32(0); d < total; d += on + off {
		end := math32.Min(d+on, total)
		vector.StrokeLine(dst,
			x0+ux*d, y0+uy*d,
			x0+ux*end, y0+uy*end,
			width, col, true)
	}
}

// fillTriangle fills the triangle (ax,ay)-(bx,by)-(cx,cy) with a flat
// color via a vector path.
func fillTriangle(dst *ebiten.Image, ax, ay, bx, by, cx, cy float32, col color.RGBA) {
	var p vector.Path
	p.MoveTo(ax, ay)
	p.LineTo(bx, by)
	p.LineTo(cx, cy)
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(col.R) / 255
	g := float32(col.G) / 255
	b := float32(col.B) / 255
	a := float32(col.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// fillVerticalGradient fills the rectangle with a top-to-bottom color
// ramp using a single two-triangle quad with per-vertex colors.
func fillVerticalGradient(dst *ebiten.Image, x, y, w, h float32, top, bottom color.RGBA) {
	tr := float32(top.R) / 255
	tg := float32(top.G) / 255
	tb := float32(top.B) / 255
	br := float32(bottom.R) / 255
	bg := float32(bottom.G) / 255
	bb := float32(bottom.B) / 255
	vs := []ebiten.Vertex{
		{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: 1},
		{DstX: x + w, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: 1},
		{DstX: x, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: 1},
		{DstX: x + w, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: 1},
	}
	is := []uint16{0, 1, 2, 2, 1, 3}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}
