package geom

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Dimmed returns col with its opacity scaled by alpha. An alpha outside
// [0,1] returns col unchanged.
func Dimmed(col color.Color, alpha float64) color.Color {
	if col == nil || alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return col
	}
	r, g, b, a := col.RGBA()
	return color.RGBA64{
		uint16(float64(r) * alpha),
		uint16(float64(g) * alpha),
		uint16(float64(b) * alpha),
		uint16(float64(a) * alpha),
	}
}

// pixels maps the pixel coordinates of a View of size w x h onto a
// canvas. Pixel y grows downwards, canvas y upwards.
type pixels struct {
	canvas draw.Canvas
	sx, sy vg.Length
}

func newPixels(c draw.Canvas, w, h int) pixels {
	r := CanonicRectangle(c.Rectangle)
	c.Rectangle = r
	p := pixels{canvas: c, sx: 1, sy: 1}
	if w > 0 {
		p.sx = (r.Max.X - r.Min.X) / vg.Length(w)
	}
	if h > 0 {
		p.sy = (r.Max.Y - r.Min.Y) / vg.Length(h)
	}
	return p
}

// pt is the canvas point of the pixel (x,y).
func (p pixels) pt(x, y int) vg.Point {
	return vg.Point{
		X: p.canvas.Min.X + vg.Length(x)*p.sx,
		Y: p.canvas.Max.Y - vg.Length(y)*p.sy,
	}
}

func (p pixels) point(q image.Point) vg.Point { return p.pt(q.X, q.Y) }

// rect is the closed polygon covering the pixel rectangle r.
func (p pixels) rect(r image.Rectangle) []vg.Point {
	return []vg.Point{
		p.pt(r.Min.X, r.Min.Y),
		p.pt(r.Max.X, r.Min.Y),
		p.pt(r.Max.X, r.Max.Y),
		p.pt(r.Min.X, r.Max.Y),
	}
}

// length converts a length in pixels.
func (p pixels) length(l float64) vg.Length {
	return vg.Length(l) * min(p.sx, p.sy)
}
