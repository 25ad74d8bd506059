package graph

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultOverflow is the default margin in pixels by which a mapped value
// may lie outside of the device rectangle.
const DefaultOverflow = 10000

// ----------------------------------------------------------------------------
// Mapper

// A Mapper maps between transformed data space (Bounds) and device space
// (Rect). Pixel Y coordinates grow downwards while data Y values grow
// upwards.
//
// Mapped values outside of Bounds are clamped to Overflow pixels outside
// of Rect, so that lines to far off points still have a sensible direction
// without producing huge coordinates.
type Mapper struct {
	Bounds     Bounds          // transformed data space
	Rect       image.Rectangle // device space
	TransformX Transform       // nil is the identity
	TransformY Transform       // nil is the identity
	Overflow   int             // 0 means DefaultOverflow
}

func (m *Mapper) overflow() int {
	if m.Overflow <= 0 {
		return DefaultOverflow
	}
	return m.Overflow
}

// Forced returns a copy of m using the forced bounds b and the forced
// device rectangle r. Invalid bounds and empty rectangles are ignored.
func (m Mapper) Forced(b Bounds, r image.Rectangle) Mapper {
	if b.IsValid() {
		m.Bounds = b
	}
	if !r.Empty() {
		m.Rect = r
	}
	return m
}

// offset computes the clamped pixel offset of v from min.
// NaN maps to the negative overflow margin.
func (m *Mapper) offset(v, lo, delta float64, size int) int {
	k := float64(m.overflow())
	off := (v - lo) * float64(size) / safeDelta(delta)
	if math.IsNaN(off) {
		return -int(k)
	}
	return int(math.Round(clamp(off, -k, float64(size)+k)))
}

// MapX maps the x value v to a pixel column. If transform is set, v is
// in data space and gets transformed first.
func (m *Mapper) MapX(v float64, transform bool) int {
	if transform {
		v = forward(m.TransformX, v)
	}
	return m.Rect.Min.X + m.offset(v, m.Bounds.MinX, m.Bounds.DeltaX(), m.Rect.Dx())
}

// MapY maps the y value v to a pixel row. If transform is set, v is
// in data space and gets transformed first.
func (m *Mapper) MapY(v float64, transform bool) int {
	if transform {
		v = forward(m.TransformY, v)
	}
	return m.Rect.Max.Y - m.offset(v, m.Bounds.MinY, m.Bounds.DeltaY(), m.Rect.Dy())
}

// MapXs maps all values in vs like MapX.
func (m *Mapper) MapXs(vs []float64, transform bool) []int {
	px := make([]int, len(vs))
	lo, delta, size := m.Bounds.MinX, m.Bounds.DeltaX(), m.Rect.Dx()
	for i, v := range vs {
		if transform {
			v = forward(m.TransformX, v)
		}
		px[i] = m.Rect.Min.X + m.offset(v, lo, delta, size)
	}
	return px
}

// MapYs maps all values in vs to pixel rows. Unlike MapY a value mapping
// strictly above or below Rect is replaced by the sentinel Rect.Min.Y-K
// or Rect.Max.Y+K respectively (K being the overflow margin), see
// NonFitting.
func (m *Mapper) MapYs(vs []float64, transform bool) []int {
	py := make([]int, len(vs))
	k := m.overflow()
	lo, delta, size := m.Bounds.MinY, safeDelta(m.Bounds.DeltaY()), m.Rect.Dy()
	for i, v := range vs {
		if transform {
			v = forward(m.TransformY, v)
		}
		off := (v - lo) * float64(size) / delta
		switch {
		case off > float64(size):
			py[i] = m.Rect.Min.Y - k
		case off < 0 || math.IsNaN(off):
			py[i] = m.Rect.Max.Y + k
		default:
			py[i] = m.Rect.Max.Y - int(math.Round(off))
		}
	}
	return py
}

// NonFitting reports whether the pixel row py is one of the sentinels
// produced by MapYs (or a clamped value of MapY) for values outside of
// the device rectangle.
func (m *Mapper) NonFitting(py int) bool {
	k := m.overflow()
	return py <= m.Rect.Min.Y-k || py >= m.Rect.Max.Y+k
}

// UnmapX maps the pixel column px back to an x value. If untransform is
// set the value is transformed back to data space.
func (m *Mapper) UnmapX(px int, untransform bool) float64 {
	v := m.Bounds.MinX
	if w := m.Rect.Dx(); w != 0 {
		v += float64(px-m.Rect.Min.X) * m.Bounds.DeltaX() / float64(w)
	}
	if untransform {
		return inverse(m.TransformX, v)
	}
	return v
}

// UnmapY maps the pixel row py back to a y value. If untransform is
// set the value is transformed back to data space.
func (m *Mapper) UnmapY(py int, untransform bool) float64 {
	v := m.Bounds.MinY
	if h := m.Rect.Dy(); h != 0 {
		v += float64(m.Rect.Max.Y-py) * m.Bounds.DeltaY() / float64(h)
	}
	if untransform {
		return inverse(m.TransformY, v)
	}
	return v
}

// MapWidth converts the transformed x extent v to pixels in [0, Rect.Dx()].
func (m *Mapper) MapWidth(v float64) int {
	w := m.Rect.Dx()
	return int(math.Round(clamp(v*float64(w)/safeDelta(m.Bounds.DeltaX()), 0, float64(w))))
}

// MapHeight converts the transformed y extent v to pixels in [0, Rect.Dy()].
func (m *Mapper) MapHeight(v float64) int {
	h := m.Rect.Dy()
	return int(math.Round(clamp(v*float64(h)/safeDelta(m.Bounds.DeltaY()), 0, float64(h))))
}

// UnmapWidth converts px pixels to a transformed x extent.
func (m *Mapper) UnmapWidth(px int) float64 {
	if m.Rect.Dx() == 0 {
		return 0
	}
	return float64(px) * m.Bounds.DeltaX() / float64(m.Rect.Dx())
}

// UnmapHeight converts px pixels to a transformed y extent.
func (m *Mapper) UnmapHeight(px int) float64 {
	if m.Rect.Dy() == 0 {
		return 0
	}
	return float64(px) * m.Bounds.DeltaY() / float64(m.Rect.Dy())
}

// ProjectX is MapX without rounding and clamping.
func (m *Mapper) ProjectX(v float64, transform bool) float64 {
	if transform {
		v = forward(m.TransformX, v)
	}
	return float64(m.Rect.Min.X) + (v-m.Bounds.MinX)*float64(m.Rect.Dx())/safeDelta(m.Bounds.DeltaX())
}

// ProjectY is MapY without rounding and clamping.
func (m *Mapper) ProjectY(v float64, transform bool) float64 {
	if transform {
		v = forward(m.TransformY, v)
	}
	return float64(m.Rect.Max.Y) - (v-m.Bounds.MinY)*float64(m.Rect.Dy())/safeDelta(m.Bounds.DeltaY())
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
