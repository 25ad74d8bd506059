package graph

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Bounds

// Bounds is a rectangle in data space. Bounds with a NaN edge are invalid
// and are used to signal "not set", e.g. for per series forced bounds.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// InvalidBounds returns bounds with all edges unset.
func InvalidBounds() Bounds {
	return Bounds{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
}

// BoundsOf combines the two intervals x and y.
func BoundsOf(x, y Interval) Bounds {
	return Bounds{MinX: x.Min, MaxX: x.Max, MinY: y.Min, MaxY: y.Max}
}

// IsValid reports whether none of the edges of b is NaN.
func (b Bounds) IsValid() bool {
	return !math.IsNaN(b.MinX) && !math.IsNaN(b.MaxX) &&
		!math.IsNaN(b.MinY) && !math.IsNaN(b.MaxY)
}

// DeltaX is the width of b in data units.
func (b Bounds) DeltaX() float64 { return b.MaxX - b.MinX }

// DeltaY is the height of b in data units.
func (b Bounds) DeltaY() float64 { return b.MaxY - b.MinY }

// X returns the horizontal extent of b.
func (b Bounds) X() Interval { return Interval{b.MinX, b.MaxX} }

// Y returns the vertical extent of b.
func (b Bounds) Y() Interval { return Interval{b.MinY, b.MaxY} }

func (b Bounds) String() string {
	return fmt.Sprintf("[%g:%g]x[%g:%g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// DegenerateDelta replaces a zero (or non-finite) extent when mapping.
// A value equal to the minimum then maps onto the origin of the device
// rectangle while every other value lands on the overflow margin.
const DegenerateDelta = math.SmallestNonzeroFloat64

func safeDelta(d float64) float64 {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return DegenerateDelta
	}
	return d
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include the finite values in x.
// NaN and infinite values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if !finite(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// IsEmpty reports whether i has not seen any value.
func (i Interval) IsEmpty() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

// Equal reports whether i and j have the same edges, NaN edges being
// equal to each other.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// orZero replaces an empty interval by [0:0].
func (i Interval) orZero() Interval {
	if i.IsEmpty() {
		return Interval{}
	}
	return i
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
