// Value Transformations
//
// An axis may transform values before they are mapped to pixels, e.g. to
// get a logarithmic axis. Transformations must be monotonically increasing.
package graph

import (
	"math"

	"gonum.org/v1/plot"
)

// Transform transforms a single value forward (data space to transformed
// space) or backwards.
type Transform interface {
	Transform(v float64, forward bool) float64
}

// TransformFunc adapts an ordinary function to the Transform interface.
type TransformFunc func(v float64, forward bool) float64

// Transform calls f(v, forward).
func (f TransformFunc) Transform(v float64, forward bool) float64 { return f(v, forward) }

// A Transformation bundles the two functions Forward and Inverse together
// with an appropiate Ticker for grids layed out in untransformed space.
// A nil function is the identity.
type Transformation struct {
	Name    string
	Forward func(x float64) float64
	Inverse func(y float64) float64
	Ticker  plot.Ticker
}

// Transform implements Transform.
func (t Transformation) Transform(v float64, forward bool) float64 {
	f := t.Inverse
	if forward {
		f = t.Forward
	}
	if f == nil {
		return v
	}
	return f(v)
}

// IdentityTrans does not transform at all.
var IdentityTrans = Transformation{
	Name:   "Identity",
	Ticker: plot.DefaultTicks{},
}

// Log10Trans is the decadic logarithm.
var Log10Trans = Transformation{
	Name:    "Log10",
	Forward: math.Log10,
	Inverse: func(y float64) float64 { return math.Pow(10, y) },
	Ticker:  plot.LogTicks{},
}

// LnTrans is the natural logarithm.
var LnTrans = Transformation{
	Name:    "Ln",
	Forward: math.Log,
	Inverse: math.Exp,
	Ticker:  plot.LogTicks{},
}

// SqrtTrans is the square root; negative values have no image.
var SqrtTrans = Transformation{
	Name:    "SquareRoot",
	Forward: math.Sqrt,
	Inverse: func(y float64) float64 { return y * y },
	Ticker:  plot.DefaultTicks{},
}

// TransformationByName looks up one of the predefined transformations.
func TransformationByName(name string) (Transformation, bool) {
	for _, t := range []Transformation{IdentityTrans, Log10Trans, LnTrans, SqrtTrans} {
		if t.Name == name {
			return t, true
		}
	}
	return Transformation{}, false
}

// forward applies t forward; a nil t is the identity.
func forward(t Transform, v float64) float64 {
	if t == nil {
		return v
	}
	return t.Transform(v, true)
}

// inverse applies t backwards; a nil t is the identity.
func inverse(t Transform, v float64) float64 {
	if t == nil {
		return v
	}
	return t.Transform(v, false)
}

// tickerOf returns the Ticker attached to t if t is a Transformation.
func tickerOf(t Transform) plot.Ticker {
	if tt, ok := t.(Transformation); ok && tt.Ticker != nil {
		return tt.Ticker
	}
	return nil
}
