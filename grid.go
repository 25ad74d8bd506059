package graph

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// DefaultGridSpacing is the default minimum distance in pixels between
// two grid lines.
const DefaultGridSpacing = 20

// ----------------------------------------------------------------------------
// Grid settings

// SpacingKind selects how the distance between grid lines is determined.
type SpacingKind int

const (
	// MinPixelsBetweenLines keeps grid lines at least Parameter pixels
	// apart.
	MinPixelsBetweenLines SpacingKind = iota

	// FixedSpacing places a grid line every Parameter units.
	FixedSpacing

	// MaxLinesPerGraph divides the range into Parameter intervals.
	MaxLinesPerGraph

	// TickerSpacing asks a gonum plot.Ticker for the grid lines.
	TickerSpacing
)

// String returns the name of k.
func (k SpacingKind) String() string {
	switch k {
	case MinPixelsBetweenLines:
		return "min-pixels"
	case FixedSpacing:
		return "fixed"
	case MaxLinesPerGraph:
		return "max-lines"
	case TickerSpacing:
		return "ticker"
	}
	return fmt.Sprintf("SpacingKind(%d)", int(k))
}

// GridSettings control the grid lines and labels of one axis.
type GridSettings struct {
	Kind      SpacingKind
	Parameter float64 // pixels, units or number of lines depending on Kind

	// Divider, if positive, snaps the first grid line down to a multiple
	// of Divider and rounds the spacing up to a multiple of Divider.
	Divider float64

	// ProportionalToTransformedScale places the grid lines in transformed
	// space (equidistant on screen) instead of in data space.
	ProportionalToTransformedScale bool

	// TransformLabelValues labels grid lines of a transformed space grid
	// with their data space value (e.g. 100 instead of 2 on a Log10
	// axis).
	TransformLabelValues bool

	ShowGridLines bool
	ShowLabels    bool

	// DistributeLabelsEvenly shows every k'th label for a fixed k
	// instead of as many labels as fit.
	DistributeLabelsEvenly bool

	// Ticker is used for TickerSpacing. If nil the Ticker of the axis
	// Transformation is used for data space grids and plot.DefaultTicks
	// otherwise.
	Ticker plot.Ticker
}

// DefaultGridSettings returns grid settings with a grid line at least
// every DefaultGridSpacing pixels.
func DefaultGridSettings() GridSettings {
	return GridSettings{
		Kind:                           MinPixelsBetweenLines,
		Parameter:                      DefaultGridSpacing,
		ProportionalToTransformedScale: true,
		TransformLabelValues:           true,
		ShowGridLines:                  true,
		ShowLabels:                     true,
		DistributeLabelsEvenly:         true,
	}
}

// ----------------------------------------------------------------------------
// Grid lines

// GridLine is one grid line (tick) of an axis.
type GridLine struct {
	RawValue         float64 // in transformed or data space, see GridDimension
	ScreenCoordinate int
	TextCoordinate   int // left (x axis) or top (y axis) edge of the label
	Label            string
	LabelSize        int // width (x axis) or height (y axis) of the label
	LabelVisible     bool
}

// GridDimension are the grid lines of one axis. If Transformed is set the
// RawValues are in transformed space, otherwise in data space.
type GridDimension struct {
	Lines       []GridLine
	Transformed bool
}

// Template computes the grid line values (only RawValue is set) for the
// transformed range tr and the data range raw spanning pixels pixels.
// The Transform t is consulted for its Ticker only.
func (gs GridSettings) Template(tr, raw Interval, pixels int, t Transform) GridDimension {
	dim := GridDimension{Transformed: gs.ProportionalToTransformedScale}
	rng := raw
	if dim.Transformed {
		rng = tr
	}
	if pixels <= 0 || !finite(rng.Min) || !finite(rng.Max) || !(rng.Min < rng.Max) {
		return dim
	}

	if gs.Kind == TickerSpacing {
		dim.Lines = gs.tickerLines(rng, pixels, t, dim.Transformed)
		return dim
	}

	start, spacing := rng.Min, gs.spacing(rng, pixels)
	if gs.Divider > 0 {
		start = math.Floor(start/gs.Divider) * gs.Divider
		spacing = math.Ceil(spacing/gs.Divider) * gs.Divider
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		spacing = 1
	}

	for i := 0; len(dim.Lines) <= pixels; i++ {
		v := start + float64(i)*spacing
		if !(v < rng.Max) {
			break
		}
		dim.Lines = append(dim.Lines, GridLine{RawValue: v})
	}
	return dim
}

func (gs GridSettings) spacing(rng Interval, pixels int) float64 {
	switch gs.Kind {
	case FixedSpacing:
		return gs.Parameter
	case MaxLinesPerGraph:
		n := gs.Parameter
		if n == 0 {
			n = 1
		}
		return (rng.Max - rng.Min) / n
	default:
		return gs.Parameter * (rng.Max - rng.Min) / float64(pixels)
	}
}

// tickerLines asks a plot.Ticker for the major ticks in rng. The tick
// labels are kept for data space grids only; transformed grids are
// labelled like every other grid, see Axis.labelText.
func (gs GridSettings) tickerLines(rng Interval, pixels int, t Transform, transformed bool) []GridLine {
	ticker := gs.Ticker
	if ticker == nil && !transformed {
		ticker = tickerOf(t)
	}
	if _, ok := ticker.(plot.LogTicks); ok && rng.Min <= 0 {
		ticker = nil
	}
	if ticker == nil {
		ticker = plot.DefaultTicks{}
	}

	var lines []GridLine
	for _, tick := range ticker.Ticks(rng.Min, rng.Max) {
		if tick.IsMinor() || tick.Value < rng.Min || tick.Value > rng.Max {
			continue
		}
		if len(lines) > pixels {
			break
		}
		l := GridLine{RawValue: tick.Value}
		if !transformed {
			l.Label = tick.Label
		}
		lines = append(lines, l)
	}
	return lines
}

// ----------------------------------------------------------------------------
// Tick override

// TickDefinition is a host supplied grid line. An empty Label is replaced
// by the default formatting of Value.
type TickDefinition struct {
	Value float64
	Label string
}

// AxisKind identifies an axis.
type AxisKind int

const (
	AxisX AxisKind = iota
	AxisY
)

func (a AxisKind) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// TickRequest describes the axis whose grid lines are about to be
// computed. Min and Max are in transformed space.
type TickRequest struct {
	Axis     AxisKind
	Settings GridSettings
	Min, Max float64
	Pixels   int
}

// A TickOverride replaces the grid line generation of an axis. If ok is
// set the returned ticks (in transformed space) are used and min and max
// become the new transformed range of the axis.
type TickOverride interface {
	OverrideTicks(req TickRequest) (ticks []TickDefinition, min, max float64, ok bool)
}

// TickOverrideFunc adapts an ordinary function to TickOverride.
type TickOverrideFunc func(req TickRequest) ([]TickDefinition, float64, float64, bool)

// OverrideTicks calls f(req).
func (f TickOverrideFunc) OverrideTicks(req TickRequest) ([]TickDefinition, float64, float64, bool) {
	return f(req)
}

func overrideDimension(ticks []TickDefinition) GridDimension {
	dim := GridDimension{Transformed: true, Lines: make([]GridLine, len(ticks))}
	for i, t := range ticks {
		dim.Lines[i] = GridLine{RawValue: t.Value, Label: t.Label}
	}
	return dim
}

// ----------------------------------------------------------------------------
// Label visibility

// MinDistanceBetweenLabels is the minimal gap in pixels between two
// visible labels.
const MinDistanceBetweenLabels = 5

// ResolveLabels decides which labels of lines are shown. The first and
// the last label are always visible. A label is shown if it starts at
// least gap pixels after the previously shown label and ends gap pixels
// before the last one. Direction is +1 if the labels follow each other
// with growing TextCoordinate (x axis) and -1 otherwise (y axis).
//
// If evenly is set, the labels shown are every k'th for a single stride k:
// whenever a larger stride would be needed the pass restarts with that
// stride.
func ResolveLabels(lines []GridLine, direction, gap int, evenly bool) {
	n := len(lines)
	if n == 0 {
		return
	}
	first, last := &lines[0], &lines[n-1]

	stride := 1
	for {
		for i := range lines {
			lines[i].LabelVisible = false
		}
		first.LabelVisible = true
		last.LabelVisible = true

		next := first.TextCoordinate + (first.LabelSize+gap)*direction
		prev := 0
		restart := false
		for i := stride; i < n-1; i += stride {
			l := &lines[i]
			if l.TextCoordinate*direction < next*direction {
				continue
			}
			end := l.TextCoordinate + (l.LabelSize+gap)*direction
			if end*direction > last.TextCoordinate*direction {
				break
			}
			if evenly && prev != 0 && i-prev > stride {
				stride = i - prev
				restart = true
				break
			}
			l.LabelVisible = true
			next = end
			prev = i
		}
		if !restart {
			return
		}
	}
}
