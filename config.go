package graph

import (
	"errors"
)

// Sizes in pixels used when laying out and drawing the axes.
const (
	SmallRulerDash   = 5  // tick mark without label
	BigRulerDash     = 10 // tick mark with label
	RulerTextSpacing = 4  // between tick mark and label
	PointMarkerSize  = 10
)

var (
	// ErrUnknownEntry is returned for a handle not known to a View.
	ErrUnknownEntry = errors.New("graph: unknown entry")

	// ErrForeignEntry is returned when removing an entry not owned by
	// the View.
	ErrForeignEntry = errors.New("graph: entry not owned by view")
)

// Padding is additional space in pixels around the plotting area.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Axis configures one axis of a View.
type Axis struct {
	Transform Transform      // nil is the identity
	Format    string         // fmt format of labels, default DefaultFormat
	Formatter LabelFormatter // optional
	Grid      GridSettings

	AlwaysShowZero bool // extend the range to include 0
	Center         bool // make the range symmetric around 0

	Ticks TickOverride // optional
}

// adjust applies AlwaysShowZero and Center to the transformed range i.
func (a *Axis) adjust(i Interval) Interval {
	if a.AlwaysShowZero {
		i.Min = min(0, i.Min)
		i.Max = max(0, i.Max)
	}
	if a.Center {
		m := max(abs(i.Min), abs(i.Max))
		i.Min, i.Max = -m, m
	}
	return i
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Config is the configuration of a View.
type Config struct {
	X, Y    Axis
	Padding Padding

	// Overflow is the margin in pixels for values outside of the
	// plotting area, see Mapper.
	Overflow int

	// MergeWidth is the maximal width in pixels of a run of points
	// merged into one rectangle, see BuildPath.
	MergeWidth int

	// IndividualScaling gives each series its own y range over the
	// visible x range.
	IndividualScaling bool

	// SeparateBands stacks individually scaled series in horizontal
	// bands.
	SeparateBands bool

	// Measurer measures the labels. Nil uses DefaultMeasurer.
	Measurer TextMeasurer
}

// DefaultConfig returns the configuration of a new View.
func DefaultConfig() Config {
	return Config{
		X:          Axis{Grid: DefaultGridSettings()},
		Y:          Axis{Grid: DefaultGridSettings()},
		Overflow:   DefaultOverflow,
		MergeWidth: DefaultMergeWidth,
	}
}

func (c *Config) measurer() TextMeasurer {
	if c.Measurer == nil {
		return DefaultMeasurer
	}
	return c.Measurer
}

func (c *Config) mergeWidth() int {
	if c.MergeWidth <= 0 {
		return DefaultMergeWidth
	}
	return c.MergeWidth
}
