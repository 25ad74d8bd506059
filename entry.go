package graph

import (
	"fmt"
	"image"
	"image/color"

	"github.com/vdobler/graph/data"
)

// MarkerStyle is the symbol drawn at a data point.
type MarkerStyle int

const (
	MarkerDefault MarkerStyle = iota // the default style of the entry
	MarkerNone
	MarkerSquare
	MarkerCircle
)

func (s MarkerStyle) String() string {
	switch s {
	case MarkerDefault:
		return "default"
	case MarkerNone:
		return "none"
	case MarkerSquare:
		return "square"
	case MarkerCircle:
		return "circle"
	}
	return fmt.Sprintf("MarkerStyle(%d)", int(s))
}

// Handle identifies an Entry of a View.
type Handle int

// Entry is a series displayed by a View together with its drawing
// properties. Entries are created by View.AddSeries.
type Entry struct {
	view   *View
	handle Handle
	series *data.Series

	color            color.Color
	lineWidth        int
	hint             string
	hidden           bool
	hiddenFromLegend bool

	marker    MarkerStyle
	overrides []MarkerStyle // valid only while series.Version() == version
	version   int

	// Forced bounds and rectangle of individually scaled entries.
	// Pinned ones were set by SetForced and survive a recompute.
	forced     Bounds
	forcedRect image.Rectangle
	pinned     bool
}

// Handle returns the identifier of e.
func (e *Entry) Handle() Handle { return e.handle }

// Series returns the data displayed by e.
func (e *Entry) Series() *data.Series { return e.series }

func (e *Entry) Color() color.Color { return e.color }
func (e *Entry) LineWidth() int      { return e.lineWidth }
func (e *Entry) Hint() string        { return e.hint }
func (e *Entry) Hidden() bool        { return e.hidden }

// HiddenFromLegend entries are neither drawn nor listed in the legend.
func (e *Entry) HiddenFromLegend() bool { return e.hiddenFromLegend }

// MarkerStyle is the default marker of the points of e.
func (e *Entry) MarkerStyle() MarkerStyle { return e.marker }

// Forced returns the forced bounds and rectangle of e. Invalid bounds or
// an empty rectangle mean the shared ones of the view are used.
func (e *Entry) Forced() (Bounds, image.Rectangle) { return e.forced, e.forcedRect }

func (e *Entry) SetColor(c color.Color) { e.color = c }

// SetLineWidth sets the line width in pixels.
func (e *Entry) SetLineWidth(w int) { e.lineWidth = w }

func (e *Entry) SetHint(hint string) {
	e.hint = hint
	e.recompute()
}

// SetHidden hides (dims) e. Hidden entries do not contribute to the
// dynamic y range of a view with forced x bounds.
func (e *Entry) SetHidden(hidden bool) {
	e.hidden = hidden
	e.recompute()
}

func (e *Entry) SetHiddenFromLegend(hidden bool) { e.hiddenFromLegend = hidden }

// SetMarkerStyle sets the default marker. MarkerDefault draws no marker.
func (e *Entry) SetMarkerStyle(s MarkerStyle) { e.marker = s }

// SetPointMarker overrides the marker of the i'th point. Overrides are
// discarded once the sorted points of the series change.
func (e *Entry) SetPointMarker(i int, s MarkerStyle) error {
	n := e.series.Len()
	if i < 0 || i >= n {
		return &data.IndexError{Index: i, Len: n}
	}
	if !e.overridesValid() {
		e.overrides = make([]MarkerStyle, n)
		e.version = e.series.Version()
	}
	e.overrides[i] = s
	return nil
}

// ResetPointMarkers removes all marker overrides.
func (e *Entry) ResetPointMarkers() { e.overrides = nil }

// PointMarker returns the marker style of the i'th point, falling back
// to the default marker of e.
func (e *Entry) PointMarker(i int) MarkerStyle {
	if e.overridesValid() && i >= 0 && i < len(e.overrides) {
		if s := e.overrides[i]; s != MarkerDefault {
			return s
		}
	}
	if e.marker == MarkerDefault {
		return MarkerNone
	}
	return e.marker
}

func (e *Entry) overridesValid() bool {
	return e.overrides != nil && e.version == e.series.Version() && len(e.overrides) == e.series.Len()
}

// SetForced maps e with its own bounds b (transformed space) and its own
// rectangle r. Invalid bounds or an empty rectangle select the shared
// ones. Unlike the bounds computed for individual scaling these are kept
// until ClearForced.
func (e *Entry) SetForced(b Bounds, r image.Rectangle) {
	e.forced, e.forcedRect, e.pinned = b, r, true
	e.recompute()
}

// ClearForced reverts SetForced.
func (e *Entry) ClearForced() {
	e.forced, e.forcedRect, e.pinned = InvalidBounds(), image.Rectangle{}, false
	e.recompute()
}

// Value returns the y value stored for x.
func (e *Entry) Value(x float64) (float64, bool) { return e.series.Value(x) }

// Mapper returns the mapper of the view with the forced bounds and
// rectangle of e applied.
func (e *Entry) Mapper() Mapper {
	var m Mapper
	if e.view != nil {
		m = e.view.mapper
	}
	return m.Forced(e.forced, e.forcedRect)
}

func (e *Entry) recompute() {
	if e.view != nil {
		e.view.Recompute()
	}
}

// yRangeWithin is the range of the transformed y values of all points
// whose transformed x lies in xr.
func (e *Entry) yRangeWithin(tx, ty Transform, xr Interval) Interval {
	y := unsetInterval()
	for _, p := range e.series.Sorted() {
		x := forward(tx, p.X)
		if !finite(x) || x < xr.Min || x > xr.Max {
			continue
		}
		y.Update(forward(ty, p.Y))
	}
	return y
}
