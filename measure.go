package graph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasurer reports the size of a label in pixels.
type TextMeasurer interface {
	Measure(text string) (width, height int)
}

// MeasureFunc adapts an ordinary function to TextMeasurer.
type MeasureFunc func(text string) (width, height int)

// Measure calls f(text).
func (f MeasureFunc) Measure(text string) (width, height int) { return f(text) }

// FaceMeasurer measures text set in an x/image font face.
// A nil Face measures with basicfont.Face7x13.
type FaceMeasurer struct {
	Face font.Face
}

// Measure implements TextMeasurer.
func (m FaceMeasurer) Measure(text string) (width, height int) {
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	return font.MeasureString(face, text).Ceil(), face.Metrics().Height.Ceil()
}

// DefaultMeasurer is the fixed 7x13 pixel font of x/image.
var DefaultMeasurer TextMeasurer = FaceMeasurer{Face: basicfont.Face7x13}

// ----------------------------------------------------------------------------
// Label formatting

// DefaultFormat formats grid line labels.
const DefaultFormat = "%.6g"

// LabelFormatter may replace the label text of a grid line. Value is the
// value displayed (see GridSettings.TransformLabelValues), text the label
// produced by the format of the axis.
type LabelFormatter interface {
	FormatLabel(value float64, text string) string
}

// LabelFormatterFunc adapts an ordinary function to LabelFormatter.
type LabelFormatterFunc func(value float64, text string) string

// FormatLabel calls f(value, text).
func (f LabelFormatterFunc) FormatLabel(value float64, text string) string { return f(value, text) }

// labelText produces the label of a grid line with value raw. Explicit
// labels (from a Ticker or a TickOverride) take precedence over the
// format of the axis; the Formatter sees either.
func (a *Axis) labelText(raw float64, explicit string, transformed bool) string {
	v := raw
	if transformed && a.Grid.TransformLabelValues {
		v = inverse(a.Transform, raw)
	}
	text := explicit
	if text == "" {
		format := a.Format
		if format == "" {
			format = DefaultFormat
		}
		text = fmt.Sprintf(format, v)
	}
	if a.Formatter != nil {
		text = a.Formatter.FormatLabel(v, text)
	}
	return text
}
