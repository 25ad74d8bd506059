package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/graph"
	"github.com/vdobler/graph/data"
	"github.com/vdobler/graph/geom"
)

// options are the command line flags.
type options struct {
	funcName       string
	from, to, step float64
	samples        int

	sheet      string
	transformY string
	individual bool
	bands      bool
	markers    string
	window     float64

	width, height int
	fontSize      float64
	output        string

	watch   bool
	verbose bool
}

func markerStyle(name string) (graph.MarkerStyle, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return graph.MarkerNone, nil
	case "square":
		return graph.MarkerSquare, nil
	case "circle":
		return graph.MarkerCircle, nil
	}
	return graph.MarkerNone, fmt.Errorf("unknown marker style %q", name)
}

// series collects the columns of the input file (if any) and the
// sampled function (if any).
func (o *options) series(path string) ([]column, error) {
	var cols []column
	if path != "" {
		var err error
		cols, err = load(path, o.sheet)
		if err != nil {
			return nil, err
		}
	}
	if o.funcName != "" {
		f, err := function(o.funcName)
		if err != nil {
			return nil, err
		}
		if !(o.to > o.from) {
			return nil, fmt.Errorf("bad sampling range [%g:%g]", o.from, o.to)
		}
		var s *data.Series
		switch {
		case o.samples > 0:
			s = data.SampleN(f, o.from, o.to, o.samples)
		case o.step > 0:
			s = data.Generate(f, o.from, o.to, o.step)
		default:
			return nil, fmt.Errorf("bad sampling step %g", o.step)
		}
		cols = append(cols, column{name: o.funcName, series: s})
	}
	if len(cols) == 0 {
		return nil, ErrNoData
	}
	return cols, nil
}

// buildView lays out cols in a View configured by o. With individual
// scaling the first column provides the y labels.
func (o *options) buildView(cols []column) (*graph.View, error) {
	marker, err := markerStyle(o.markers)
	if err != nil {
		return nil, err
	}
	var ty graph.Transform
	if o.transformY != "" {
		t, ok := graph.TransformationByName(o.transformY)
		if !ok {
			return nil, fmt.Errorf("unknown transformation %q", o.transformY)
		}
		ty = t
	}
	font, err := vg.MakeFont("Helvetica", vg.Length(o.fontSize))
	if err != nil {
		return nil, err
	}

	v := graph.NewView(o.width, o.height)
	v.Configure(func(c *graph.Config) {
		c.Y.Transform = ty
		c.IndividualScaling = o.individual
		c.SeparateBands = o.bands
		c.Measurer = geom.FontMeasurer{Font: font}
		c.Padding = graph.Padding{Left: 4, Top: 4, Right: 4, Bottom: 2}
	})

	for _, col := range cols {
		if o.window > 0 && col.series.Len() > 0 {
			_, last := col.series.XRange()
			col.series.RemoveBefore(last - o.window)
		}
		e := v.AddSeries(col.series, col.name)
		e.SetMarkerStyle(marker)
	}
	if o.individual {
		if err := v.SetActive(v.Entries()[0]); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// render draws v as PNG with one pixel per point.
func render(v *graph.View, sty geom.Style, w io.Writer) error {
	width, height := v.Size()
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(72),
	)
	geom.Draw(draw.New(c), v, sty)
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// plot loads path, lays it out and writes the PNG to o.output.
func (o *options) plot(path string) error {
	cols, err := o.series(path)
	if err != nil {
		return err
	}
	v, err := o.buildView(cols)
	if err != nil {
		return err
	}

	sty := geom.DefaultStyle(vg.Length(o.fontSize))
	if o.output == "" || o.output == "-" {
		if err := render(v, sty, os.Stdout); err != nil {
			return fmt.Errorf("rendering failed: %w", err)
		}
	} else if err := writePNG(o.output, v, sty); err != nil {
		return err
	}
	slog.Debug("graphplot: rendered", "output", o.output, "series", len(cols), "rect", v.DataRect())
	return nil
}

// writePNG renders v into the file name, including the error of
// closing it.
func writePNG(name string, v *graph.View, sty geom.Style) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render(v, sty, f); err != nil {
		f.Close()
		return fmt.Errorf("rendering failed: %w", err)
	}
	return f.Close()
}
