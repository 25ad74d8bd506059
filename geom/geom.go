// Package geom draws a graph.View onto a gonum draw.Canvas.
//
// The View computes all geometry in integer pixels with y growing
// downwards. Draw maps these pixels onto the canvas rectangle, so a View
// of 400x300 pixels drawn onto a 400x300 point canvas is rendered
// without scaling.
//
// Drawing happens in layers: the background, the grid lines, the
// rulers and labels of both axes, the entries in the order they were
// added and finally the border of the data rectangle.
package geom

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/graph"
)

// Draw draws v onto c.
func Draw(c draw.Canvas, v *graph.View, sty Style) {
	w, h := v.Size()
	px := newPixels(c, w, h)
	cfg := v.Config()
	rect := v.DataRect()

	if sty.Background != nil {
		px.canvas.FillPolygon(sty.Background, px.rect(image.Rect(0, 0, w, h)))
	}
	if sty.Panel != nil {
		px.canvas.FillPolygon(sty.Panel, px.rect(rect))
	}

	xgrid, ygrid := v.XGrid(), v.YGrid()
	if cfg.X.Grid.ShowGridLines {
		drawXGridLines(px, xgrid, rect, sty.Grid)
	}
	if cfg.Y.Grid.ShowGridLines {
		drawYGridLines(px, ygrid, rect, sty.Grid)
	}
	if cfg.X.Grid.ShowLabels {
		drawXAxis(px, xgrid, rect, sty)
	}
	if cfg.Y.Grid.ShowLabels {
		drawYAxis(px, ygrid, rect, cfg.Padding.Left, !v.YLabelsSuppressed(), sty)
	}

	for _, g := range v.Geometry() {
		drawEntry(px, g, sty)
	}

	if sty.Border.Color != nil && sty.Border.Width > 0 {
		border := px.rect(rect)
		border = append(border, border[0])
		px.canvas.StrokeLines(sty.Border, border)
	}
}

// ----------------------------------------------------------------------------
// Axes

func drawXGridLines(px pixels, dim graph.GridDimension, rect image.Rectangle, sty draw.LineStyle) {
	for _, l := range dim.Lines {
		x := l.ScreenCoordinate
		if x < rect.Min.X || x > rect.Max.X {
			continue
		}
		px.canvas.StrokeLines(sty, []vg.Point{px.pt(x, rect.Min.Y), px.pt(x, rect.Max.Y)})
	}
}

func drawYGridLines(px pixels, dim graph.GridDimension, rect image.Rectangle, sty draw.LineStyle) {
	for _, l := range dim.Lines {
		y := l.ScreenCoordinate
		if y < rect.Min.Y || y > rect.Max.Y {
			continue
		}
		px.canvas.StrokeLines(sty, []vg.Point{px.pt(rect.Min.X, y), px.pt(rect.Max.X, y)})
	}
}

// dash is the length of the ruler mark of l.
func dash(l graph.GridLine) int {
	if l.LabelVisible {
		return graph.BigRulerDash
	}
	return graph.SmallRulerDash
}

// drawXAxis draws the ruler marks below the data rectangle and the
// visible labels below them. Labels are placed inside the rectangle even
// for grid lines outside of it.
func drawXAxis(px pixels, dim graph.GridDimension, rect image.Rectangle, sty Style) {
	top := rect.Max.Y + 2
	labelTop := rect.Max.Y + graph.BigRulerDash + graph.RulerTextSpacing
	for _, l := range dim.Lines {
		if x := l.ScreenCoordinate; x >= rect.Min.X && x <= rect.Max.X {
			px.canvas.StrokeLines(sty.Ruler, []vg.Point{px.pt(x, top), px.pt(x, top+dash(l))})
		}
		if l.LabelVisible && l.Label != "" {
			px.canvas.FillText(sty.XLabel, px.pt(l.TextCoordinate, labelTop), l.Label)
		}
	}
}

// drawYAxis draws the ruler marks left of the data rectangle and, if
// labels is set, the visible labels starting at the left edge.
func drawYAxis(px pixels, dim graph.GridDimension, rect image.Rectangle, left int, labels bool, sty Style) {
	right := rect.Min.X - 2
	for _, l := range dim.Lines {
		if y := l.ScreenCoordinate; y >= rect.Min.Y && y <= rect.Max.Y {
			px.canvas.StrokeLines(sty.Ruler, []vg.Point{px.pt(right-dash(l), y), px.pt(right, y)})
		}
		if labels && l.LabelVisible && l.Label != "" {
			px.canvas.FillText(sty.YLabel, px.pt(left, l.TextCoordinate), l.Label)
		}
	}
}

// ----------------------------------------------------------------------------
// Entries

// drawEntry draws the polylines, merged runs and markers of one entry.
func drawEntry(px pixels, g graph.Geometry, sty Style) {
	col := g.Color
	if col == nil {
		col = color.Black
	}
	if g.Dimmed {
		col = Dimmed(col, sty.Dim)
	}

	line := draw.LineStyle{Color: col, Width: px.length(float64(max(g.LineWidth, 1)))}
	for _, pl := range g.Path.Polylines {
		pts := make([]vg.Point, len(pl))
		for i, p := range pl {
			pts[i] = px.point(p)
		}
		px.canvas.StrokeLines(line, px.canvas.ClipLinesXY(pts)...)
	}

	for _, r := range g.Path.Merged {
		px.canvas.FillPolygon(col, px.rect(r))
	}

	radius := px.length(sty.MarkerRadius)
	for _, m := range g.Markers {
		var shape draw.GlyphDrawer
		switch m.Style {
		case graph.MarkerSquare:
			shape = draw.BoxGlyph{}
		case graph.MarkerCircle:
			shape = draw.CircleGlyph{}
		default:
			continue
		}
		center := px.point(m.Pos)
		if !px.canvas.Contains(center) {
			continue
		}
		px.canvas.DrawGlyph(draw.GlyphStyle{Color: col, Radius: radius, Shape: shape}, center)
	}
}

// ----------------------------------------------------------------------------
// Text measurement

// FontMeasurer measures labels in pixels with a vg.Font, one pixel
// being one point.
type FontMeasurer struct {
	Font vg.Font
}

// Measure implements graph.TextMeasurer.
func (m FontMeasurer) Measure(s string) (width, height int) {
	width = int(math.Ceil(m.Font.Width(s).Points()))
	height = int(math.Ceil(m.Font.Extents().Height.Points()))
	return width, height
}
