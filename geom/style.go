package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/graph"
)

// A Style controls how a View is drawn.
type Style struct {
	Background color.Color
	Panel      color.Color // background of the data rectangle
	Border     draw.LineStyle

	Grid  draw.LineStyle
	Ruler draw.LineStyle

	XLabel draw.TextStyle
	YLabel draw.TextStyle

	// MarkerRadius is the radius of point markers in pixels.
	MarkerRadius float64

	// Dim is the opacity of hidden entries.
	Dim float64
}

// DefaultStyle returns a Style with labels in a Helvetica font of the
// given size.
func DefaultStyle(fontSize vg.Length) Style {
	font, err := vg.MakeFont("Helvetica", fontSize)
	if err != nil {
		panic(err)
	}

	sty := Style{}
	sty.Background = color.White
	sty.Panel = color.Gray16{0xf4f4}

	sty.Border.Color = color.Gray16{0x5555}
	sty.Border.Width = vg.Length(1)

	sty.Grid.Color = color.Gray16{0xdddd}
	sty.Grid.Width = vg.Length(1)
	sty.Grid.Dashes = []vg.Length{vg.Length(2), vg.Length(2)}

	sty.Ruler.Color = color.Gray16{0x1111}
	sty.Ruler.Width = vg.Length(1)

	sty.XLabel.Color = color.Black
	sty.XLabel.Font = font
	sty.XLabel.XAlign = draw.XLeft
	sty.XLabel.YAlign = draw.YTop

	sty.YLabel = sty.XLabel

	sty.MarkerRadius = graph.PointMarkerSize / 2
	sty.Dim = 0.3

	return sty
}
