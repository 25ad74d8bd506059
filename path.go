package graph

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/vdobler/graph/data"
)

// DefaultMergeWidth is the default maximal pixel width of a merged run.
const DefaultMergeWidth = 5

// Path is the simplified geometry of a series: polylines for sparse
// stretches and filled rectangles for runs of points crowding onto the
// same few pixel columns.
type Path struct {
	Polylines [][]image.Point
	Merged    []image.Rectangle
}

// run is a bounding box of merged points.
type run struct {
	minX, maxX, minY, maxY int
}

func newRun(x int) *run {
	return &run{minX: x, maxX: x, minY: math.MaxInt, maxY: math.MinInt}
}

func (r *run) add(x, y int) {
	r.minX, r.maxX = min(r.minX, x), max(r.maxX, x)
	r.minY, r.maxY = min(r.minY, y), max(r.maxY, y)
}

// continues reports whether column x still belongs to the run: it is the
// last column of the run or the next one while the run is narrower than
// width.
func (r *run) continues(x, width int) bool {
	return x == r.maxX || (x == r.maxX+1 && x < r.minX+width)
}

func (r *run) rect() image.Rectangle {
	return image.Rect(r.minX, r.minY, r.maxX+1, r.maxY+1)
}

// BuildPath converts the pixel coordinates xs, ys (xs non-decreasing)
// into a Path. Two consecutive points on the same column start a run
// which swallows following points as long as the run continues (see
// mergeWidth); the run is emitted as one rectangle. The polyline resumes
// at the last point of the run. Polylines of a single point are dropped.
func BuildPath(xs, ys []int, mergeWidth int) Path {
	var (
		p   Path
		pts []image.Point
		cur *run
	)
	flush := func() {
		if len(pts) > 1 {
			p.Polylines = append(p.Polylines, pts)
		}
		pts = nil
	}

	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		if i > 0 && (x == xs[i-1] || (cur != nil && cur.continues(x, mergeWidth))) {
			flush()
			if cur == nil {
				cur = newRun(x)
			}
			cur.add(xs[i-1], ys[i-1])
			cur.add(x, y)
			continue
		}
		if cur != nil {
			p.Merged = append(p.Merged, cur.rect())
			cur = nil
			pts = append(pts, image.Pt(xs[i-1], ys[i-1]))
		}
		pts = append(pts, image.Pt(x, y))
	}
	if cur != nil {
		p.Merged = append(p.Merged, cur.rect())
	}
	flush()
	return p
}

// ----------------------------------------------------------------------------
// Geometry

// MarkerPoint is a point marker to draw at Pos.
type MarkerPoint struct {
	Pos   image.Point
	Style MarkerStyle
	Index int // into the sorted points of the series
}

// Geometry is everything needed to draw one entry.
type Geometry struct {
	Entry     *Entry
	Path      Path
	Markers   []MarkerPoint
	Color     color.Color
	LineWidth int
	Dimmed    bool
}

// Geometry computes the drawing geometry of e restricted to the visible
// x range of its view (plus the point just before it).
func (e *Entry) Geometry() Geometry {
	g := Geometry{Entry: e, Color: e.color, LineWidth: e.lineWidth, Dimmed: e.hidden}
	if e.view == nil {
		return g
	}
	if e.view.highlighted == e {
		g.LineWidth += 2
	}

	m := e.Mapper()
	pts := e.series.Sorted()
	first, last := visibleWindow(pts, m.UnmapX(m.Rect.Min.X, true), m.UnmapX(m.Rect.Max.X, true))
	if first > last {
		return g
	}
	window := pts[first : last+1]

	xs := make([]float64, len(window))
	ys := make([]float64, len(window))
	for i, p := range window {
		xs[i], ys[i] = p.X, p.Y
	}
	px, py := m.MapXs(xs, true), m.MapYs(ys, true)

	g.Path = BuildPath(px, py, e.view.cfg.mergeWidth())

	for i := range window {
		s := e.PointMarker(first + i)
		if s == MarkerNone {
			continue
		}
		g.Markers = append(g.Markers, MarkerPoint{
			Pos:   image.Pt(px[i], py[i]),
			Style: s,
			Index: first + i,
		})
	}
	return g
}

// visibleWindow returns the index range [first, last] of the points
// inside [lo, hi] extended by one point on the left and the first point
// beyond hi on the right. First > last if no point is at or right of lo.
func visibleWindow(pts []data.Point, lo, hi float64) (first, last int) {
	n := len(pts)
	i := sort.Search(n, func(i int) bool { return pts[i].X >= lo })
	if i == n {
		return 0, -1
	}
	first = max(0, i-1)
	last = sort.Search(n, func(i int) bool { return pts[i].X > hi })
	if last == n {
		last = n - 1
	}
	return first, max(first, last)
}
