package graph

import (
	"math"
	"sort"

	"github.com/vdobler/graph/data"
)

// DefaultFindRadius is the default search radius in pixels of FindPoint.
const DefaultFindRadius = 10

// InterpolateY interpolates the series of e linearly at x. Nearest is the
// index of the bracketing point closer to x in x direction, the left one
// on a tie. Outside of the x range of the series y is NaN and nearest -1.
func (e *Entry) InterpolateY(x float64) (y float64, nearest int) {
	pts := e.series.Sorted()
	i := sort.Search(len(pts), func(i int) bool { return pts[i].X >= x })
	if i == len(pts) {
		return math.NaN(), -1
	}
	p1 := pts[i]
	if p1.X == x {
		return p1.Y, i
	}
	if i == 0 {
		return math.NaN(), -1
	}
	p0 := pts[i-1]
	nearest = i
	if x-p0.X <= p1.X-x {
		nearest = i - 1
	}
	return p0.Y + (x-p0.X)*(p1.Y-p0.Y)/(p1.X-p0.X), nearest
}

// FindPoint returns the index of the point of e closest to the data
// space location (x, y), measured in pixels. Only points strictly closer
// than radius pixels are found; a radius <= 0 means DefaultFindRadius.
func (e *Entry) FindPoint(x, y float64, radius int) (int, bool) {
	if radius <= 0 {
		radius = DefaultFindRadius
	}
	m := e.Mapper()
	qx, qy := m.ProjectX(x, true), m.ProjectY(y, true)

	best, bestDist := -1, math.Inf(1)
	for i, p := range e.series.Sorted() {
		dx := m.ProjectX(p.X, true) - qx
		dy := m.ProjectY(p.Y, true) - qy
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = i, d
		}
		if dx > 0 && dx*dx >= bestDist {
			break
		}
	}
	if best < 0 || !(bestDist < float64(radius*radius)) {
		return -1, false
	}
	return best, true
}

// ----------------------------------------------------------------------------
// Queries across all entries

// PointRef references a point of an entry.
type PointRef struct {
	Entry *Entry
	Index int
}

// Point returns the referenced point.
func (r PointRef) Point() data.Point { return r.Entry.series.Point(r.Index) }

// MarkerStyle returns the marker of the referenced point.
func (r PointRef) MarkerStyle() MarkerStyle { return r.Entry.PointMarker(r.Index) }

// SetMarkerStyle overrides the marker of the referenced point.
func (r PointRef) SetMarkerStyle(s MarkerStyle) error { return r.Entry.SetPointMarker(r.Index, s) }

// InterpolatedPoint is a location on the interpolated line of an entry.
type InterpolatedPoint struct {
	X, Y    float64
	Entry   *Entry
	Nearest int // index of the nearest sample
}

// NearestReference returns the sample closest to p.
func (p InterpolatedPoint) NearestReference() PointRef {
	return PointRef{Entry: p.Entry, Index: p.Nearest}
}

func (v *View) skip(e *Entry, ignoreHidden bool) bool {
	return ignoreHidden && (e.hidden || e.hiddenFromLegend)
}

// NearestInterpolated finds the entry whose interpolated line passes
// closest to (x, y) at x. The distance is the squared pixel distance in
// the mapping of the entry. Hidden entries are skipped if ignoreHidden
// is set.
func (v *View) NearestInterpolated(x, y float64, ignoreHidden bool) (InterpolatedPoint, int, bool) {
	var best InterpolatedPoint
	bestDist, found := math.MaxInt, false
	for _, e := range v.entries {
		if v.skip(e, ignoreHidden) {
			continue
		}
		yi, nearest := e.InterpolateY(x)
		if math.IsNaN(yi) {
			continue
		}
		m := e.Mapper()
		// Both points share x, only the vertical distance remains.
		dy := m.MapY(y, true) - m.MapY(yi, true)
		if d := dy * dy; d < bestDist {
			best = InterpolatedPoint{X: x, Y: yi, Entry: e, Nearest: nearest}
			bestDist, found = d, true
		}
	}
	return best, bestDist, found
}

// NearestReferencePoint finds the sample closest to x in x direction
// among the samples bracketing x in every entry.
func (v *View) NearestReferencePoint(x float64, ignoreHidden bool) (PointRef, bool) {
	return v.nearestReference(x, ignoreHidden, func(e *Entry, p data.Point) float64 {
		return math.Abs(p.X - x)
	})
}

// NearestReferencePointXY is like NearestReferencePoint but measures the
// pixel distance between the sample and (x, y).
func (v *View) NearestReferencePointXY(x, y float64, ignoreHidden bool) (PointRef, bool) {
	return v.nearestReference(x, ignoreHidden, func(e *Entry, p data.Point) float64 {
		m := e.Mapper()
		dx := m.ProjectX(p.X, true) - m.ProjectX(x, true)
		dy := m.ProjectY(p.Y, true) - m.ProjectY(y, true)
		return dx*dx + dy*dy
	})
}

func (v *View) nearestReference(x float64, ignoreHidden bool, dist func(*Entry, data.Point) float64) (PointRef, bool) {
	var best PointRef
	bestDist, found := math.Inf(1), false
	for _, e := range v.entries {
		if v.skip(e, ignoreHidden) {
			continue
		}
		if yi, nearest := e.InterpolateY(x); math.IsNaN(yi) {
			continue
		} else if d := dist(e, e.series.Point(nearest)); d < bestDist {
			best = PointRef{Entry: e, Index: nearest}
			bestDist, found = d, true
		}
	}
	return best, found
}
