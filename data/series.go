// Package data contains the point storage of a graph: a series of (x,y)
// samples which is kept sorted and deduplicated by x on demand.
package data

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
)

// Point is a single sample. Tag is an optional caller supplied number,
// only meaningful if Tagged is set.
type Point struct {
	X, Y   float64
	Tag    int
	Tagged bool
}

// IndexError is the panic value of Series.Point for an invalid index.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("data: point index %d out of range [0:%d]", e.Index, e.Len)
}

// Series is a set of points keyed by their x value.
//
// Points are appended in any order; the sorted view is rebuilt lazily
// on the first read after a mutation. Among points sharing the same x
// value the most recently added one survives.
//
// A Series is not safe for concurrent use.
type Series struct {
	points  []Point // insertion order, may contain duplicate x
	sorted  []Point
	stale   bool
	version int
}

var _ plotter.XYer = (*Series)(nil)

// Add appends the point (x,y). Points with an x of NaN are ignored as
// they cannot be ordered.
func (s *Series) Add(x, y float64) {
	s.add(Point{X: x, Y: y})
}

// AddTagged appends the point (x,y) carrying tag.
func (s *Series) AddTagged(x, y float64, tag int) {
	s.add(Point{X: x, Y: y, Tag: tag, Tagged: true})
}

func (s *Series) add(p Point) {
	if math.IsNaN(p.X) {
		return
	}
	s.points = append(s.points, p)
	s.stale = true
}

// Sorted returns the points strictly increasing in x. The returned slice
// is shared and must not be modified; it stays valid until the next
// mutation of s.
func (s *Series) Sorted() []Point {
	if s.stale {
		s.rebuild()
	}
	return s.sorted
}

func (s *Series) rebuild() {
	pts := slices.Clone(s.points)
	slices.SortStableFunc(pts, func(a, b Point) int { return cmp.Compare(a.X, b.X) })

	// Keep the last of each run of equal x: the stable sort keeps
	// insertion order inside the run.
	out := pts[:0]
	for i, p := range pts {
		if i+1 < len(pts) && pts[i+1].X == p.X {
			continue
		}
		out = append(out, p)
	}

	s.sorted = out
	s.points = slices.Clone(out)
	s.stale = false
	s.version++
}

// Version changes whenever the sorted view has been rebuilt.
func (s *Series) Version() int {
	s.Sorted()
	return s.version
}

// RemoveBefore drops all points with x < cutoff.
func (s *Series) RemoveBefore(cutoff float64) {
	n := len(s.points)
	s.points = slices.DeleteFunc(s.points, func(p Point) bool { return p.X < cutoff })
	if len(s.points) != n {
		s.stale = true
	}
}

// Reset removes all points.
func (s *Series) Reset() {
	s.points = nil
	s.stale = true
}

// Len is the number of distinct x values in s.
func (s *Series) Len() int {
	return len(s.Sorted())
}

// Point returns the i'th point of the sorted view. It panics with an
// *IndexError if i is not in [0, s.Len()).
func (s *Series) Point(i int) Point {
	pts := s.Sorted()
	if i < 0 || i >= len(pts) {
		panic(&IndexError{Index: i, Len: len(pts)})
	}
	return pts[i]
}

// XY implements plotter.XYer.
func (s *Series) XY(i int) (x, y float64) {
	p := s.Point(i)
	return p.X, p.Y
}

// Value looks up the y value stored for x.
func (s *Series) Value(x float64) (float64, bool) {
	pts := s.Sorted()
	i, ok := slices.BinarySearchFunc(pts, x, func(p Point, x float64) int { return cmp.Compare(p.X, x) })
	if !ok {
		return math.NaN(), false
	}
	return pts[i].Y, true
}

// XRange returns the smallest and largest x. Both are NaN for an
// empty series.
func (s *Series) XRange() (min, max float64) {
	pts := s.Sorted()
	if len(pts) == 0 {
		return math.NaN(), math.NaN()
	}
	return pts[0].X, pts[len(pts)-1].X
}

// YRange returns the smallest and largest y. Both are NaN for an
// empty series.
func (s *Series) YRange() (min, max float64) {
	pts := s.Sorted()
	if len(pts) == 0 {
		return math.NaN(), math.NaN()
	}
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
	}
	return stats.Bounds(ys)
}

// ----------------------------------------------------------------------------
// Construction

// Generate samples f at start, start+step, ... for all values < end.
// A step which is not a positive finite number yields an empty series,
// so do infinite or NaN limits.
func Generate(f func(x float64) float64, start, end, step float64) *Series {
	s := &Series{}
	if !(step > 0) || !finite(step) || !finite(start) || !finite(end) {
		return s
	}
	for i := 0; ; i++ {
		x := start + float64(i)*step
		if !(x < end) {
			break
		}
		s.Add(x, f(x))
	}
	return s
}

// SampleN samples f at n evenly spaced points in the closed interval
// [start, end].
func SampleN(f func(x float64) float64, start, end float64, n int) *Series {
	s := &Series{}
	if n <= 0 || !finite(start) || !finite(end) {
		return s
	}
	if n == 1 {
		s.Add(start, f(start))
		return s
	}
	for _, x := range vec.Linspace(start, end, n) {
		s.Add(x, f(x))
	}
	return s
}

// FromXYer copies the points of xys.
func FromXYer(xys plotter.XYer) *Series {
	s := &Series{}
	for i := 0; i < xys.Len(); i++ {
		s.Add(xys.XY(i))
	}
	return s
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
