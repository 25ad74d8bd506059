package data

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"gonum.org/v1/plot/plotter"
)

func checkSorted(t *testing.T, s *Series) {
	t.Helper()
	pts := s.Sorted()
	for i := 1; i < len(pts); i++ {
		if !(pts[i-1].X < pts[i].X) {
			t.Fatalf("not strictly increasing at %d: %v %v", i, pts[i-1], pts[i])
		}
	}
	if s.Len() != len(pts) {
		t.Errorf("Len()=%d, len(Sorted())=%d", s.Len(), len(pts))
	}
}

func TestSeriesSortAndDedup(t *testing.T) {
	s := &Series{}
	s.Add(3, 30)
	s.Add(1, 10)
	s.Add(2, 20)
	s.Add(1, 11)
	s.AddTagged(3, 33, 7)
	s.Add(math.NaN(), 5)

	checkSorted(t, s)
	want := []Point{{X: 1, Y: 11}, {X: 2, Y: 20}, {X: 3, Y: 33, Tag: 7, Tagged: true}}
	got := s.Sorted()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Adding after a rebuild still prefers the newest point.
	s.Add(2, 22)
	if y, ok := s.Value(2); !ok || y != 22 {
		t.Errorf("Value(2) = %g, %t, want 22", y, ok)
	}
	if _, ok := s.Value(2.5); ok {
		t.Errorf("Value(2.5) found")
	}
}

func TestSeriesRandomMutations(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s := &Series{}
	last := map[float64]float64{}
	for i := 0; i < 2000; i++ {
		switch rnd.Intn(10) {
		case 0:
			cutoff := float64(rnd.Intn(100))
			s.RemoveBefore(cutoff)
			for x := range last {
				if x < cutoff {
					delete(last, x)
				}
			}
		case 1:
			checkSorted(t, s)
		default:
			x, y := float64(rnd.Intn(100)), rnd.Float64()
			s.Add(x, y)
			last[x] = y
		}
	}
	checkSorted(t, s)
	if s.Len() != len(last) {
		t.Fatalf("Len()=%d, want %d", s.Len(), len(last))
	}
	for _, p := range s.Sorted() {
		if last[p.X] != p.Y {
			t.Errorf("x=%g: y=%g, want most recent %g", p.X, p.Y, last[p.X])
		}
	}
}

var removeBeforeTests = []struct {
	cutoff float64
	want   int
}{
	{-1, 5},
	{0, 5},
	{0.5, 4},
	{2, 3},
	{4, 1},
	{4.5, 0},
}

func TestSeriesRemoveBefore(t *testing.T) {
	for i, tc := range removeBeforeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := Generate(func(x float64) float64 { return x * x }, 0, 5, 1)
			s.RemoveBefore(tc.cutoff)
			if got := s.Len(); got != tc.want {
				t.Errorf("RemoveBefore(%g): Len()=%d, want %d", tc.cutoff, got, tc.want)
			}
			checkSorted(t, s)
		})
	}
}

func TestSeriesPointPanics(t *testing.T) {
	s := Generate(math.Sqrt, 0, 3, 1)
	if p := s.Point(2); p.X != 2 || p.Y != math.Sqrt2 {
		t.Errorf("Point(2) = %v", p)
	}
	for _, i := range []int{-1, 3, 100} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var ie *IndexError
				if !ok || !errors.As(err, &ie) || ie.Index != i || ie.Len != 3 {
					t.Errorf("Point(%d) panicked with %v", i, r)
				}
			}()
			s.Point(i)
		}()
	}
}

var generateTests = []struct {
	start, end, step float64
	want             int
}{
	{0, 3, 1, 3},
	{0, 3.5, 1, 4},
	{0, 1, 0.1, 10},
	{-2, 2, 0.5, 8},
	{0, 3, 0, 0},
	{0, 3, -1, 0},
	{3, 0, 1, 0},
	{0, math.Inf(1), 1, 0},
	{0, 3, math.NaN(), 0},
}

func TestGenerate(t *testing.T) {
	for i, tc := range generateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := Generate(func(x float64) float64 { return 2 * x }, tc.start, tc.end, tc.step)
			if got := s.Len(); got != tc.want {
				t.Fatalf("Generate(%g,%g,%g): %d points, want %d",
					tc.start, tc.end, tc.step, got, tc.want)
			}
			for _, p := range s.Sorted() {
				if p.X < tc.start || p.X >= tc.end || p.Y != 2*p.X {
					t.Errorf("bad point %v", p)
				}
			}
		})
	}
}

func TestSampleN(t *testing.T) {
	s := SampleN(func(x float64) float64 { return -x }, 1, 3, 5)
	if s.Len() != 5 {
		t.Fatalf("Len()=%d", s.Len())
	}
	if lo, hi := s.XRange(); lo != 1 || hi != 3 {
		t.Errorf("XRange = %g, %g", lo, hi)
	}
	if lo, hi := s.YRange(); lo != -3 || hi != -1 {
		t.Errorf("YRange = %g, %g", lo, hi)
	}
	if s := SampleN(math.Sin, 0, 1, 0); s.Len() != 0 {
		t.Errorf("n=0 gave %d points", s.Len())
	}
	if s := SampleN(math.Sin, 2, 5, 1); s.Len() != 1 || s.Point(0).X != 2 {
		t.Errorf("n=1 gave %v", s.Sorted())
	}
}

func TestSeriesRanges(t *testing.T) {
	s := &Series{}
	if lo, hi := s.XRange(); !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("empty XRange = %g, %g", lo, hi)
	}
	if lo, hi := s.YRange(); !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("empty YRange = %g, %g", lo, hi)
	}
	s.Add(4, -1)
	s.Add(-2, 7)
	s.Add(1, 3)
	if lo, hi := s.XRange(); lo != -2 || hi != 4 {
		t.Errorf("XRange = %g, %g", lo, hi)
	}
	if lo, hi := s.YRange(); lo != -1 || hi != 7 {
		t.Errorf("YRange = %g, %g", lo, hi)
	}
}

func TestSeriesXYer(t *testing.T) {
	xys := plotter.XYs{{X: 2, Y: 4}, {X: 1, Y: 1}, {X: 3, Y: 9}, {X: 1, Y: 2}}
	s := FromXYer(xys)
	if s.Len() != 3 {
		t.Fatalf("Len()=%d", s.Len())
	}
	copied, err := plotter.CopyXYs(s)
	if err != nil {
		t.Fatal(err)
	}
	want := plotter.XYs{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 9}}
	for i := range want {
		if copied[i] != want[i] {
			t.Errorf("XY(%d) = %v, want %v", i, copied[i], want[i])
		}
	}
}

func TestSeriesVersion(t *testing.T) {
	s := &Series{}
	v0 := s.Version()
	if s.Version() != v0 {
		t.Errorf("version changed without mutation")
	}
	s.Add(1, 1)
	v1 := s.Version()
	if v1 == v0 {
		t.Errorf("version unchanged after Add")
	}
	s.RemoveBefore(0)
	if s.Version() != v1 {
		t.Errorf("version changed by a no-op RemoveBefore")
	}
	s.Reset()
	if s.Version() == v1 || s.Len() != 0 {
		t.Errorf("Reset: version %d, len %d", s.Version(), s.Len())
	}
}
