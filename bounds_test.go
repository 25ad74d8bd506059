package graph

import (
	"math"
	"strconv"
	"testing"
)

var (
	nan = math.NaN()
	inf = math.Inf(1)
)

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
	{Interval{5, 5}, inf, Interval{5, 5}},
	{Interval{5, 5}, -inf, Interval{5, 5}},
	{Interval{nan, nan}, inf, Interval{nan, nan}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalUpdateMany(t *testing.T) {
	i := unsetInterval()
	i.Update(3, nan, -2, inf, 8, math.Log(0))
	if want := (Interval{-2, 8}); !i.Equal(want) {
		t.Errorf("got %v, want %v", i, want)
	}
	if i.IsEmpty() {
		t.Errorf("%v reported as empty", i)
	}
	if !unsetInterval().orZero().Equal(Interval{}) {
		t.Errorf("empty interval not replaced by [0:0]")
	}
}

var boundsValidTests = []struct {
	b    Bounds
	want bool
}{
	{Bounds{0, 1, 0, 1}, true},
	{Bounds{0, 0, 0, 0}, true},
	{InvalidBounds(), false},
	{Bounds{0, 1, nan, 1}, false},
	{Bounds{nan, 1, 0, 1}, false},
}

func TestBoundsIsValid(t *testing.T) {
	for i, tc := range boundsValidTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.b.IsValid(); got != tc.want {
				t.Errorf("%v.IsValid() = %t, want %t", tc.b, got, tc.want)
			}
		})
	}
}

func TestBoundsDelta(t *testing.T) {
	b := BoundsOf(Interval{-1, 3}, Interval{2, 12})
	if b.DeltaX() != 4 || b.DeltaY() != 10 {
		t.Errorf("%v: deltas %g %g", b, b.DeltaX(), b.DeltaY())
	}
	if !b.X().Equal(Interval{-1, 3}) || !b.Y().Equal(Interval{2, 12}) {
		t.Errorf("%v: X=%v Y=%v", b, b.X(), b.Y())
	}
}

func TestSafeDelta(t *testing.T) {
	for _, d := range []float64{0, nan, inf, -inf} {
		if got := safeDelta(d); got != DegenerateDelta {
			t.Errorf("safeDelta(%g) = %g", d, got)
		}
	}
	if got := safeDelta(-3); got != -3 {
		t.Errorf("safeDelta(-3) = %g", got)
	}
}
