package graph

import (
	"image"
	"math"
	"strconv"
	"testing"
)

func squareMapper() *Mapper {
	return &Mapper{
		Bounds: Bounds{MinX: 0, MaxX: 3, MinY: 0, MaxY: 9},
		Rect:   image.Rect(10, 20, 410, 320),
	}
}

var mapXTests = []struct {
	v    float64
	want int
}{
	{0, 10},
	{1.5, 210},
	{3, 410},
	{-3, 10 - 400},
	{1e9, 410 + DefaultOverflow},
	{-1e9, 10 - DefaultOverflow},
	{math.Inf(1), 410 + DefaultOverflow},
	{nan, 10 - DefaultOverflow},
}

func TestMapX(t *testing.T) {
	m := squareMapper()
	for i, tc := range mapXTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := m.MapX(tc.v, true); got != tc.want {
				t.Errorf("MapX(%g) = %d, want %d", tc.v, got, tc.want)
			}
		})
	}
}

var mapYTests = []struct {
	v    float64
	want int
}{
	{0, 320},
	{9, 20},
	{4.5, 170},
	{1e9, 20 - DefaultOverflow},
	{-1e9, 320 + DefaultOverflow},
}

func TestMapY(t *testing.T) {
	m := squareMapper()
	for i, tc := range mapYTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := m.MapY(tc.v, true); got != tc.want {
				t.Errorf("MapY(%g) = %d, want %d", tc.v, got, tc.want)
			}
		})
	}
}

func TestMapSquareScenario(t *testing.T) {
	m := &Mapper{
		Bounds: Bounds{MinX: 0, MaxX: 3, MinY: 0, MaxY: 9},
		Rect:   image.Rect(0, 0, 400, 300),
	}
	if got := m.MapX(1.5, true); got != 200 {
		t.Errorf("MapX(1.5) = %d, want 200", got)
	}
}

func TestMapDegenerate(t *testing.T) {
	m := &Mapper{
		Bounds: Bounds{},
		Rect:   image.Rect(5, 5, 105, 55),
	}
	if got := m.MapX(0, true); got != 5 {
		t.Errorf("MapX(0) = %d, want 5", got)
	}
	if got := m.MapY(0, true); got != 55 {
		t.Errorf("MapY(0) = %d, want 55", got)
	}
	if got := m.MapX(1, true); got != 105+DefaultOverflow {
		t.Errorf("MapX(1) = %d, want %d", got, 105+DefaultOverflow)
	}
	if got := m.MapX(-1, true); got != 5-DefaultOverflow {
		t.Errorf("MapX(-1) = %d, want %d", got, 5-DefaultOverflow)
	}
	if got := m.UnmapX(50, false); got != 0 {
		t.Errorf("UnmapX(50) = %g, want 0", got)
	}
	if got := m.MapWidth(1); got != 100 {
		t.Errorf("MapWidth(1) = %d, want 100", got)
	}

	empty := &Mapper{}
	if got := empty.MapX(7, false); got != 0 {
		t.Errorf("empty MapX(7) = %d", got)
	}
	if got := empty.UnmapY(7, true); got != 0 {
		t.Errorf("empty UnmapY(7) = %g", got)
	}
}

func TestMapRoundTrip(t *testing.T) {
	for _, tr := range []Transformation{IdentityTrans, Log10Trans, LnTrans, SqrtTrans} {
		t.Run(tr.Name, func(t *testing.T) {
			lo, hi := 0.5, 2000.0
			m := &Mapper{
				Bounds: Bounds{
					MinX: tr.Transform(lo, true), MaxX: tr.Transform(hi, true),
					MinY: tr.Transform(lo, true), MaxY: tr.Transform(hi, true),
				},
				Rect:       image.Rect(30, 10, 630, 410),
				TransformX: tr,
				TransformY: tr,
			}
			for _, v := range []float64{0.5, 0.7, 3, 17.25, 99, 1000, 2000} {
				px := m.MapX(v, true)
				back := m.UnmapX(px, true)
				// One pixel in data space around v.
				res := math.Abs(m.UnmapX(px+1, true) - m.UnmapX(px-1, true))
				if math.Abs(back-v) > res {
					t.Errorf("UnmapX(MapX(%g)) = %g, resolution %g", v, back, res)
				}

				py := m.MapY(v, true)
				back = m.UnmapY(py, true)
				res = math.Abs(m.UnmapY(py-1, true) - m.UnmapY(py+1, true))
				if math.Abs(back-v) > res {
					t.Errorf("UnmapY(MapY(%g)) = %g, resolution %g", v, back, res)
				}
			}
		})
	}
}

func TestMapYsNonFitting(t *testing.T) {
	m := squareMapper()
	m.Overflow = 100
	got := m.MapYs([]float64{0, 4.5, 9, 9.5, -0.5, nan}, false)
	want := []int{320, 170, 20, 20 - 100, 320 + 100, 320 + 100}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MapYs[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	for i, py := range got {
		if nf := m.NonFitting(py); nf != (i >= 3) {
			t.Errorf("NonFitting(%d) = %t", py, nf)
		}
	}
}

func TestMapXsMatchesMapX(t *testing.T) {
	m := squareMapper()
	m.TransformX = SqrtTrans
	vs := []float64{0, 1, 2, 4, 9, 100}
	got := m.MapXs(vs, true)
	for i, v := range vs {
		if want := m.MapX(v, true); got[i] != want {
			t.Errorf("MapXs[%d] = %d, MapX = %d", i, got[i], want)
		}
	}
}

func TestMapExtents(t *testing.T) {
	m := squareMapper()
	if got := m.MapWidth(1.5); got != 200 {
		t.Errorf("MapWidth(1.5) = %d", got)
	}
	if got := m.MapWidth(30); got != 400 {
		t.Errorf("MapWidth(30) = %d, want clamped 400", got)
	}
	if got := m.MapWidth(-1); got != 0 {
		t.Errorf("MapWidth(-1) = %d, want 0", got)
	}
	if got := m.MapHeight(3); got != 100 {
		t.Errorf("MapHeight(3) = %d", got)
	}
	if got := m.UnmapWidth(10); !equal64(got, 0.075) {
		t.Errorf("UnmapWidth(10) = %g", got)
	}
	if got := m.UnmapHeight(100); got != 3 {
		t.Errorf("UnmapHeight(100) = %g", got)
	}
}

func TestMapperForced(t *testing.T) {
	m := squareMapper()
	band := image.Rect(10, 20, 410, 110)
	f := m.Forced(Bounds{MinX: 0, MaxX: 3, MinY: 100, MaxY: 200}, band)
	if got := f.MapY(100, false); got != 110 {
		t.Errorf("forced MapY(100) = %d, want 110", got)
	}
	if got := f.MapY(200, false); got != 20 {
		t.Errorf("forced MapY(200) = %d, want 20", got)
	}

	same := m.Forced(InvalidBounds(), image.Rectangle{})
	if same.Bounds != m.Bounds || same.Rect != m.Rect {
		t.Errorf("invalid forced values not ignored: %v %v", same.Bounds, same.Rect)
	}
}

func TestProject(t *testing.T) {
	m := squareMapper()
	if got := m.ProjectX(1e9, false); got < 1e10 {
		t.Errorf("ProjectX clamped: %g", got)
	}
	if got := m.ProjectY(4.5, false); got != 170 {
		t.Errorf("ProjectY(4.5) = %g", got)
	}
}
