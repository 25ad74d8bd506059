package graph

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/graph/data"
)

func squares() *data.Series {
	return data.Generate(func(x float64) float64 { return x * x }, 0, 4, 1)
}

var interpolateTests = []struct {
	x       float64
	y       float64
	nearest int
}{
	{1.5, 2.5, 1}, // tie goes to the left point
	{0, 0, 0},
	{2, 4, 2},
	{3, 9, 3},
	{2.8, 8, 3},
	{0.2, 0.2, 0},
	{-1, nan, -1},
	{3.5, nan, -1},
	{nan, nan, -1},
}

func TestInterpolateY(t *testing.T) {
	v := NewView(400, 300)
	e := v.AddSeries(squares(), "x²")
	for i, tc := range interpolateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			y, nearest := e.InterpolateY(tc.x)
			if !equal64(y, tc.y) || nearest != tc.nearest {
				t.Errorf("InterpolateY(%g) = %g, %d, want %g, %d",
					tc.x, y, nearest, tc.y, tc.nearest)
			}
		})
	}
}

func TestFindPoint(t *testing.T) {
	v := NewView(400, 300)
	e := v.AddSeries(squares(), "x²")
	m := e.Mapper()

	i, ok := e.FindPoint(2, 4, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	// 5 pixels right of (2,4)
	x := m.UnmapX(m.MapX(2, true)+5, true)
	i, ok = e.FindPoint(x, 4, DefaultFindRadius)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = e.FindPoint(x, 4, 3)
	assert.False(t, ok)

	_, ok = e.FindPoint(1.5, 8, 0)
	assert.False(t, ok)

	empty := v.AddSeries(&data.Series{}, "empty")
	_, ok = empty.FindPoint(1, 1, 0)
	assert.False(t, ok)
}

func TestNearestInterpolated(t *testing.T) {
	v := NewView(400, 300)
	a := v.AddSeries(squares(), "a")
	b := v.AddSeries(data.Generate(func(x float64) float64 { return x + 10 }, 0, 3, 0.5), "b")

	p, dist, ok := v.NearestInterpolated(1.5, 3, false)
	require.True(t, ok)
	assert.Same(t, a, p.Entry)
	assert.Equal(t, 2.5, p.Y)
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, 1, p.Nearest)
	m := a.Mapper()
	dy := m.MapY(3, true) - m.MapY(2.5, true)
	assert.Equal(t, dy*dy, dist)
	assert.Equal(t, data.Point{X: 1, Y: 1}, p.NearestReference().Point())

	a.SetHidden(true)
	p, _, ok = v.NearestInterpolated(1.5, 3, true)
	require.True(t, ok)
	assert.Same(t, b, p.Entry)
	p, _, ok = v.NearestInterpolated(1.5, 3, false)
	require.True(t, ok)
	assert.Same(t, a, p.Entry)

	_, _, ok = v.NearestInterpolated(-1, 3, false)
	assert.False(t, ok)
}

func TestNearestReferencePoint(t *testing.T) {
	v := NewView(400, 300)
	a := v.AddSeries(squares(), "a")
	b := v.AddSeries(data.Generate(func(x float64) float64 { return x + 10 }, 0, 3, 0.5), "b")

	ref, ok := v.NearestReferencePoint(1.4, false)
	require.True(t, ok)
	assert.Same(t, b, ref.Entry)
	assert.Equal(t, 3, ref.Index)

	ref, ok = v.NearestReferencePointXY(1.4, 1, false)
	require.True(t, ok)
	assert.Same(t, a, ref.Entry)
	assert.Equal(t, 1, ref.Index)

	b.SetHiddenFromLegend(true)
	ref, ok = v.NearestReferencePoint(1.4, true)
	require.True(t, ok)
	assert.Same(t, a, ref.Entry)

	_, ok = v.NearestReferencePoint(math.Inf(1), false)
	assert.False(t, ok)
}

func TestPointRefMarker(t *testing.T) {
	v := NewView(400, 300)
	e := v.AddSeries(squares(), "a")
	ref := PointRef{Entry: e, Index: 2}
	require.NoError(t, ref.SetMarkerStyle(MarkerSquare))
	assert.Equal(t, MarkerSquare, ref.MarkerStyle())
	assert.Equal(t, MarkerNone, PointRef{Entry: e, Index: 1}.MarkerStyle())
}
