package graph

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/plot/plotutil"

	"github.com/vdobler/graph/data"
)

// View displays a set of series in a rectangle of Width x Height pixels.
// It owns the layout: the mapping from data to pixels, the grid lines
// of both axes and the drawing geometry of its entries.
//
// Every change of the configuration, the size, the entries or their
// visibility recomputes the layout. Changing the data of a series does
// not; call Recompute afterwards.
//
// A View is not safe for concurrent use.
type View struct {
	width, height int
	cfg           Config

	entries     []*Entry
	nextHandle  Handle
	active      *Entry
	highlighted *Entry

	forceCustom bool
	forcedRaw   Bounds // data space, NaN edges are computed

	mapper            Mapper
	xgrid, ygrid      GridDimension
	yLabelsSuppressed bool
}

// NewView returns an empty view of the given size in pixels using
// DefaultConfig.
func NewView(width, height int) *View {
	v := &View{width: width, height: height, cfg: DefaultConfig()}
	v.Recompute()
	return v
}

// Config returns the current configuration of v.
func (v *View) Config() Config { return v.cfg }

// Configure lets f modify the configuration of v and recomputes the
// layout once afterwards.
func (v *View) Configure(f func(c *Config)) {
	f(&v.cfg)
	v.Recompute()
}

// Size returns the size of v in pixels.
func (v *View) Size() (width, height int) { return v.width, v.height }

// Resize changes the size of v.
func (v *View) Resize(width, height int) {
	v.width, v.height = width, height
	v.Recompute()
}

// ForceBounds fixes the displayed data range. The values are in data
// space; a NaN edge is computed as usual. If both y edges are NaN the y
// range covers the visible points inside the forced x range.
func (v *View) ForceBounds(minX, maxX, minY, maxY float64) {
	v.forceCustom = true
	v.forcedRaw = Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	v.Recompute()
}

// ClearForcedBounds reverts ForceBounds.
func (v *View) ClearForcedBounds() {
	v.forceCustom = false
	v.Recompute()
}

// SetActive selects the entry determining the y axis labels if
// IndividualScaling is on. Nil deselects.
func (v *View) SetActive(e *Entry) error {
	if e != nil && e.view != v {
		return ErrForeignEntry
	}
	v.active = e
	if v.cfg.IndividualScaling {
		v.Recompute()
	}
	return nil
}

// Active returns the active entry or nil.
func (v *View) Active() *Entry { return v.active }

// SetHighlighted selects the entry drawn with a wider line. Nil
// deselects.
func (v *View) SetHighlighted(e *Entry) error {
	if e != nil && e.view != v {
		return ErrForeignEntry
	}
	v.highlighted = e
	return nil
}

// Highlighted returns the highlighted entry or nil.
func (v *View) Highlighted() *Entry { return v.highlighted }

// ----------------------------------------------------------------------------
// Entries

// AddSeries displays s with the given hint. The entry gets the next
// color of the plotutil palette and a line width of 1 pixel.
func (v *View) AddSeries(s *data.Series, hint string) *Entry {
	e := &Entry{
		view:      v,
		handle:    v.nextHandle,
		series:    s,
		color:     plotutil.Color(len(v.entries)),
		lineWidth: 1,
		hint:      hint,
		forced:    InvalidBounds(),
	}
	v.nextHandle++
	v.entries = append(v.entries, e)
	v.Recompute()
	return e
}

// Remove deletes e from v.
func (v *View) Remove(e *Entry) error {
	if e == nil || e.view != v {
		return ErrForeignEntry
	}
	v.entries = slices.DeleteFunc(v.entries, func(x *Entry) bool { return x == e })
	if v.active == e {
		v.active = nil
	}
	if v.highlighted == e {
		v.highlighted = nil
	}
	e.view = nil
	v.Recompute()
	return nil
}

// Reset removes all entries.
func (v *View) Reset() {
	for _, e := range v.entries {
		e.view = nil
	}
	v.entries = nil
	v.active, v.highlighted = nil, nil
	v.Recompute()
}

// Entry looks up the entry with handle h.
func (v *View) Entry(h Handle) (*Entry, error) {
	for _, e := range v.entries {
		if e.handle == h {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: handle %d", ErrUnknownEntry, h)
}

// ByHint returns all entries with the given hint.
func (v *View) ByHint(hint string) []*Entry {
	var es []*Entry
	for _, e := range v.entries {
		if e.hint == hint {
			es = append(es, e)
		}
	}
	return es
}

// Entries returns all entries in drawing order.
func (v *View) Entries() []*Entry { return slices.Clone(v.entries) }

// LegendEntries returns the entries to be listed in a legend.
func (v *View) LegendEntries() []*Entry {
	var es []*Entry
	for _, e := range v.entries {
		if !e.hiddenFromLegend {
			es = append(es, e)
		}
	}
	return es
}

// ----------------------------------------------------------------------------
// Layout

// Mapper returns the shared mapping of v.
func (v *View) Mapper() Mapper { return v.mapper }

// DataRect is the plotting area in pixels.
func (v *View) DataRect() image.Rectangle { return v.mapper.Rect }

// XGrid returns the grid lines of the x axis.
func (v *View) XGrid() GridDimension { return v.xgrid }

// YGrid returns the grid lines of the y axis.
func (v *View) YGrid() GridDimension { return v.ygrid }

// YLabelsSuppressed reports whether the y axis labels are meaningless
// and should not be drawn: individually scaled entries without an
// active one.
func (v *View) YLabelsSuppressed() bool { return v.yLabelsSuppressed }

// Geometry returns the drawing geometry of all entries not hidden from
// the legend, in drawing order.
func (v *View) Geometry() []Geometry {
	var gs []Geometry
	for _, e := range v.entries {
		if e.hiddenFromLegend {
			continue
		}
		gs = append(gs, e.Geometry())
	}
	return gs
}

// Recompute lays out v: it determines the data bounds, the plotting
// rectangle and the grid lines of both axes.
//
// The y axis is laid out first, inside a rectangle which reserves room
// for one line of x axis labels. The widest y label then determines the
// left margin and the x axis is laid out inside the final rectangle.
func (v *View) Recompute() {
	cfg := &v.cfg
	tx, ty := cfg.X.Transform, cfg.Y.Transform
	v.yLabelsSuppressed = cfg.IndividualScaling && v.active == nil

	bounds := v.dataBounds()
	if v.forceCustom {
		bounds = v.effectiveForced(bounds)
	}

	pad := cfg.Padding
	rect := image.Rectangle{
		Min: image.Pt(pad.Left, pad.Top),
		Max: image.Pt(v.width-pad.Right-1, v.height-pad.Bottom-1),
	}
	yPad := 5
	if cfg.X.Grid.ShowLabels {
		_, h := cfg.measurer().Measure("M")
		yPad = h + BigRulerDash + RulerTextSpacing
	}
	rect.Max.Y -= yPad

	m := Mapper{
		Bounds:     bounds,
		Rect:       clip(rect),
		TransformX: tx,
		TransformY: ty,
		Overflow:   cfg.Overflow,
	}

	v.ygrid = gridFor(AxisY, &cfg.Y, &m.Bounds, m.Rect.Dy())
	maxWidth := v.placeYLabels(&m)

	if cfg.Y.Grid.ShowLabels {
		m.Rect.Min.X += maxWidth + BigRulerDash + RulerTextSpacing
		m.Rect = clip(m.Rect)
	}

	v.xgrid = gridFor(AxisX, &cfg.X, &m.Bounds, m.Rect.Dx())
	v.placeXLabels(&m)

	ResolveLabels(v.ygrid.Lines, -1, MinDistanceBetweenLabels,
		cfg.Y.Grid.DistributeLabelsEvenly && v.ygrid.Transformed)
	ResolveLabels(v.xgrid.Lines, 1, MinDistanceBetweenLabels,
		cfg.X.Grid.DistributeLabelsEvenly && v.xgrid.Transformed)

	v.mapper = m
	v.updateScaling()

	slog.Debug("graph: recompute",
		"bounds", m.Bounds, "rect", m.Rect,
		"xlines", len(v.xgrid.Lines), "ylines", len(v.ygrid.Lines),
		"entries", len(v.entries))
}

// scalingEntry returns the only entry contributing to the shared bounds
// or nil if all do.
func (v *View) scalingEntry() *Entry {
	if v.cfg.IndividualScaling && v.active != nil && v.active.series.Len() > 0 {
		return v.active
	}
	return nil
}

// dataBounds is the transformed range of all finite values, adjusted by
// AlwaysShowZero and Center. Axes without values get the range [0:0].
func (v *View) dataBounds() Bounds {
	tx, ty := v.cfg.X.Transform, v.cfg.Y.Transform
	only := v.scalingEntry()
	x, y := unsetInterval(), unsetInterval()
	for _, e := range v.entries {
		if only != nil && e != only {
			continue
		}
		for _, p := range e.series.Sorted() {
			x.Update(forward(tx, p.X))
			y.Update(forward(ty, p.Y))
		}
	}
	return BoundsOf(v.cfg.X.adjust(x.orZero()), v.cfg.Y.adjust(y.orZero()))
}

// effectiveForced merges the forced bounds into the computed bounds b.
func (v *View) effectiveForced(b Bounds) Bounds {
	tx, ty := v.cfg.X.Transform, v.cfg.Y.Transform
	f := Bounds{
		MinX: forward(tx, v.forcedRaw.MinX),
		MaxX: forward(tx, v.forcedRaw.MaxX),
		MinY: forward(ty, v.forcedRaw.MinY),
		MaxY: forward(ty, v.forcedRaw.MaxY),
	}
	if math.IsNaN(f.MinX) {
		f.MinX = b.MinX
	}
	if math.IsNaN(f.MaxX) {
		f.MaxX = b.MaxX
	}
	if math.IsNaN(f.MinY) && math.IsNaN(f.MaxY) {
		only := v.scalingEntry()
		y := unsetInterval()
		for _, e := range v.entries {
			if e.hidden || (only != nil && e != only) {
				continue
			}
			ey := e.yRangeWithin(tx, ty, f.X())
			y.Update(ey.Min, ey.Max)
		}
		f.MinY, f.MaxY = y.Min, y.Max
	}
	if math.IsNaN(f.MinY) {
		f.MinY = b.MinY
	}
	if math.IsNaN(f.MaxY) {
		f.MaxY = b.MaxY
	}
	return f
}

// gridFor computes the grid lines of one axis inside the transformed
// bounds b spanning pixels. A TickOverride of the axis may replace the
// lines and adjust the range of b.
func gridFor(kind AxisKind, axis *Axis, b *Bounds, pixels int) GridDimension {
	lo, hi := &b.MinX, &b.MaxX
	if kind == AxisY {
		lo, hi = &b.MinY, &b.MaxY
	}
	if axis.Ticks != nil {
		req := TickRequest{Axis: kind, Settings: axis.Grid, Min: *lo, Max: *hi, Pixels: pixels}
		if ticks, tlo, thi, ok := axis.Ticks.OverrideTicks(req); ok {
			if finite(tlo) {
				*lo = tlo
			}
			if finite(thi) {
				*hi = thi
			}
			return overrideDimension(ticks)
		}
	}
	tr := Interval{*lo, *hi}
	raw := Interval{inverse(axis.Transform, *lo), inverse(axis.Transform, *hi)}
	return axis.Grid.Template(tr, raw, pixels, axis.Transform)
}

// placeYLabels sets the label, its height and the screen and text
// coordinates of the y grid lines. It returns the width of the widest
// label.
func (v *View) placeYLabels(m *Mapper) int {
	axis, meas := &v.cfg.Y, v.cfg.measurer()
	lines := v.ygrid.Lines
	maxWidth := 0
	for i := range lines {
		l := &lines[i]
		l.Label = axis.labelText(l.RawValue, l.Label, v.ygrid.Transformed)
		w, h := meas.Measure(l.Label)
		l.LabelSize = h
		maxWidth = max(maxWidth, w)

		l.ScreenCoordinate = m.MapY(l.RawValue, !v.ygrid.Transformed)
		l.TextCoordinate = l.ScreenCoordinate - h/2
		switch i {
		case 0:
			l.TextCoordinate = min(l.TextCoordinate, m.Rect.Max.Y-h)
		case len(lines) - 1:
			l.TextCoordinate = max(l.TextCoordinate, m.Rect.Min.Y)
		}
	}
	return maxWidth
}

// placeXLabels sets the label, its width and the screen and text
// coordinates of the x grid lines.
func (v *View) placeXLabels(m *Mapper) {
	axis, meas := &v.cfg.X, v.cfg.measurer()
	lines := v.xgrid.Lines
	for i := range lines {
		l := &lines[i]
		l.Label = axis.labelText(l.RawValue, l.Label, v.xgrid.Transformed)
		w, _ := meas.Measure(l.Label)
		l.LabelSize = w

		l.ScreenCoordinate = m.MapX(l.RawValue, !v.xgrid.Transformed)
		l.TextCoordinate = l.ScreenCoordinate - w/2
		switch i {
		case 0:
			l.TextCoordinate = max(l.TextCoordinate, m.Rect.Min.X)
		case len(lines) - 1:
			l.TextCoordinate = min(l.TextCoordinate, m.Rect.Max.X-w)
		}
	}
}

// updateScaling computes the forced bounds of all entries not pinned by
// SetForced. With IndividualScaling each entry spans the full height
// with its own y range over the visible x range, or its own band if
// SeparateBands is set.
func (v *View) updateScaling() {
	n := len(v.entries)
	if n == 0 {
		return
	}
	tx, ty := v.cfg.X.Transform, v.cfg.Y.Transform
	r := v.mapper.Rect
	band := r.Dy() / n
	for i, e := range v.entries {
		if e.pinned {
			continue
		}
		e.forced, e.forcedRect = InvalidBounds(), image.Rectangle{}
		if !v.cfg.IndividualScaling {
			continue
		}
		y := e.yRangeWithin(tx, ty, v.mapper.Bounds.X())
		b := v.mapper.Bounds
		b.MinY, b.MaxY = y.Min, y.Max
		e.forced = b
		if v.cfg.SeparateBands {
			top := r.Min.Y + i*band
			e.forcedRect = image.Rect(r.Min.X, top, r.Max.X, top+band*9/10)
		}
	}
}

// clip shrinks r to an empty rectangle if its maximum lies left of or
// above its minimum.
func clip(r image.Rectangle) image.Rectangle {
	r.Max.X = max(r.Max.X, r.Min.X)
	r.Max.Y = max(r.Max.Y, r.Min.Y)
	return r
}
