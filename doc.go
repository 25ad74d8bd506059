// Package graph lays out 2D line charts of numeric series.
//
// It computes everything needed to draw a chart in integer pixels and
// leaves the drawing itself to the host (see package geom for a painter
// onto gonum's draw.Canvas).
//
// Spaces
//
// Values live in three spaces:
//   - Data space       the values as stored in a data.Series
//   - Transformed space the values after the Transform of an axis
//                      (e.g. Log10Trans); bounds are kept here
//   - Screen space     integer pixels, y growing downwards
//
// A Mapper converts between transformed and screen space. Values far
// outside of the plotting rectangle are clamped Overflow pixels beyond
// its edges and non-finite values map to the clamp edges.
//
// Layout
//
// View.Recompute aggregates the bounds of all entries, applies forced
// bounds and the AlwaysShowZero and Center options and then lays out the
// two axes: the y axis first, inside a rectangle which reserves one line
// of x labels, then the x axis inside the rectangle left over by the
// widest y label. Grid lines are placed by GridSettings (minimum pixel
// distance, fixed spacing, maximum number of lines or a plot.Ticker) or
// by a TickOverride. Overlapping labels are hidden by ResolveLabels.
//
// Rendering
//
// Each Entry yields a Geometry: polylines, rectangles for runs of
// points falling into a few adjacent pixel columns (see BuildPath) and
// point markers. Runs keep dense series cheap to draw.
//
// Queries
//
// Entries and Views answer spatial queries: the interpolated y at an x,
// the sample point nearest to a pixel and the nearest series.
package graph
