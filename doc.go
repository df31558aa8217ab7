// Package spline turns a handful of 2D knots into a dense polyline that
// approximates a smooth curve through or near them. It is meant to feed a
// display layer that only knows how to draw straight lines.
//
// # Modes
//
// Knots are interpreted in one of two ways, selected by [Mode]:
//
//   - [Fitted] fits a parabolic spline to the knots, the way the Tk canvas
//     smooths lines. Each run of three consecutive knots becomes one cubic
//     Bézier segment, with control points derived from fixed blend ratios.
//     The resulting curve is C1-continuous and passes near, but generally
//     not through, the interior knots. If the first and last knots are
//     identical the curve is closed. See [FittedSegments].
//   - [Raw] interprets the knots as an explicit chain of Bézier anchors and
//     control points, k0 c c k1 c c k2 .... See [RawSegments].
//
// # Flattening
//
// Every cubic segment is flattened into a fixed number of points per
// segment, the step count, evaluated at evenly spaced parameters. A segment
// does not emit its start point, only its end point, so the segments of a
// chain concatenate without duplicates; the polyline as a whole is preceded
// by the start point of its first segment.
//
// Degenerate segments, detected by exact floating-point comparison of
// knots, collapse to their end point. Exact comparison is deliberate: the
// same rule decides whether a fitted curve is closed, and both must behave
// the same as Tk's canvas code for identical input.
//
// # Sizing and filling
//
// [Bound] computes how many points a call can produce at most. [AppendFitted]
// and [AppendRaw] follow the append convention of [strconv.AppendInt]: they
// append to a destination slice and never allocate if it has room for
// [Bound] more points. [Flatten] and [FlattenPoints] validate their
// arguments, size a buffer and fill it in one call.
//
// # Paths
//
// [SegmentPath] and [Polyline] express segments and flattened polylines as
// sequences of [PathElement], which [WriteSVG] turns into SVG path data.
//
// # Concurrency
//
// The package has no state. All functions are safe for concurrent use as
// long as callers do not share destination buffers.
package spline
