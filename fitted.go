package spline

import "iter"

// Blend ratios of the parabolic spline fit. These are the decimal
// approximations of ½, ⅙, ⅚, ⅓ and ⅔ used by the Tk canvas for smoothed
// lines, not the exact fractions; output matches Tk's to the last bit.
const (
	half      = 0.5
	sixth     = 0.167
	fiveSixth = 0.833
	third     = 0.333
	twoThirds = 0.667
)

// FittedSegments returns the cubic Bézier segments of a parabolic spline
// fitted to knots.
//
// Every triple of consecutive knots (a, b, c) produces one segment running
// from the midpoint of a and b to the midpoint of b and c, with b pulling on
// both control points. On an open curve the first segment starts exactly at
// the first knot and the last segment ends exactly at the last knot, so an
// open curve of M knots has M-2 segments.
//
// The curve is closed if the first and last knots are bit-for-bit equal. A
// closed curve starts with an additional wrap segment through the first knot,
// bridging the second-to-last and the second knot, and has no exact end
// anchors: its flattened polyline starts and ends at the same midpoint.
//
// A segment whose triple contains two identical adjacent knots is collapsed.
// Knots are compared exactly, not within a tolerance. The wrap segment of a
// closed curve is never collapsed.
//
// Fewer than 3 knots produce no segments.
func FittedSegments(knots []Point) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		walkFitted(knots, yield)
	}
}

func walkFitted(knots []Point, yield func(Segment) bool) {
	m := len(knots)
	if m < 3 {
		return
	}
	closed := knots[0] == knots[m-1]
	if closed {
		wrap := CubicBez{
			P0: blend(knots[m-2], half, knots[0], half),
			P1: blend(knots[m-2], sixth, knots[0], fiveSixth),
			P2: blend(knots[0], fiveSixth, knots[1], sixth),
			P3: blend(knots[0], half, knots[1], half),
		}
		if !yield(Segment{Bez: wrap}) {
			return
		}
	}

	for i := 2; i < m; i++ {
		a, b, c := knots[i-2], knots[i-1], knots[i]

		var bez CubicBez
		if i == 2 && !closed {
			bez.P0 = a
			bez.P1 = blend(a, third, b, twoThirds)
		} else {
			bez.P0 = blend(a, half, b, half)
			bez.P1 = blend(a, sixth, b, fiveSixth)
		}
		if i == m-1 && !closed {
			bez.P2 = blend(b, twoThirds, c, third)
			bez.P3 = c
		} else {
			bez.P2 = blend(b, fiveSixth, c, sixth)
			bez.P3 = blend(b, half, c, half)
		}

		if !yield(Segment{Bez: bez, Collapsed: a == b || b == c}) {
			return
		}
	}
}

// AppendFitted flattens the parabolic spline fitted to knots (see
// [FittedSegments]) and appends the resulting polyline to dst. Each segment
// contributes steps points, or a single point if it is collapsed, and the
// polyline is preceded by the start anchor of the first segment.
//
// The number of appended points never exceeds Bound(Fitted, len(knots),
// steps), and AppendFitted does not allocate if dst has room for that many
// points. If len(knots) < 3, dst is returned unchanged.
func AppendFitted(dst []Point, knots []Point, steps int) []Point {
	f := flattener{dst: dst, steps: steps}
	walkFitted(knots, f.add)
	return f.dst
}
