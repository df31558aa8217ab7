package spline

import "iter"

// RawSegments interprets knots as an explicit chain of cubic Bézier segments
// and returns those segments.
//
// The chain is read as k0 c c k1 c c k2 ...: every anchor is followed by two
// control points, and consecutive segments share their anchors, so windows
// of 4 points are taken at a stride of 3. A chain of S segments has 3S+1,
// 3S or 3S-1 points. In the shorter forms, the 1 or 2 points missing from
// the last segment are taken from the start of the chain, which closes the
// curve in the 3S case.
//
// A segment whose start anchor equals its first control point and whose end
// anchor equals its second control point is a straight line and is
// collapsed. Points are compared exactly. The wrap segment follows the same
// rule.
func RawSegments(knots []Point) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		walkRaw(knots, yield)
	}
}

func walkRaw(knots []Point, yield func(Segment) bool) {
	j := 0
	for ; len(knots)-j >= 4; j += 3 {
		if !yield(rawSegment(knots[j], knots[j+1], knots[j+2], knots[j+3])) {
			return
		}
	}

	// 2 or 3 points left over: borrow the rest from the start of the chain.
	if len(knots)-j > 1 {
		var ctrl [4]Point
		n := copy(ctrl[:], knots[j:])
		copy(ctrl[n:], knots)
		yield(rawSegment(ctrl[0], ctrl[1], ctrl[2], ctrl[3]))
	}
}

func rawSegment(p0, p1, p2, p3 Point) Segment {
	return Segment{
		Bez:       CubicBez{p0, p1, p2, p3},
		Collapsed: p0 == p1 && p2 == p3,
	}
}

// AppendRaw flattens the Bézier chain described by knots (see
// [RawSegments]) and appends the resulting polyline to dst, starting with
// the first knot.
//
// The number of appended points never exceeds Bound(Raw, len(knots), steps),
// and AppendRaw does not allocate if dst has room for that many points.
func AppendRaw(dst []Point, knots []Point, steps int) []Point {
	f := flattener{dst: dst, steps: steps}
	walkRaw(knots, f.add)
	return f.dst
}
