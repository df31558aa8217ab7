package spline

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a path. Paths produced by this
// package start with a [MoveToKind] element.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// SegmentPath converts the output of a spline builder into a path of Bézier
// commands, without flattening. Collapsed segments become straight lines to
// their end anchors. If the path ends exactly where it started, it is closed.
//
// This relies on the segments of a builder being contiguous, which holds for
// [FittedSegments] and [RawSegments].
func SegmentPath(seq iter.Seq[Segment]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var start, end Point
		first := true
		for seg := range seq {
			if first {
				first = false
				start = seg.Bez.Start()
				if !seg.Collapsed {
					for el := range seg.Bez.PathElements() {
						if !yield(el) {
							return
						}
					}
					end = seg.Bez.End()
					continue
				}
				if !yield(MoveTo(start)) {
					return
				}
			}
			var el PathElement
			if seg.Collapsed {
				el = LineTo(seg.Bez.End())
			} else {
				el = CubicTo(seg.Bez.P1, seg.Bez.P2, seg.Bez.P3)
			}
			if !yield(el) {
				return
			}
			end = seg.Bez.End()
		}
		if !first && start == end {
			yield(ClosePath())
		}
	}
}

// Polyline returns a path that visits pts in order with straight lines.
func Polyline(pts []Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pts {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}
