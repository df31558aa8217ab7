package spline

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// knots builds a knot sequence from a flat coordinate list.
func knots(coords ...float64) []Point {
	pts, err := PointsFromCoords(coords)
	if err != nil {
		panic(err)
	}
	return pts
}

// countSegments returns the exact number of points the segments of seq
// flatten to.
func countSegments(seq iter.Seq[Segment], steps int) int {
	n := 0
	for seg := range seq {
		if n == 0 {
			n = 1
		}
		n += seg.Contribution(steps)
	}
	return n
}
