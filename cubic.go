package spline

import "iter"

// CubicBez is a cubic Bézier segment: a start anchor, two control points and
// an end anchor.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at parameter t using the Bernstein form
//
//	B(t) = P0·(1-t)³ + 3·P1·t·(1-t)² + 3·P2·t²·(1-t) + P3·t³.
//
// Eval(1) is exactly P3 for finite control points.
func (c CubicBez) Eval(t float64) Point {
	t2 := t * t
	t3 := t2 * t
	u := 1.0 - t
	u2 := u * u
	u3 := u2 * u
	return Point{
		X: c.P0.X*u3 + 3.0*(c.P1.X*t*u2+c.P2.X*t2*u) + c.P3.X*t3,
		Y: c.P0.Y*u3 + 3.0*(c.P1.Y*t*u2+c.P2.Y*t2*u) + c.P3.Y*t3,
	}
}

// AppendPoints flattens the segment into steps points and appends them to
// dst. The points are evaluated at t = i/steps for i = 1, ..., steps: the
// start anchor is not emitted, the end anchor is. This lets consecutive
// segments of a chain be flattened back to back without duplicating the
// shared anchor.
//
// AppendPoints does not allocate if dst has room for steps more points. It
// appends nothing if steps < 1.
func (c CubicBez) AppendPoints(dst []Point, steps int) []Point {
	n := float64(steps)
	for i := 1; i <= steps; i++ {
		dst = append(dst, c.Eval(float64(i)/n))
	}
	return dst
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// PathElements returns the segment as a move to its start anchor followed by
// a cubic Bézier to its end anchor.
func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

// Segment is a cubic Bézier segment produced by one of the spline builders,
// together with the builder's verdict on whether the segment is degenerate.
//
// A collapsed segment contributes only its end anchor to a flattened
// polyline, instead of one point per step.
type Segment struct {
	Bez       CubicBez
	Collapsed bool
}

// AppendPoints appends the segment's contribution to a flattened polyline:
// the end anchor alone if the segment is collapsed, steps points otherwise.
func (s Segment) AppendPoints(dst []Point, steps int) []Point {
	if s.Collapsed {
		return append(dst, s.Bez.P3)
	}
	return s.Bez.AppendPoints(dst, steps)
}

// Contribution returns the number of points [Segment.AppendPoints] appends
// for the given step count.
func (s Segment) Contribution(steps int) int {
	if s.Collapsed {
		return 1
	}
	return max(steps, 0)
}

// flattener accumulates a flattened polyline from a builder's segments:
// the start anchor of the first segment, followed by every segment's
// contribution.
type flattener struct {
	dst     []Point
	steps   int
	started bool
}

func (f *flattener) add(seg Segment) bool {
	if !f.started {
		f.dst = append(f.dst, seg.Bez.P0)
		f.started = true
	}
	f.dst = seg.AppendPoints(f.dst, f.steps)
	return true
}
