package spline

import (
	"fmt"
	"math"
	"slices"
)

// Point is a point in a 2D plane. Knots, Bézier control points and the
// points of flattened polylines are all Points.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// blend returns wa·a + wb·b, evaluated per coordinate in that order.
//
// The evaluation order is part of the contract: the closed-curve wrap
// segment and the last interior segment compute the same midpoint from the
// same operands and must agree bit for bit.
func blend(a Point, wa float64, b Point, wb float64) Point {
	return Point{
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return blend(pt, 0.5, o, 0.5)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// PointsFromCoords converts a flat coordinate list x0, y0, x1, y1, ... into
// points. It returns an [*ArgumentError] wrapping [ErrOddCoordinates] if the
// list has an odd number of elements.
func PointsFromCoords(coords []float64) ([]Point, error) {
	if len(coords)%2 != 0 {
		return nil, &ArgumentError{Arg: "coordinates", Err: ErrOddCoordinates}
	}
	pts := make([]Point, len(coords)/2)
	for i := range pts {
		pts[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return pts, nil
}

// AppendCoords appends the coordinates of pts to dst in the flat form
// x0, y0, x1, y1, ... and returns the extended slice.
func AppendCoords(dst []float64, pts []Point) []float64 {
	dst = slices.Grow(dst, 2*len(pts))
	for _, pt := range pts {
		x, y := pt.Splat()
		dst = append(dst, x, y)
	}
	return dst
}
