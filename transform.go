package spline

import (
	"iter"
	"math"
)

// Affine is an affine transform with coefficients (a, b, c, d, e, f),
// representing the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// so that (A * B) * v == A * (B * v).
//
// Bézier curves are invariant under affine transforms: transforming the
// control points of a segment transforms the curve. A display layer can
// therefore map knots, segments or flattened polylines from curve space to
// screen space with the same transform.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors the y-axis, converting between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale scales x and y by the given factors.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate moves points by (x, y).
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Rotate rotates by th radians. A positive angle rotates the positive x
// direction into the positive y direction, which is clockwise on a y-down
// canvas.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by a scale.
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns aff followed by a translation.
func (aff Affine) ThenTranslate(x, y float64) Affine {
	return Translate(x, y).Mul(aff)
}

// ThenRotate returns aff followed by a rotation.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform. It produces NaN values when the
// determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Transform transforms the segment's curve. The collapse verdict is kept:
// it describes the knots the segment was built from, not its geometry.
func (s Segment) Transform(aff Affine) Segment {
	return Segment{Bez: s.Bez.Transform(aff), Collapsed: s.Collapsed}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind, LineToKind:
		el.P0 = el.P0.Transform(aff)
	case CubicToKind:
		el.P0 = el.P0.Transform(aff)
		el.P1 = el.P1.Transform(aff)
		el.P2 = el.P2.Transform(aff)
	}
	return el
}

// AppendTransformed appends the transformed points of pts to dst. dst and
// pts may be the same slice, in which case pts is transformed in place by
// passing pts[:0] as dst.
func AppendTransformed(dst []Point, pts []Point, aff Affine) []Point {
	for _, pt := range pts {
		dst = append(dst, pt.Transform(aff))
	}
	return dst
}

// Transform applies aff to every element of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
