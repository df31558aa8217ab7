package spline

import (
	"fmt"
	"iter"
	"math"
)

// Flatten is the flat-buffer form of [FlattenPoints]: coords holds the knots
// as x0, y0, x1, y1, ..., and the result holds the polyline in the same
// form.
//
// Flatten validates its arguments before doing any work and returns no
// output on failure. It reports an [*ArgumentError] if steps is not
// positive or so large that the output size would overflow an int, if mode
// is unknown, if coords has an odd length, or, in fitted mode, if coords
// holds fewer than 3 x-y pairs. In raw mode, fewer than 4
// points are reported as an [*InsufficientPointsError]. All of the
// point-count errors match [ErrTooFewPoints] with [errors.Is].
func Flatten(steps int, coords []float64, mode Mode) ([]float64, error) {
	if err := validate(mode, steps, len(coords)/2); err != nil {
		return nil, err
	}
	knots, err := PointsFromCoords(coords)
	if err != nil {
		return nil, err
	}
	pts := appendMode(make([]Point, 0, Bound(mode, len(knots), steps)), knots, steps, mode)
	return AppendCoords(nil, pts), nil
}

// FlattenPoints flattens knots into a polyline in the given mode, with steps
// points per curve segment. It allocates a single buffer sized by [Bound].
//
// See [Flatten] for the errors it reports.
func FlattenPoints(knots []Point, steps int, mode Mode) ([]Point, error) {
	if err := validate(mode, steps, len(knots)); err != nil {
		return nil, err
	}
	return appendMode(make([]Point, 0, Bound(mode, len(knots), steps)), knots, steps, mode), nil
}

// Segments returns the Bézier segments of knots in the given mode: see
// [FittedSegments] and [RawSegments]. An unknown mode yields no segments.
func Segments(knots []Point, mode Mode) iter.Seq[Segment] {
	switch mode {
	case Fitted:
		return FittedSegments(knots)
	case Raw:
		return RawSegments(knots)
	default:
		return func(yield func(Segment) bool) {}
	}
}

func appendMode(dst []Point, knots []Point, steps int, mode Mode) []Point {
	if mode == Raw {
		return AppendRaw(dst, knots, steps)
	}
	return AppendFitted(dst, knots, steps)
}

// validate checks the arguments shared by Flatten and FlattenPoints. The
// order of the checks decides which error is reported for inputs that are
// wrong in several ways.
func validate(mode Mode, steps, numPoints int) error {
	if !mode.valid() {
		return &ArgumentError{Arg: "mode", Err: fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))}
	}
	if steps < 1 {
		return &ArgumentError{Arg: "steps", Err: fmt.Errorf("%w, got %d", ErrInvalidSteps, steps)}
	}
	need := mode.MinPoints()
	if numPoints >= need {
		if segs := mode.maxSegments(numPoints); steps > (math.MaxInt-1)/segs {
			return &ArgumentError{
				Arg: "steps",
				Err: fmt.Errorf("%w, got %d: %d points would overflow the output size", ErrInvalidSteps, steps, numPoints),
			}
		}
		return nil
	}
	if mode == Raw {
		return &InsufficientPointsError{Mode: mode, Have: numPoints, Need: need}
	}
	return &ArgumentError{
		Arg: "points",
		Err: fmt.Errorf("%w: pointList must contain at least %d x-y pairs", ErrTooFewPoints, need),
	}
}
