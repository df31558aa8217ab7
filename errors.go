package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSteps is reported when the step count is not positive.
	ErrInvalidSteps = errors.New("step count must be a positive integer")
	// ErrOddCoordinates is reported when a flat coordinate list has an odd
	// number of elements.
	ErrOddCoordinates = errors.New("pointList must contain an even number of elements")
	// ErrTooFewPoints is reported when there are fewer knots than the mode
	// requires.
	ErrTooFewPoints = errors.New("too few points")
	// ErrInvalidMode is reported for an unknown [Mode].
	ErrInvalidMode = errors.New("unknown mode")
)

// ArgumentError reports an invalid argument to [Flatten] or
// [FlattenPoints]. Arguments are validated before any computation takes
// place, so a call that fails with an ArgumentError produces no output.
type ArgumentError struct {
	// Arg names the offending argument.
	Arg string
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("spline: invalid %s: %v", e.Arg, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// InsufficientPointsError reports that a raw Bézier chain has fewer than
// the 4 points needed for one segment.
type InsufficientPointsError struct {
	Mode Mode
	Have int
	Need int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("spline: %s curve needs at least %d points, have %d", e.Mode, e.Need, e.Have)
}

// Is reports whether target is [ErrTooFewPoints].
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrTooFewPoints
}
