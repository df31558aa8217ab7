package spline

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how a knot sequence is interpreted.
type Mode int

const (
	// Fitted fits a parabolic spline to the knots. See [FittedSegments].
	Fitted Mode = iota + 1
	// Raw treats the knots as an explicit chain of Bézier anchors and
	// control points. See [RawSegments].
	Raw
)

func (m Mode) String() string {
	switch m {
	case Fitted:
		return "fitted"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the name of a mode. It accepts "fitted" and "raw", as
// well as the Tk canvas spellings "smooth" and "bezier" for [Fitted].
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fitted", "smooth", "bezier":
		return Fitted, nil
	case "raw":
		return Raw, nil
	default:
		return 0, &ArgumentError{Arg: "mode", Err: fmt.Errorf("%w: %q", ErrInvalidMode, s)}
	}
}

func (m Mode) valid() bool {
	return m == Fitted || m == Raw
}

// MinPoints returns the minimum number of knots accepted by [Flatten] and
// [FlattenPoints] in mode m, or 0 for an unknown mode.
func (m Mode) MinPoints() int {
	switch m {
	case Fitted:
		return 3
	case Raw:
		return 4
	default:
		return 0
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, &ArgumentError{Arg: "mode", Err: ErrInvalidMode}
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Bound returns the maximum number of points that flattening numPoints knots
// in the given mode with the given step count can produce, without computing
// any coordinates. Callers that manage their own buffers must provide room
// for at least this many points before calling [AppendFitted] or
// [AppendRaw].
//
// For Fitted the bound is 1 + numPoints·steps. For Raw it is
// 1 + S·steps, where S = (numPoints+1)/3 is the number of segments in the
// chain. S is rounded down, not up: every valid chain length 3S-1, 3S or
// 3S+1 yields exactly S, so Bound(Raw, 7, 4) is 9 rather than 13. The actual
// count is lower when segments collapse; for open fitted curves it is lower
// still, as they have numPoints-2 segments.
//
// Bound returns 0 for an unknown mode and for non-positive numPoints or
// steps. It returns [math.MaxInt] if the bound does not fit in an int.
func Bound(mode Mode, numPoints, steps int) int {
	if numPoints <= 0 || steps <= 0 {
		return 0
	}
	segs := mode.maxSegments(numPoints)
	if segs == 0 {
		return 0
	}
	if steps > (math.MaxInt-1)/segs {
		return math.MaxInt
	}
	return 1 + segs*steps
}

// maxSegments returns the number of segments Bound accounts for, or 0 for an
// unknown mode.
func (m Mode) maxSegments(numPoints int) int {
	switch m {
	case Fitted:
		return numPoints
	case Raw:
		// (numPoints+1)/3 without overflowing for numPoints near MaxInt.
		return numPoints/3 + (numPoints%3+1)/3
	default:
		return 0
	}
}
