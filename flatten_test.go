package spline

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestFlattenScenarios(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		coords []float64
		steps  int
		points int
	}{
		{"open", Fitted, []float64{0, 0, 10, 0, 10, 10}, 4, 5},
		{"closed", Fitted, []float64{0, 0, 10, 0, 10, 10, 0, 0}, 4, 13},
		{"collapsed", Fitted, []float64{0, 0, 5, 5, 5, 5, 10, 0}, 4, 3},
		{"raw", Raw, []float64{0, 0, 0, 10, 10, 10, 10, 0, 10, -10, 20, -10, 20, 0}, 4, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(tt.steps, tt.coords, tt.mode)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if len(got) != 2*tt.points {
				t.Fatalf("got %d coordinates, want %d", len(got), 2*tt.points)
			}
			if bound := Bound(tt.mode, len(tt.coords)/2, tt.steps); tt.points > bound {
				t.Errorf("%d points exceed the bound of %d", tt.points, bound)
			}

			pts, err := FlattenPoints(knots(tt.coords...), tt.steps, tt.mode)
			if err != nil {
				t.Fatalf("FlattenPoints: unexpected error: %s", err)
			}
			diff(t, got, AppendCoords(nil, pts))
		})
	}
}

func TestFlattenOpenEndpoints(t *testing.T) {
	got, err := Flatten(4, []float64{0, 0, 10, 0, 10, 10}, Fitted)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0, 0}, got[:2])
	diff(t, []float64{10, 10}, got[len(got)-2:])
}

func TestFlattenClosedEndpoints(t *testing.T) {
	got, err := Flatten(4, []float64{0, 0, 10, 0, 10, 10, 0, 0}, Fitted)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got[:2], got[len(got)-2:])
}

func TestFlattenErrors(t *testing.T) {
	tests := []struct {
		name   string
		steps  int
		coords []float64
		mode   Mode
		arg    string
		target error
	}{
		{"two points", 4, []float64{0, 0, 10, 10}, Fitted, "points", ErrTooFewPoints},
		{"five scalars", 4, []float64{0, 0, 10, 10, 5}, Fitted, "points", ErrTooFewPoints},
		{"odd", 4, []float64{0, 0, 10, 10, 5, 5, 1}, Fitted, "coordinates", ErrOddCoordinates},
		{"zero steps", 0, []float64{0, 0, 10, 0, 10, 10}, Fitted, "steps", ErrInvalidSteps},
		{"negative steps", -2, []float64{0, 0, 10, 0, 10, 10}, Raw, "steps", ErrInvalidSteps},
		{"mode", 4, []float64{0, 0, 10, 0, 10, 10}, Mode(0), "mode", ErrInvalidMode},
		{"raw odd", 4, []float64{0, 0, 1, 1, 2, 2, 3, 3, 4}, Raw, "coordinates", ErrOddCoordinates},
		{"overflowing steps", math.MaxInt / 2, []float64{0, 0, 10, 0, 10, 10, 0, 0}, Fitted, "steps", ErrInvalidSteps},
		{"overflowing raw steps", math.MaxInt, []float64{0, 0, 0, 10, 10, 10, 10, 0}, Raw, "steps", ErrInvalidSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(tt.steps, tt.coords, tt.mode)
			if got != nil {
				t.Errorf("got output %v alongside an error", got)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("got error %v, want an *ArgumentError", err)
			}
			if argErr.Arg != tt.arg {
				t.Errorf("error names argument %q, want %q", argErr.Arg, tt.arg)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("error %v doesn't match %v", err, tt.target)
			}
		})
	}
}

func TestFlattenPointsOverflowingSteps(t *testing.T) {
	k := knots(0, 0, 10, 0, 10, 10, 0, 0)
	got, err := FlattenPoints(k, math.MaxInt/2, Fitted)
	if got != nil {
		t.Errorf("got output %v alongside an error", got)
	}
	if !errors.Is(err, ErrInvalidSteps) {
		t.Errorf("got error %v, want ErrInvalidSteps", err)
	}
	if b := Bound(Fitted, len(k), math.MaxInt/2); b != math.MaxInt {
		t.Errorf("Bound = %d, want MaxInt", b)
	}
}

func TestFlattenRawInsufficientPoints(t *testing.T) {
	for _, coords := range [][]float64{
		{0, 0, 1, 1, 2, 2},
		{0, 0, 1, 1, 2, 2, 3},
	} {
		got, err := Flatten(4, coords, Raw)
		if got != nil {
			t.Errorf("got output %v alongside an error", got)
		}
		var ipErr *InsufficientPointsError
		if !errors.As(err, &ipErr) {
			t.Fatalf("got error %v, want an *InsufficientPointsError", err)
		}
		if ipErr.Have != 3 || ipErr.Need != 4 || ipErr.Mode != Raw {
			t.Errorf("got %+v, want 3 of 4 points in raw mode", *ipErr)
		}
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("error %v doesn't match ErrTooFewPoints", err)
		}
	}
}

func TestFlattenPointsDoesNotModifyInput(t *testing.T) {
	k := knots(0, 0, 10, 0, 10, 10, 0, 0)
	orig := slices.Clone(k)
	if _, err := FlattenPoints(k, 8, Fitted); err != nil {
		t.Fatal(err)
	}
	diff(t, orig, k)
}

func TestSegmentsByMode(t *testing.T) {
	k := knots(0, 0, 1, 1, 2, 1, 3, 0)
	diff(t, slices.Collect(FittedSegments(k)), slices.Collect(Segments(k, Fitted)))
	diff(t, slices.Collect(RawSegments(k)), slices.Collect(Segments(k, Raw)))
	if segs := slices.Collect(Segments(k, Mode(0))); len(segs) != 0 {
		t.Errorf("unknown mode produced segments: %v", segs)
	}
}

func TestPointsFromCoords(t *testing.T) {
	got, err := PointsFromCoords([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(1, 2), Pt(3, 4)}, got)

	if _, err := PointsFromCoords([]float64{1, 2, 3}); !errors.Is(err, ErrOddCoordinates) {
		t.Errorf("got error %v, want ErrOddCoordinates", err)
	}
	diff(t, []float64{9, 1, 2, 3, 4}, AppendCoords([]float64{9}, got))
}
