package spline

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestRawChain(t *testing.T) {
	// 3S+1 form with S = 2.
	k := knots(
		0, 0,
		0, 10, 10, 10,
		10, 0,
		10, -10, 20, -10,
		20, 0,
	)
	const steps = 4
	got := AppendRaw(nil, k, steps)
	if want := 1 + 2*steps; len(got) != want {
		t.Fatalf("got %d points, want %d", len(got), want)
	}
	if got[0] != k[0] {
		t.Errorf("chain starts at %v, want %v", got[0], k[0])
	}
	if got[steps] != k[3] {
		t.Errorf("first segment ends at %v, want %v", got[steps], k[3])
	}
	if got[len(got)-1] != k[6] {
		t.Errorf("chain ends at %v, want %v", got[len(got)-1], k[6])
	}
	if mid := got[steps/2]; !cmpApprox(mid, Pt(5, 7.5)) {
		t.Errorf("first segment midpoint is %v, want (5, 7.5)", mid)
	}
}

func TestRawWrap(t *testing.T) {
	tests := []struct {
		name  string
		knots []Point
		want  []CubicBez
	}{
		{
			"3S",
			knots(0, 0, 1, 1, 2, 1, 3, 0, 2, -1, 1, -1),
			[]CubicBez{
				{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)},
				{Pt(3, 0), Pt(2, -1), Pt(1, -1), Pt(0, 0)},
			},
		},
		{
			"3S-1",
			knots(0, 0, 1, 1, 2, 1, 3, 0, 2, -1),
			[]CubicBez{
				{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)},
				{Pt(3, 0), Pt(2, -1), Pt(0, 0), Pt(1, 1)},
			},
		},
		{
			"3S+1",
			knots(0, 0, 1, 1, 2, 1, 3, 0),
			[]CubicBez{
				{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []CubicBez
			for seg := range RawSegments(tt.knots) {
				got = append(got, seg.Bez)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestRawClosedChainEndsAtStart(t *testing.T) {
	k := knots(0, 0, 1, 1, 2, 1, 3, 0, 2, -1, 1, -1)
	got := AppendRaw(nil, k, 5)
	if got[0] != got[len(got)-1] {
		t.Errorf("3S chain starts at %v but ends at %v", got[0], got[len(got)-1])
	}
}

func TestRawCollapse(t *testing.T) {
	tests := []struct {
		name  string
		knots []Point
		want  []Point
	}{
		{
			"straight",
			knots(0, 0, 0, 0, 10, 10, 10, 10),
			[]Point{Pt(0, 0), Pt(10, 10)},
		},
		{
			"wrap",
			// The wrap segment is (3,0) (3,0) (0,0) (0,0).
			knots(0, 0, 0, 0, 3, 0, 3, 0, 3, 0, 0, 0),
			[]Point{Pt(0, 0), Pt(3, 0), Pt(0, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, AppendRaw(nil, tt.knots, 8))
		})
	}
}

func TestRawCollapseNeedsBothEnds(t *testing.T) {
	// Only the start anchor coincides with its control point.
	k := knots(0, 0, 0, 0, 5, 10, 10, 10)
	segs := slices.Collect(RawSegments(k))
	if len(segs) != 1 || segs[0].Collapsed {
		t.Fatalf("got %v, want a single flattened segment", segs)
	}
	if got := AppendRaw(nil, k, 6); len(got) != 7 {
		t.Errorf("got %d points, want 7", len(got))
	}
}

func TestRawShortChains(t *testing.T) {
	if segs := slices.Collect(RawSegments(knots(1, 1))); len(segs) != 0 {
		t.Errorf("a single point produced segments: %v", segs)
	}
	// Two points borrow both missing points from the start of the chain.
	segs := slices.Collect(RawSegments(knots(0, 0, 1, 1)))
	want := []Segment{{Bez: CubicBez{Pt(0, 0), Pt(1, 1), Pt(0, 0), Pt(1, 1)}}}
	diff(t, want, segs)
}

func TestRawProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := range 500 {
		m := 4 + r.IntN(14)
		steps := 1 + r.IntN(6)
		k := randomKnots(r, m, false)

		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got := AppendRaw(nil, k, steps)
			segs := slices.Collect(RawSegments(k))

			if want := countSegments(RawSegments(k), steps); len(got) != want {
				t.Errorf("got %d points, segments account for %d", len(got), want)
			}
			if bound := Bound(Raw, m, steps); len(got) > bound {
				t.Errorf("got %d points, bound is %d", len(got), bound)
			}
			if want := (m + 1) / 3; len(segs) != want {
				t.Errorf("got %d segments, want %d", len(segs), want)
			}
			for j := 1; j < len(segs); j++ {
				if segs[j-1].Bez.End() != segs[j].Bez.Start() {
					t.Errorf("segments %d and %d are not contiguous", j-1, j)
				}
			}
			for j, seg := range segs {
				b := seg.Bez
				if want := b.P0 == b.P1 && b.P2 == b.P3; seg.Collapsed != want {
					t.Errorf("segment %d: collapsed = %t, want %t", j, seg.Collapsed, want)
				}
			}
			if got[0] != k[0] || segs[0].Bez.Start() != k[0] {
				t.Errorf("chain starts at %v, want %v", got[0], k[0])
			}
			if last := segs[len(segs)-1].Bez.End(); got[len(got)-1] != last {
				t.Errorf("chain ends at %v, want %v", got[len(got)-1], last)
			}
		})
	}
}

func TestAppendRawAllocs(t *testing.T) {
	k := knots(0, 0, 0, 10, 10, 10, 10, 0, 10, -10, 20, -10)
	const steps = 16
	dst := make([]Point, 0, Bound(Raw, len(k), steps))
	allocs := testing.AllocsPerRun(100, func() {
		dst = AppendRaw(dst[:0], k, steps)
	})
	if allocs != 0 {
		t.Errorf("got %v allocations, want 0", allocs)
	}
}

func BenchmarkAppendRaw(b *testing.B) {
	r := rand.New(rand.NewPCG(7, 8))
	k := make([]Point, 64)
	for i := range k {
		k[i] = Pt(r.Float64()*100, r.Float64()*100)
	}
	for _, steps := range []int{4, 12, 64} {
		b.Run(fmt.Sprintf("steps=%d", steps), func(b *testing.B) {
			dst := make([]Point, 0, Bound(Raw, len(k), steps))
			for range b.N {
				dst = AppendRaw(dst[:0], k, steps)
			}
		})
	}
}
