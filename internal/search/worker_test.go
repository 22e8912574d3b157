package search

import (
	"context"
	"testing"

	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

func TestParallelMatchesSequential(t *testing.T) {
	shapes := map[string][]geometry.Coordinate{
		"stepped": stepped,
		"notch":   notch,
		"comb":    pts(0, 0, 14, 0, 14, 9, 11, 9, 11, 3, 9, 3, 9, 9, 6, 9, 6, 3, 4, 3, 4, 9, 0, 9),
		"spiral":  pts(0, 0, 12, 0, 12, 12, 3, 12, 3, 4, 8, 4, 8, 8, 6, 8, 6, 10, 10, 10, 10, 2, 0, 2),
	}
	options := []Options{
		{Workers: 2, Window: 1},
		{Workers: 3, Window: 2},
		{Workers: 8, Window: 5},
		{Workers: 4},
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			b := mustBuild(t, shape)

			want, err := LargestAreaConstrained(shape, b)
			if err != nil {
				t.Fatalf("sequential search failed: %v", err)
			}
			for _, opts := range options {
				got, err := LargestAreaConstrainedContext(context.Background(), shape, b, opts)
				if err != nil {
					t.Errorf("%+v: unexpected error %v", opts, err)
					continue
				}
				if got != want {
					t.Errorf("%+v: got %+v, want %+v", opts, got, want)
				}
			}
		})
	}
}

func TestRankedPairs(t *testing.T) {
	pairs, err := RankedPairs(pts(0, 0, 0, 3, 4, 0, 0, 0))
	if err != nil {
		t.Fatalf("RankedPairs failed: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}

	wantAreas := []int64{20, 5, 4}
	for i, p := range pairs {
		if p.Area != wantAreas[i] {
			t.Errorf("pair %d area: got %d, want %d", i, p.Area, wantAreas[i])
		}
		if !p.A.Less(p.B) {
			t.Errorf("pair %d corners not ordered: %v %v", i, p.A, p.B)
		}
	}

	none, err := RankedPairs(pts(1, 1))
	if err != nil || len(none) != 0 {
		t.Errorf("single candidate: got %v, %v", none, err)
	}
}
