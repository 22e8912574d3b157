package search

import (
	"cmp"
	"slices"

	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// Pair is an unordered pair of distinct candidates with A ordered before B.
type Pair struct {
	A    geometry.Coordinate `json:"a"`
	B    geometry.Coordinate `json:"b"`
	Area int64               `json:"area"`
}

// Rect returns the rectangle spanned by the pair.
func (p Pair) Rect() geometry.Bounds {
	return geometry.RectOf(p.A, p.B)
}

// comparePairs ranks larger areas first, then by corner order.
func comparePairs(p, q Pair) int {
	if c := cmp.Compare(q.Area, p.Area); c != 0 {
		return c
	}
	if c := p.A.Compare(q.A); c != 0 {
		return c
	}
	return p.B.Compare(q.B)
}

// distinctSorted de-duplicates candidates and orders them by X, then Y.
func distinctSorted(candidates []geometry.Coordinate) []geometry.Coordinate {
	points := geometry.Dedupe(candidates)
	slices.SortFunc(points, geometry.Coordinate.Compare)
	return points
}

// RankedPairs returns every distinct unordered pair of candidates, largest
// area first. It fails with geometry.ErrOverflow if any area overflows.
func RankedPairs(candidates []geometry.Coordinate) ([]Pair, error) {
	points := distinctSorted(candidates)
	if len(points) < 2 {
		return nil, nil
	}

	pairs := make([]Pair, 0, len(points)*(len(points)-1)/2)
	for i, a := range points {
		for _, b := range points[i+1:] {
			area, err := geometry.Area(a, b)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{A: a, B: b, Area: area})
		}
	}

	slices.SortFunc(pairs, comparePairs)
	return pairs, nil
}
