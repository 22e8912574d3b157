package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironsheep/floor-tools-mcp/internal/boundary"
	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// ErrNotFound is returned when no pair of candidates satisfies the search.
var ErrNotFound = errors.New("no valid rectangle")

// Result is the winning pair of a search.
type Result struct {
	Pair

	// Rank is the 1-based position of the pair in the area ranking.
	// For the constrained search, Rank-1 larger pairs were rejected.
	Rank int `json:"rank"`

	// Pairs is the number of distinct pairs the candidates form. It is set
	// alongside ErrNotFound too, so zero means fewer than two distinct
	// candidates and anything else means every pair was rejected.
	Pairs int `json:"pairs"`
}

// Options tunes the constrained search.
type Options struct {
	// Workers is the number of goroutines checking pairs. Values below 2
	// run the search on the calling goroutine.
	Workers int

	// Window is the number of ranked pairs handed to each worker per round.
	// Zero selects DefaultWindow.
	Window int
}

// DefaultWindow is the per-worker batch size used when Options.Window is zero.
const DefaultWindow = 256

// rectOracle is implemented by oracles with a faster whole-rectangle check.
type rectOracle interface {
	ContainsRect(r geometry.Bounds) bool
}

// LargestArea returns the pair of distinct candidates spanning the largest
// rectangle, ignoring any containment constraint.
func LargestArea(candidates []geometry.Coordinate) (Result, error) {
	points := distinctSorted(candidates)
	if len(points) < 2 {
		return Result{}, fmt.Errorf("%w: need at least 2 distinct candidates, got %d", ErrNotFound, len(points))
	}

	var best Pair
	found := false
	for i, a := range points {
		for _, b := range points[i+1:] {
			area, err := geometry.Area(a, b)
			if err != nil {
				return Result{}, err
			}
			p := Pair{A: a, B: b, Area: area}
			if !found || comparePairs(p, best) < 0 {
				best, found = p, true
			}
		}
	}

	n := len(points)
	return Result{Pair: best, Rank: 1, Pairs: n * (n - 1) / 2}, nil
}

// LargestAreaConstrained is LargestAreaConstrainedContext with a background
// context and a sequential search.
func LargestAreaConstrained(candidates []geometry.Coordinate, oracle boundary.Oracle) (Result, error) {
	return LargestAreaConstrainedContext(context.Background(), candidates, oracle, Options{})
}

// LargestAreaConstrainedContext returns the largest rectangle spanned by two
// distinct candidates whose every perimeter cell oracle reports as inside.
//
// The context is checked between windows of pairs; cancellation returns
// ctx.Err().
func LargestAreaConstrainedContext(ctx context.Context, candidates []geometry.Coordinate, oracle boundary.Oracle, opts Options) (Result, error) {
	pairs, err := RankedPairs(candidates)
	if err != nil {
		return Result{}, err
	}
	if len(pairs) == 0 {
		return Result{}, fmt.Errorf("%w: need at least 2 distinct candidates", ErrNotFound)
	}

	idx, err := firstValid(ctx, pairs, oracle, opts)
	if err != nil {
		return Result{}, err
	}
	if idx < 0 {
		return Result{Pairs: len(pairs)}, fmt.Errorf("%w: none of %d pairs fits inside the boundary", ErrNotFound, len(pairs))
	}

	return Result{Pair: pairs[idx], Rank: idx + 1, Pairs: len(pairs)}, nil
}

// valid reports whether the pair's whole perimeter lies inside.
func valid(oracle boundary.Oracle, p Pair) bool {
	r := p.Rect()
	if ro, ok := oracle.(rectOracle); ok {
		return ro.ContainsRect(r)
	}
	return r.Perimeter(oracle.Contains)
}
