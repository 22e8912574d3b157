package geometry

import (
	"errors"
	"math"
	"math/bits"
)

// ErrOverflow is returned when an area does not fit in an int64.
var ErrOverflow = errors.New("area overflows int64")

// Area returns the number of cells in the axis-aligned rectangle with
// opposite corners p and q: (|p.X-q.X|+1) * (|p.Y-q.Y|+1).
func Area(p, q Coordinate) (int64, error) {
	w, ok := span(p.X, q.X)
	if !ok {
		return 0, ErrOverflow
	}
	h, ok := span(p.Y, q.Y)
	if !ok {
		return 0, ErrOverflow
	}
	hi, lo := bits.Mul64(w, h)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(lo), nil
}

// MustArea is Area for callers whose inputs are known to be in range.
// It panics on overflow.
func MustArea(p, q Coordinate) int64 {
	a, err := Area(p, q)
	if err != nil {
		panic(err)
	}
	return a
}

// span returns |a-b|+1 without wrapping. Subtraction in uint64 is exact for
// any pair of ints once the larger one is on the left.
func span(a, b int) (uint64, bool) {
	if a < b {
		a, b = b, a
	}
	d := uint64(int64(a)) - uint64(int64(b))
	if d == math.MaxUint64 {
		return 0, false
	}
	return d + 1, true
}
