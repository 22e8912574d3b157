package boundary

import (
	"sort"

	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// Contains reports whether c is inside the region enclosed by the boundary,
// using the even-odd rule on a ray cast toward +X.
func (b *Boundary) Contains(c geometry.Coordinate) bool {
	if b.OnOutline(c) {
		return true
	}
	return b.crossings(c)%2 == 1
}

// crossings counts the wall cells on c's row with X >= c.X.
func (b *Boundary) crossings(c geometry.Coordinate) int {
	xs, ok := b.walls[c.Y]
	if !ok {
		return 0
	}
	return len(xs) - sort.SearchInts(xs, c.X)
}

// ContainsRect reports whether every perimeter cell of r is inside.
// It stops at the first cell that is not.
func (b *Boundary) ContainsRect(r geometry.Bounds) bool {
	if !b.bounds.Contains(r.Min) || !b.bounds.Contains(r.Max) {
		return false
	}
	return r.Perimeter(b.Contains)
}
