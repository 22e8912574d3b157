package boundary

import (
	"slices"
	"sort"

	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// MinPoints is the smallest number of corners a closed rectilinear path can have.
const MinPoints = 4

// Oracle classifies cells as inside or outside a region.
type Oracle interface {
	Contains(c geometry.Coordinate) bool
}

// Boundary is an immutable closed rectilinear path together with the cell
// sets derived from it.
type Boundary struct {
	vertices []geometry.Coordinate
	bounds   geometry.Bounds
	outline  map[geometry.Coordinate]struct{}

	// walls maps a row to the sorted, distinct X positions of wall cells on it.
	walls   map[int][]int
	wallLen int
}

// Build validates points as a closed rectilinear path and derives its outline
// and vertical walls.
//
// The path is implicitly closed: an edge runs from the last point back to the
// first. Build fails with a *ConstructionError when there are fewer than
// MinPoints points, when a corner lies outside ±geometry.MaxCoordinate, when
// an edge is diagonal, or when two consecutive points are equal. Points are copied; later changes to the slice have no effect.
//
// Non-consecutive repeated points are accepted. Such self-touching paths are
// classified by whatever the parity rule yields.
func Build(points []geometry.Coordinate) (*Boundary, error) {
	if len(points) < MinPoints {
		return nil, &ConstructionError{Edge: -1, Err: ErrTooFewPoints}
	}

	n := len(points)
	for i, p := range points {
		if !p.InRange() {
			return nil, &ConstructionError{Edge: i, From: p, To: points[(i+1)%n], Err: ErrCoordinateRange}
		}
	}
	for i := 0; i < n; i++ {
		from, to := points[i], points[(i+1)%n]
		switch {
		case from == to:
			return nil, &ConstructionError{Edge: i, From: from, To: to, Err: ErrDegenerateEdge}
		case from.X != to.X && from.Y != to.Y:
			return nil, &ConstructionError{Edge: i, From: from, To: to, Err: ErrDiagonalEdge}
		}
	}

	b := &Boundary{
		vertices: slices.Clone(points),
		outline:  make(map[geometry.Coordinate]struct{}),
		walls:    make(map[int][]int),
	}
	b.bounds, _ = geometry.BoundsOf(points)

	for i := 0; i < n; i++ {
		from, to := points[i], points[(i+1)%n]
		geometry.Segment(from, to, func(c geometry.Coordinate) {
			b.outline[c] = struct{}{}
		})
		if from.X == to.X {
			for y := min(from.Y, to.Y); y < max(from.Y, to.Y); y++ {
				b.walls[y] = append(b.walls[y], from.X)
			}
		}
	}

	// Overlapping vertical edges share cells; keep each wall cell once.
	for y, xs := range b.walls {
		sort.Ints(xs)
		xs = slices.Compact(xs)
		b.walls[y] = xs
		b.wallLen += len(xs)
	}

	return b, nil
}

// Vertices returns a copy of the corner points in path order.
func (b *Boundary) Vertices() []geometry.Coordinate {
	return slices.Clone(b.vertices)
}

// Bounds returns the bounding box of the corner points.
func (b *Boundary) Bounds() geometry.Bounds {
	return b.bounds
}

// OutlineLen is the number of distinct outline cells.
func (b *Boundary) OutlineLen() int {
	return len(b.outline)
}

// WallLen is the number of distinct vertical-wall cells.
func (b *Boundary) WallLen() int {
	return b.wallLen
}

// OnOutline reports whether c lies on an edge of the boundary.
func (b *Boundary) OnOutline(c geometry.Coordinate) bool {
	_, ok := b.outline[c]
	return ok
}

// IsWall reports whether c is a vertical-wall cell.
func (b *Boundary) IsWall(c geometry.Coordinate) bool {
	xs := b.walls[c.Y]
	i := sort.SearchInts(xs, c.X)
	return i < len(xs) && xs[i] == c.X
}

// Outline calls fn for every outline cell in unspecified order.
func (b *Boundary) Outline(fn func(geometry.Coordinate)) {
	for c := range b.outline {
		fn(c)
	}
}
