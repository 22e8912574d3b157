package boundary

import (
	"fmt"

	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// FloodFill classifies cells by flooding the exterior of a boundary.
//
// It holds one flag per cell of the boundary's bounding box grown by one
// cell on every side. The grown box guarantees that its corner is outside
// the shape and that the exterior is connected around the shape.
type FloodFill struct {
	inner    geometry.Bounds
	grown    geometry.Bounds
	width    int
	exterior []bool
}

// NewFloodFill floods the exterior of b using 4-connectivity.
//
// maxCells bounds the size of the grown bounding box; a value <= 0 means no
// limit. Boxes larger than maxCells fail with ErrFloodTooLarge.
func NewFloodFill(b *Boundary, maxCells int64) (*FloodFill, error) {
	grown := b.Bounds().Expand(1)
	cells, err := grown.Cells()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFloodTooLarge, err)
	}
	if maxCells > 0 && cells > maxCells {
		return nil, fmt.Errorf("%w: %d cells exceeds limit of %d", ErrFloodTooLarge, cells, maxCells)
	}

	f := &FloodFill{
		inner:    b.Bounds(),
		grown:    grown,
		width:    grown.Width(),
		exterior: make([]bool, cells),
	}
	f.flood(b, grown.Min)
	return f, nil
}

// flood marks every non-outline cell reachable from start.
func (f *FloodFill) flood(b *Boundary, start geometry.Coordinate) {
	stack := []geometry.Coordinate{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.grown.Contains(p) {
			continue
		}
		i := f.index(p)
		if f.exterior[i] || b.OnOutline(p) {
			continue
		}
		f.exterior[i] = true

		for _, d := range geometry.Neighbours4 {
			stack = append(stack, p.Add(d))
		}
	}
}

func (f *FloodFill) index(c geometry.Coordinate) int {
	return (c.Y-f.grown.Min.Y)*f.width + (c.X - f.grown.Min.X)
}

// Contains reports whether c is inside the boundary: within the original
// bounding box and never reached by the exterior flood.
func (f *FloodFill) Contains(c geometry.Coordinate) bool {
	if !f.inner.Contains(c) {
		return false
	}
	return !f.exterior[f.index(c)]
}

// Grown returns the flooded box.
func (f *FloodFill) Grown() geometry.Bounds {
	return f.grown
}
