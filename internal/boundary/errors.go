package boundary

import (
	"errors"
	"fmt"

	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// Construction failures. Build wraps them in a *ConstructionError.
var (
	ErrTooFewPoints   = errors.New("boundary needs at least 4 points")
	ErrDiagonalEdge   = errors.New("edge is not axis-aligned")
	ErrDegenerateEdge = errors.New("edge has zero length")

	// ErrCoordinateRange wraps geometry.ErrOverflow, so errors.Is matches both.
	ErrCoordinateRange = fmt.Errorf("corner outside ±%d: %w", int64(geometry.MaxCoordinate), geometry.ErrOverflow)
)

// ErrFloodTooLarge is returned by NewFloodFill when the grown bounding box
// holds more cells than the caller allows.
var ErrFloodTooLarge = errors.New("bounding box too large to flood fill")

// ConstructionError describes why a path could not be turned into a Boundary.
type ConstructionError struct {
	// Edge is the index of the edge's starting point, or -1 when the error
	// is about the path as a whole.
	Edge int

	From geometry.Coordinate
	To   geometry.Coordinate

	Err error
}

func (e *ConstructionError) Error() string {
	if e.Edge < 0 {
		return fmt.Sprintf("invalid boundary: %v", e.Err)
	}
	return fmt.Sprintf("invalid boundary: edge %d (%s)->(%s): %v", e.Edge, e.From, e.To, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
