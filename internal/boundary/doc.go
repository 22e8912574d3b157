// Package boundary builds a closed rectilinear boundary from an ordered path of
// corner points and answers point containment queries against it.
//
// # Construction
//
// Build walks every edge of the cyclic path (the last point connects back to
// the first) and derives two cell sets:
//
//   - Outline: every cell on any edge, both endpoints included
//   - Vertical walls: cells on vertical edges over the half-open range
//     [min(y), max(y)), so a corner joining a vertical and a horizontal edge
//     is counted once
//
// Corners must lie within ±geometry.MaxCoordinate on both axes; Build rejects
// anything further out with ErrCoordinateRange.
//
// Both sets are computed eagerly and never change afterwards. A *Boundary is
// therefore safe for concurrent use by multiple goroutines.
//
// # Containment
//
// Two classifiers implement Oracle:
//
//  1. Parity (Boundary.Contains): a cell is inside if it is on the outline,
//     or if a ray cast toward +X crosses an odd number of wall cells. Walls are
//     indexed by row, so a query costs one map lookup and a binary search.
//  2. Flood fill (FloodFill.Contains): the exterior is flooded from a corner of
//     the bounding box grown by one cell. Anything inside the original box that
//     the flood never reaches is inside. Construction costs O(box area); use it
//     to validate the parity classifier, not for production queries.
//
// CrossCheck runs both over the grown bounding box and reports any cell on
// which they disagree.
//
// Cells on the outline are always inside.
package boundary
