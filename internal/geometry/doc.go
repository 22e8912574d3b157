// Package geometry provides the integer grid primitives used by the floor plan engine.
//
// All coordinates are grid cells. A rectangle given by two opposite corners
// covers every cell between them inclusive, so a rectangle whose corners are
// the same cell has area 1.
//
// # Coordinate System
//
// The package follows the same convention as the input files:
//   - X increases rightward
//   - Y increases downward
//   - Coordinates may be negative
//
// # Overflow
//
// Areas are computed with checked 64-bit arithmetic. Inputs large enough to
// overflow an int64 product return ErrOverflow instead of wrapping.
package geometry
