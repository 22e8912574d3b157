// Package search finds the largest axis-aligned rectangle whose opposite
// corners are drawn from a set of candidate points.
//
// LargestArea maximises area over every distinct unordered pair with no
// further constraint. LargestAreaConstrained additionally requires that every
// cell on the rectangle's perimeter is inside a region, as decided by a
// boundary.Oracle.
//
// # Ordering
//
// Candidates are de-duplicated and pairs are formed with the first corner
// ordered before the second (X, then Y), so (P, Q) and (Q, P) are never both
// considered. Pairs are ranked by area, largest first, with ties broken by
// corner order. The constrained search walks that ranking and stops at the
// first valid pair; no later pair can have a larger area.
//
// # Concurrency
//
// With Options.Workers > 1 the ranking is processed in windows, each split
// across workers. The lowest-ranked valid pair of a window wins, so the result
// is identical to the sequential search.
//
// # Errors
//
// ErrNotFound is the normal "no answer" outcome: fewer than two distinct
// candidates, or no pair passes the containment check. geometry.ErrOverflow is
// returned when a candidate area does not fit in an int64.
package search
