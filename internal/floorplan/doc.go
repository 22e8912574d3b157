// Package floorplan loads boundary paths from disk and caches the built
// boundaries for reuse across tool calls.
//
// A floor plan file holds one "x,y" corner per line, in path order. The path
// is closed implicitly from the last line back to the first.
//
// # Thread Safety
//
// Cache is safe for concurrent use. The *Floorplan values it returns are
// immutable and may be shared between goroutines.
package floorplan
