package geometry

import "fmt"

// Coordinate is a single grid cell.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MaxCoordinate bounds the absolute value of each component of a coordinate
// accepted as a boundary corner. Within it, widths, areas and a one-cell
// margin never overflow.
const MaxCoordinate = 1 << 40

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum of c and d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Min returns the component-wise minimum of c and d.
func (c Coordinate) Min(d Coordinate) Coordinate {
	return Coordinate{X: min(c.X, d.X), Y: min(c.Y, d.Y)}
}

// Max returns the component-wise maximum of c and d.
func (c Coordinate) Max(d Coordinate) Coordinate {
	return Coordinate{X: max(c.X, d.X), Y: max(c.Y, d.Y)}
}

// Less orders coordinates by X, then by Y.
func (c Coordinate) Less(d Coordinate) bool {
	if c.X != d.X {
		return c.X < d.X
	}
	return c.Y < d.Y
}

// Compare returns -1, 0 or 1 following the Less ordering.
func (c Coordinate) Compare(d Coordinate) int {
	switch {
	case c == d:
		return 0
	case c.Less(d):
		return -1
	default:
		return 1
	}
}

// InRange reports whether both components lie within ±MaxCoordinate.
func (c Coordinate) InRange() bool {
	x, y := int64(c.X), int64(c.Y)
	return -MaxCoordinate <= x && x <= MaxCoordinate &&
		-MaxCoordinate <= y && y <= MaxCoordinate
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Directions for 4-connected neighbours.
var (
	Up    = Coordinate{X: 0, Y: -1}
	Down  = Coordinate{X: 0, Y: 1}
	Left  = Coordinate{X: -1, Y: 0}
	Right = Coordinate{X: 1, Y: 0}
)

// Neighbours4 lists the 4-connected offsets in a fixed order.
var Neighbours4 = [4]Coordinate{Up, Right, Down, Left}

// Dedupe returns the distinct coordinates of points in first-seen order.
func Dedupe(points []Coordinate) []Coordinate {
	seen := make(map[Coordinate]struct{}, len(points))
	out := make([]Coordinate, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Segment calls fn for every cell on the axis-aligned segment from a to b,
// both ends included. It returns false without calling fn when the segment
// is diagonal. The walk stops at the far end without stepping past it, so
// segments ending at math.MaxInt terminate.
func Segment(a, b Coordinate, fn func(Coordinate)) bool {
	switch {
	case a.X == b.X:
		lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
		for y := lo; ; y++ {
			fn(Coordinate{X: a.X, Y: y})
			if y == hi {
				break
			}
		}
	case a.Y == b.Y:
		lo, hi := min(a.X, b.X), max(a.X, b.X)
		for x := lo; ; x++ {
			fn(Coordinate{X: x, Y: a.Y})
			if x == hi {
				break
			}
		}
	default:
		return false
	}
	return true
}
