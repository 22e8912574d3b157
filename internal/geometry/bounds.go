package geometry

import "fmt"

// Bounds is an inclusive box of grid cells.
//
// Unlike image bounds, Max is part of the box: Bounds{Min: (0,0), Max: (0,0)}
// holds exactly one cell.
type Bounds struct {
	Min Coordinate `json:"min"`
	Max Coordinate `json:"max"`
}

// BoundsOf returns the smallest Bounds holding every point.
// The second return value is false when points is empty.
func BoundsOf(points []Coordinate) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b, true
}

// RectOf returns the Bounds spanned by two opposite corners in any order.
func RectOf(a, b Coordinate) Bounds {
	return Bounds{Min: a.Min(b), Max: a.Max(b)}
}

// Expand grows the box by n cells on every side.
func (b Bounds) Expand(n int) Bounds {
	return Bounds{
		Min: b.Min.Add(Coordinate{X: -n, Y: -n}),
		Max: b.Max.Add(Coordinate{X: n, Y: n}),
	}
}

// Contains reports whether c lies within the box.
func (b Bounds) Contains(c Coordinate) bool {
	return b.Min.X <= c.X && c.X <= b.Max.X &&
		b.Min.Y <= c.Y && c.Y <= b.Max.Y
}

// Width is the number of columns in the box.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height is the number of rows in the box.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// Cells returns the number of cells in the box, or ErrOverflow.
func (b Bounds) Cells() (int64, error) {
	return Area(b.Min, b.Max)
}

// Perimeter calls fn for every cell on the outer ring of the box, stopping
// early and returning false as soon as fn returns false. Each cell is visited
// once, so single-row and single-column boxes are handled.
//
// The box must satisfy Min <= Max on both axes. Loops never step past Max,
// so boxes touching math.MaxInt terminate.
func (b Bounds) Perimeter(fn func(Coordinate) bool) bool {
	for x := b.Min.X; ; x++ {
		if !fn(Coordinate{X: x, Y: b.Min.Y}) {
			return false
		}
		if b.Max.Y != b.Min.Y && !fn(Coordinate{X: x, Y: b.Max.Y}) {
			return false
		}
		if x == b.Max.X {
			break
		}
	}
	if b.Min.Y == b.Max.Y {
		return true
	}
	for y := b.Min.Y + 1; y < b.Max.Y; y++ {
		if !fn(Coordinate{X: b.Min.X, Y: y}) {
			return false
		}
		if b.Max.X != b.Min.X && !fn(Coordinate{X: b.Max.X, Y: y}) {
			return false
		}
	}
	return true
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%s)-(%s)", b.Min, b.Max)
}
