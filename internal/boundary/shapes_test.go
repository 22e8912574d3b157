package boundary

import "github.com/ironsheep/floor-tools-mcp/internal/geometry"

// testShape is a named closed path used across the package tests.
type testShape struct {
	name   string
	points []geometry.Coordinate
}

func pts(xy ...int) []geometry.Coordinate {
	out := make([]geometry.Coordinate, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geometry.C(xy[i], xy[i+1]))
	}
	return out
}

// testShapes are boundaries whose non-adjacent edges are at least two cells
// apart, so the parity and flood fill classifiers must agree everywhere.
var testShapes = []testShape{
	{"square", pts(0, 0, 5, 0, 5, 5, 0, 5)},
	{"square counter-clockwise", pts(0, 0, 0, 5, 5, 5, 5, 0)},
	{"stepped", pts(7, 1, 11, 1, 11, 7, 9, 7, 9, 5, 2, 5, 2, 3, 7, 3)},
	{"notch", pts(0, 0, 10, 0, 10, 10, 6, 10, 6, 4, 4, 4, 4, 10, 0, 10)},
	{"plus", pts(4, 0, 8, 0, 8, 4, 12, 4, 12, 8, 8, 8, 8, 12, 4, 12, 4, 8, 0, 8, 0, 4, 4, 4)},
	{"negative", pts(-6, -6, -1, -6, -1, -3, 3, -3, 3, 2, -6, 2)},
	{"comb", pts(0, 0, 14, 0, 14, 9, 11, 9, 11, 3, 9, 3, 9, 9, 6, 9, 6, 3, 4, 3, 4, 9, 0, 9)},
	{"spiral", pts(0, 0, 12, 0, 12, 12, 3, 12, 3, 4, 8, 4, 8, 8, 6, 8, 6, 10, 10, 10, 10, 2, 0, 2)},
}
