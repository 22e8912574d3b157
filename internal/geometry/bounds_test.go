package geometry

import (
	"math"
	"testing"
)

func TestBoundsOf(t *testing.T) {
	if _, ok := BoundsOf(nil); ok {
		t.Error("BoundsOf(nil) should report false")
	}

	b, ok := BoundsOf([]Coordinate{C(7, 1), C(11, 7), C(2, 3)})
	if !ok {
		t.Fatal("BoundsOf returned false")
	}
	if b.Min != C(2, 1) || b.Max != C(11, 7) {
		t.Errorf("BoundsOf: got %v", b)
	}
	if b.Width() != 10 || b.Height() != 7 {
		t.Errorf("size: got %dx%d, want 10x7", b.Width(), b.Height())
	}

	cells, err := b.Cells()
	if err != nil || cells != 70 {
		t.Errorf("Cells: got %d, %v", cells, err)
	}
}

func TestBounds_ExpandContains(t *testing.T) {
	b := RectOf(C(5, 5), C(0, 0)).Expand(1)

	tests := []struct {
		c    Coordinate
		want bool
	}{
		{C(-1, -1), true},
		{C(6, 6), true},
		{C(-2, 0), false},
		{C(0, 7), false},
		{C(3, 3), true},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v): got %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestBounds_Perimeter(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		want int
	}{
		{"single cell", RectOf(C(1, 1), C(1, 1)), 1},
		{"single row", RectOf(C(0, 0), C(4, 0)), 5},
		{"single column", RectOf(C(0, 0), C(0, 3)), 4},
		{"two by two", RectOf(C(0, 0), C(1, 1)), 4},
		{"six by six", RectOf(C(0, 0), C(5, 5)), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[Coordinate]int)
			tt.b.Perimeter(func(c Coordinate) bool {
				seen[c]++
				return true
			})
			if len(seen) != tt.want {
				t.Errorf("distinct cells: got %d, want %d", len(seen), tt.want)
			}
			for c, n := range seen {
				if n != 1 {
					t.Errorf("cell %v visited %d times", c, n)
				}
			}
		})
	}
}

func TestBounds_PerimeterStopsEarly(t *testing.T) {
	n := 0
	ok := RectOf(C(0, 0), C(9, 9)).Perimeter(func(Coordinate) bool {
		n++
		return n < 3
	})
	if ok {
		t.Error("Perimeter should report false when stopped")
	}
	if n != 3 {
		t.Errorf("visited %d cells, want 3", n)
	}
}

func TestBounds_PerimeterIntExtremes(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		want int
	}{
		{"3x3 at MaxInt corner", RectOf(C(math.MaxInt-2, math.MaxInt-2), C(math.MaxInt, math.MaxInt)), 8},
		{"row ending at MaxInt", RectOf(C(math.MaxInt-4, 0), C(math.MaxInt, 0)), 5},
		{"column ending at MaxInt", RectOf(C(0, math.MaxInt-1), C(0, math.MaxInt)), 2},
		{"2x2 at MinInt corner", RectOf(C(math.MinInt, math.MinInt), C(math.MinInt+1, math.MinInt+1)), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			tt.b.Perimeter(func(Coordinate) bool {
				n++
				return n <= tt.want
			})
			if n != tt.want {
				t.Errorf("visited %d cells, want %d", n, tt.want)
			}
		})
	}
}
