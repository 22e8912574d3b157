package floorplan

import (
	"fmt"
	"os"

	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// Info describes a loaded floor plan.
type Info struct {
	// Name is the plan's path or label.
	Name string `json:"name"`

	// Vertices is the number of corner points in the path.
	Vertices int `json:"vertices"`

	// OutlineCells is the number of distinct cells on the boundary edges.
	OutlineCells int `json:"outline_cells"`

	// WallCells is the number of distinct vertical-wall cells.
	WallCells int `json:"wall_cells"`

	// Bounds is the inclusive bounding box of the corner points.
	Bounds geometry.Bounds `json:"bounds"`

	// Width and Height are the bounding box size in cells.
	Width  int `json:"width"`
	Height int `json:"height"`

	// FileSizeBytes is the size of the source file, or 0 for inline data.
	FileSizeBytes int64 `json:"file_size_bytes,omitempty"`
}

// Describe summarises plan without touching the filesystem.
func Describe(plan *Floorplan) *Info {
	b := plan.Boundary
	bounds := b.Bounds()
	return &Info{
		Name:         plan.Name,
		Vertices:     len(b.Vertices()),
		OutlineCells: b.OutlineLen(),
		WallCells:    b.WallLen(),
		Bounds:       bounds,
		Width:        bounds.Width(),
		Height:       bounds.Height(),
	}
}

// LoadInfo loads path through cache and describes it, including the file size.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	plan, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := Describe(plan)
	info.FileSizeBytes = stat.Size()
	return info, nil
}
