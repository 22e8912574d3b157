package floorplan

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ironsheep/floor-tools-mcp/internal/boundary"
	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

// Floorplan is a parsed and validated boundary path.
type Floorplan struct {
	// Name identifies the plan: the file path, or a caller-chosen label for
	// inline data.
	Name string

	// Boundary is the built boundary with its derived cell sets.
	Boundary *boundary.Boundary
}

// Parse reads a coordinate list from r and builds its boundary.
func Parse(name string, r io.Reader) (*Floorplan, error) {
	points, err := geometry.ParsePath(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	b, err := boundary.Build(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", name, err)
	}
	return &Floorplan{Name: name, Boundary: b}, nil
}

// FromText is Parse over an in-memory coordinate list.
func FromText(name, text string) (*Floorplan, error) {
	points, err := geometry.ParsePathString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	b, err := boundary.Build(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", name, err)
	}
	return &Floorplan{Name: name, Boundary: b}, nil
}

// Cache provides thread-safe caching of loaded floor plans keyed by path.
//
// Once a file is loaded, subsequent Load calls for the same path return the
// cached plan without disk I/O or rebuilding the boundary. Plans stay cached
// until Evict or Clear is called.
type Cache struct {
	mu    sync.RWMutex
	plans map[string]*Floorplan
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		plans: make(map[string]*Floorplan),
	}
}

// Load returns the cached plan for path, reading and building it on first use.
//
// The exact path string is the cache key; a relative and an absolute path to
// the same file are cached separately.
func (c *Cache) Load(path string) (*Floorplan, error) {
	c.mu.RLock()
	if plan, ok := c.plans[path]; ok {
		c.mu.RUnlock()
		return plan, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open floor plan: %w", err)
	}
	defer f.Close()

	plan, err := Parse(path, f)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.plans[path] = plan
	c.mu.Unlock()

	return plan, nil
}

// Len returns the number of cached plans.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.plans)
}

// Clear removes every plan from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.plans = make(map[string]*Floorplan)
	c.mu.Unlock()
}

// Evict removes the plan cached under path, if any.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.plans, path)
	c.mu.Unlock()
}
