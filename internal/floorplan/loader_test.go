package floorplan

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ironsheep/floor-tools-mcp/internal/boundary"
	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
)

const steppedPlan = "7,1\n11,1\n11,7\n9,7\n9,5\n2,5\n2,3\n7,3\n"

// createPlanFile writes text to a temporary floor plan file and returns its path.
func createPlanFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write plan: %v", err)
	}
	return path
}

func TestNewCache(t *testing.T) {
	cache := NewCache()
	if cache == nil {
		t.Fatal("NewCache returned nil")
	}
	if cache.plans == nil {
		t.Fatal("NewCache did not initialize plans map")
	}
	if cache.Len() != 0 {
		t.Errorf("new cache should be empty, got %d", cache.Len())
	}
}

func TestCache_Load(t *testing.T) {
	cache := NewCache()
	path := createPlanFile(t, steppedPlan)

	plan, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if plan.Name != path {
		t.Errorf("Name: got %q, want %q", plan.Name, path)
	}
	if !plan.Boundary.Contains(geometry.C(8, 2)) {
		t.Error("(8,2) should be inside the loaded plan")
	}

	again, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if again != plan {
		t.Error("second Load should return the cached plan")
	}

	// Cached plans survive the file going away
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load after remove failed: %v", err)
	}
}

func TestCache_LoadErrors(t *testing.T) {
	cache := NewCache()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.txt"), os.ErrNotExist},
		{"too few points", createPlanFile(t, "0,0\n5,0\n5,5\n"), boundary.ErrTooFewPoints},
		{"diagonal", createPlanFile(t, "0,0\n5,0\n5,5\n1,4\n"), boundary.ErrDiagonalEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cache.Load(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("malformed line", func(t *testing.T) {
		_, err := cache.Load(createPlanFile(t, "0,0\nnope\n"))
		var perr *geometry.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected *geometry.ParseError, got %v", err)
		}
		if perr.Line != 2 {
			t.Errorf("Line: got %d, want 2", perr.Line)
		}
	})

	if cache.Len() != 0 {
		t.Errorf("failed loads should not be cached, got %d entries", cache.Len())
	}
}

func TestCache_EvictClear(t *testing.T) {
	cache := NewCache()
	p1 := createPlanFile(t, steppedPlan)
	p2 := createPlanFile(t, "0,0\n5,0\n5,5\n0,5\n")

	for _, p := range []string{p1, p2} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load(%s) failed: %v", p, err)
		}
	}
	if cache.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", cache.Len())
	}

	cache.Evict(p1)
	if cache.Len() != 1 {
		t.Errorf("Len after Evict: got %d, want 1", cache.Len())
	}
	cache.Evict("never-loaded")

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", cache.Len())
	}
}

func TestCache_ConcurrentLoad(t *testing.T) {
	cache := NewCache()
	path := createPlanFile(t, steppedPlan)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plan, err := cache.Load(path)
			if err != nil {
				errs <- err
				return
			}
			plan.Boundary.Contains(geometry.C(8, 2))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}

func TestFromText(t *testing.T) {
	plan, err := FromText("inline", steppedPlan)
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	if plan.Name != "inline" {
		t.Errorf("Name: got %q", plan.Name)
	}

	if _, err := FromText("bad", "1,1\n2,2\n3,3\n4,4\n"); !errors.Is(err, boundary.ErrDiagonalEdge) {
		t.Errorf("expected ErrDiagonalEdge, got %v", err)
	}
}

func TestLoadInfo(t *testing.T) {
	cache := NewCache()
	path := createPlanFile(t, steppedPlan)

	info, err := LoadInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}

	if info.Vertices != 8 {
		t.Errorf("Vertices: got %d, want 8", info.Vertices)
	}
	if info.OutlineCells != 30 {
		t.Errorf("OutlineCells: got %d, want 30", info.OutlineCells)
	}
	if info.Width != 10 || info.Height != 7 {
		t.Errorf("size: got %dx%d, want 10x7", info.Width, info.Height)
	}
	if info.FileSizeBytes != int64(len(steppedPlan)) {
		t.Errorf("FileSizeBytes: got %d, want %d", info.FileSizeBytes, len(steppedPlan))
	}
}
