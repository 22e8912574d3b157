package search

import (
	"context"
	"sync"

	"github.com/ironsheep/floor-tools-mcp/internal/boundary"
)

// firstValid returns the index of the first pair that passes the perimeter
// check, or -1 if none does.
func firstValid(ctx context.Context, pairs []Pair, oracle boundary.Oracle, opts Options) (int, error) {
	window := opts.Window
	if window <= 0 {
		window = DefaultWindow
	}
	workers := max(opts.Workers, 1)

	step := window * workers
	for start := 0; start < len(pairs); start += step {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		end := min(start+step, len(pairs))
		var idx int
		if workers == 1 {
			idx = scan(pairs, start, end, oracle)
		} else {
			idx = scanParallel(pairs, start, end, window, oracle)
		}
		if idx >= 0 {
			return idx, nil
		}
	}
	return -1, nil
}

// scan checks pairs[start:end] in order and returns the first valid index.
func scan(pairs []Pair, start, end int, oracle boundary.Oracle) int {
	for i := start; i < end; i++ {
		if valid(oracle, pairs[i]) {
			return i
		}
	}
	return -1
}

// scanParallel splits pairs[start:end] into shards of size shard, scans each
// on its own goroutine and returns the lowest valid index across shards.
//
// Each goroutine writes only its own slot in results, so no locking is needed.
func scanParallel(pairs []Pair, start, end, shard int, oracle boundary.Oracle) int {
	n := (end - start + shard - 1) / shard
	results := make([]int, n)

	var wg sync.WaitGroup
	for s := 0; s < n; s++ {
		lo := start + s*shard
		hi := min(lo+shard, end)
		wg.Add(1)
		go func(slot, lo, hi int) {
			defer wg.Done()
			results[slot] = scan(pairs, lo, hi, oracle)
		}(s, lo, hi)
	}
	wg.Wait()

	// Shards are in rank order, so the first hit is the lowest index.
	for _, idx := range results {
		if idx >= 0 {
			return idx
		}
	}
	return -1
}
