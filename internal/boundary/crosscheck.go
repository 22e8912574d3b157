package boundary

import "github.com/ironsheep/floor-tools-mcp/internal/geometry"

// maxMismatchSamples caps how many disagreeing cells a CrossCheckResult lists.
const maxMismatchSamples = 10

// CrossCheckResult summarises a comparison between two oracles.
type CrossCheckResult struct {
	// Cells is the number of cells compared.
	Cells int `json:"cells"`

	// Inside is the number of cells the primary oracle classified as inside.
	Inside int `json:"inside"`

	// Mismatches is the number of cells on which the oracles disagree.
	Mismatches int `json:"mismatches"`

	// Samples lists up to ten disagreeing cells in row-major order.
	Samples []geometry.Coordinate `json:"samples,omitempty"`
}

// Agree reports whether no disagreement was found.
func (r CrossCheckResult) Agree() bool {
	return r.Mismatches == 0
}

// CrossCheck compares primary and reference over every cell of box.
func CrossCheck(primary, reference Oracle, box geometry.Bounds) CrossCheckResult {
	var res CrossCheckResult
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			c := geometry.Coordinate{X: x, Y: y}
			res.Cells++

			in := primary.Contains(c)
			if in {
				res.Inside++
			}
			if in != reference.Contains(c) {
				res.Mismatches++
				if len(res.Samples) < maxMismatchSamples {
					res.Samples = append(res.Samples, c)
				}
			}
		}
	}
	return res
}

// CrossCheckFlood builds a FloodFill for b and compares it to the parity
// classifier over the grown bounding box.
func CrossCheckFlood(b *Boundary, maxCells int64) (CrossCheckResult, error) {
	ff, err := NewFloodFill(b, maxCells)
	if err != nil {
		return CrossCheckResult{}, err
	}
	return CrossCheck(b, ff, ff.Grown()), nil
}
