//go:build !gpu

package gpu

import "github.com/paiml/trueno-graph/csr"

// PageRank always fails with ErrGpuUnavailable in a CPU-only build.
func PageRank(d *Device, g *csr.Graph, maxIterations int, damping float64) (*PageRankResult, error) {
	return nil, ErrGpuUnavailable
}
