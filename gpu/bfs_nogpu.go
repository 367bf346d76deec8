//go:build !gpu

package gpu

import "github.com/paiml/trueno-graph/csr"

// BFS always fails with ErrGpuUnavailable in a CPU-only build. maxDepth
// caps traversal the same way algo.WithMaxDepth does; 0 means unbounded.
func BFS(d *Device, g *csr.Graph, source uint32, maxDepth uint32) (*BfsResult, error) {
	return nil, ErrGpuUnavailable
}
