package equiv

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/paiml/trueno-graph/algo"
	"github.com/paiml/trueno-graph/csr"
	"github.com/paiml/trueno-graph/gpu"
)

// PageRankMaxAbsError is the maximum per-node absolute error tolerated
// between CPU and GPU PageRank scores, for graphs with N < 1e5, after the
// same iteration count and damping factor. Float32 accumulation on the
// GPU side and float64 accumulation on the CPU side diverge slightly even
// on identical inputs, so exact equality isn't the right bar here.
const PageRankMaxAbsError = 1e-4

// BfsMismatch describes one node where CPU and GPU BFS disagree.
type BfsMismatch struct {
	Node    uint32
	CpuDist uint32
	GpuDist uint32
}

// CheckBFS runs BFS on both backends from the same source and returns
// every node where the two distance vectors disagree. An empty result
// means the backends are equivalent for this input; a non-nil error means
// one of the backends itself failed (including GpuUnavailable, which
// callers should treat as "equivalence not checked," not "check failed").
func CheckBFS(g *csr.Graph, device *gpu.Device, source uint32, maxDepth uint32) ([]BfsMismatch, error) {
	var opts []algo.BFSOption
	if maxDepth > 0 {
		opts = append(opts, algo.WithMaxDepth(maxDepth))
	}
	cpuDist, err := algo.BFS(g, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("cpu bfs: %w", err)
	}

	gpuResult, err := gpu.BFS(device, g, source, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("gpu bfs: %w", err)
	}

	var mismatches []BfsMismatch
	for v := range cpuDist {
		cpu := cpuDist[v]
		gpuDist := gpu.Unreachable
		if v < len(gpuResult.Distances) {
			gpuDist = gpuResult.Distances[v]
		}
		if cpu != gpuDist {
			mismatches = append(mismatches, BfsMismatch{
				Node:    uint32(v),
				CpuDist: cpu,
				GpuDist: gpuDist,
			})
		}
	}
	return mismatches, nil
}

// PageRankMismatch describes one node where CPU and GPU PageRank disagree
// beyond the tolerated bound.
type PageRankMismatch struct {
	Node    uint32
	CpuRank float64
	GpuRank float64
	AbsDiff float64
}

// CheckPageRank runs PageRank on both backends with the same iteration
// count and damping, and returns every node whose scores disagree by more
// than PageRankMaxAbsError.
func CheckPageRank(g *csr.Graph, device *gpu.Device, maxIterations int, damping float64) ([]PageRankMismatch, error) {
	// A zero tolerance disables the CPU's early stop, so it runs exactly
	// maxIterations iterations, as the GPU loop does.
	cpuScores, err := algo.PageRank(g, algo.WithMaxIterations(maxIterations), algo.WithDamping(damping), algo.WithTolerance(0))
	if err != nil {
		return nil, fmt.Errorf("cpu pagerank: %w", err)
	}

	gpuResult, err := gpu.PageRank(device, g, maxIterations, damping)
	if err != nil {
		return nil, fmt.Errorf("gpu pagerank: %w", err)
	}

	var mismatches []PageRankMismatch
	for v, cpu := range cpuScores {
		var gpuScore float64
		if v < len(gpuResult.Scores) {
			gpuScore = float64(gpuResult.Scores[v])
		}
		if !scalar.EqualWithinAbs(cpu, gpuScore, PageRankMaxAbsError) {
			mismatches = append(mismatches, PageRankMismatch{
				Node:    uint32(v),
				CpuRank: cpu,
				GpuRank: gpuScore,
				AbsDiff: absDiff(cpu, gpuScore),
			})
		}
	}
	return mismatches, nil
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
