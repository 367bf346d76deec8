package gpu_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/paiml/trueno-graph/csr"
	"github.com/paiml/trueno-graph/gpu"
)

type GpuSuite struct {
	suite.Suite
}

func TestGpuSuite(t *testing.T) {
	suite.Run(t, new(GpuSuite))
}

// TestNoGpuBuildFailsGracefully exercises the CPU-only build's behavior
// (no `gpu` build tag): every entry point must report ErrGpuUnavailable
// rather than panicking or blocking.
func (s *GpuSuite) TestNoGpuBuildFailsGracefully() {
	if gpu.IsAvailable() {
		s.T().Skip("running against a real compute device; covered by the gpu-tagged suite")
	}

	_, err := gpu.NewDevice()
	require.ErrorIs(s.T(), err, gpu.ErrGpuUnavailable)

	g, err := csr.FromEdgeList([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	require.NoError(s.T(), err)

	_, err = gpu.BFS(nil, g, 0, 0)
	s.ErrorIs(err, gpu.ErrGpuUnavailable)

	_, err = gpu.PageRank(nil, g, 20, 0.85)
	s.ErrorIs(err, gpu.ErrGpuUnavailable)
}

func (s *GpuSuite) TestBfsResultAccessors() {
	r := &gpu.BfsResult{Distances: []uint32{0, 1, gpu.Unreachable}, VisitedCount: 2}

	d, ok := r.Distance(0)
	s.True(ok)
	s.Equal(uint32(0), d)

	_, ok = r.Distance(2)
	s.False(ok)

	_, ok = r.Distance(99)
	s.False(ok)

	s.True(r.IsReachable(1))
	s.False(r.IsReachable(2))
}

func (s *GpuSuite) TestPageRankResultAccessors() {
	r := &gpu.PageRankResult{Scores: []float32{0.5, 0.5}, Iterations: 20}

	score, ok := r.Score(0)
	s.True(ok)
	s.InDelta(0.5, score, 1e-9)

	_, ok = r.Score(5)
	s.False(ok)
}
