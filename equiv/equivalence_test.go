package equiv_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/paiml/trueno-graph/csr"
	"github.com/paiml/trueno-graph/equiv"
	"github.com/paiml/trueno-graph/gpu"
)

type EquivSuite struct {
	suite.Suite
}

func TestEquivSuite(t *testing.T) {
	suite.Run(t, new(EquivSuite))
}

func (s *EquivSuite) SetupTest() {
	if !gpu.IsAvailable() {
		s.T().Skip("no compute device available; equivalence checks require a GPU backend")
	}
}

func (s *EquivSuite) TestBFSEquivalenceOnChain() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})
	require.NoError(s.T(), err)

	device, err := gpu.NewDevice()
	require.NoError(s.T(), err)
	defer device.Close()

	mismatches, err := equiv.CheckBFS(g, device, 0, 0)
	require.NoError(s.T(), err)
	s.Empty(mismatches)
}

func (s *EquivSuite) TestBFSEquivalenceWithDepthCap() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	device, err := gpu.NewDevice()
	require.NoError(s.T(), err)
	defer device.Close()

	mismatches, err := equiv.CheckBFS(g, device, 0, 1)
	require.NoError(s.T(), err)
	s.Empty(mismatches)
}

func (s *EquivSuite) TestPageRankEquivalenceOnDiamond() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	device, err := gpu.NewDevice()
	require.NoError(s.T(), err)
	defer device.Close()

	mismatches, err := equiv.CheckPageRank(g, device, 20, 0.85)
	require.NoError(s.T(), err)
	s.Empty(mismatches)
}

// TestReportsGpuUnavailable documents the CPU-only-build behavior without
// requiring SetupTest's device, since it expects the error itself.
func TestReportsGpuUnavailable(t *testing.T) {
	if gpu.IsAvailable() {
		t.Skip("running against a real compute device")
	}
	g, err := csr.FromEdgeList([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	require.NoError(t, err)

	_, err = equiv.CheckBFS(g, nil, 0, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, gpu.ErrGpuUnavailable))
}
