package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/paiml/trueno-graph/algo"
	"github.com/paiml/trueno-graph/csr"
)

type BFSSuite struct {
	suite.Suite
}

func TestBFSSuite(t *testing.T) {
	suite.Run(t, new(BFSSuite))
}

func (s *BFSSuite) TestThreeNodeChain() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})
	require.NoError(s.T(), err)

	dist, err := algo.BFS(g, 0)
	require.NoError(s.T(), err)
	s.Equal([]uint32{0, 1, 2}, dist)

	callers, err := algo.FindCallers(g, 2, algo.WithMaxDepth(10))
	require.NoError(s.T(), err)
	s.Equal([]uint32{0, 1}, callers) // ancestors of 2, excluding 2 itself
}

func (s *BFSSuite) TestDiamond() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	dist, err := algo.BFS(g, 0)
	require.NoError(s.T(), err)
	s.Equal([]uint32{0, 1, 1, 2}, dist)
}

func (s *BFSSuite) TestUnreachable() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.AddEdge(2, 2, 1)) // disconnected node 2

	dist, err := algo.BFS(g, 0)
	require.NoError(s.T(), err)
	s.Equal(algo.Unreachable, dist[2])
}

func (s *BFSSuite) TestDepthCap() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	dist, err := algo.BFS(g, 0, algo.WithMaxDepth(1))
	require.NoError(s.T(), err)
	s.Equal(uint32(0), dist[0])
	s.Equal(uint32(1), dist[1])
	s.Equal(algo.Unreachable, dist[2])
	s.Equal(algo.Unreachable, dist[3])
}

func (s *BFSSuite) TestFindCallersExcludesTargetAndUnreachable() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.AddEdge(3, 3, 1)) // node 3: disconnected from 2

	callers, err := algo.FindCallers(g, 2)
	require.NoError(s.T(), err)
	s.Equal([]uint32{0, 1}, callers) // never includes 2 (the target) or 3 (unreachable)

	capped, err := algo.FindCallers(g, 2, algo.WithMaxDepth(1))
	require.NoError(s.T(), err)
	s.Equal([]uint32{1}, capped)
}

func (s *BFSSuite) TestSourceOutOfRange() {
	g, err := csr.FromEdgeList([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	require.NoError(s.T(), err)

	_, err = algo.BFS(g, 9)
	s.ErrorIs(err, algo.ErrNodeOutOfRange)
}

func (s *BFSSuite) TestHooksFireInVisitOrder() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
	})
	require.NoError(s.T(), err)

	var visited []uint32
	var enqueued []uint32
	_, err = algo.BFS(g, 0,
		algo.OnVisit(func(node uint32, depth uint32) { visited = append(visited, node) }),
		algo.OnEnqueue(func(node uint32, depth uint32) { enqueued = append(enqueued, node) }),
	)
	require.NoError(s.T(), err)

	s.Equal([]uint32{0, 1, 2}, visited)
	s.Equal([]uint32{1, 2}, enqueued) // the source is never "enqueued", only visited
}
