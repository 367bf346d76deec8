package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/paiml/trueno-graph/algo"
	"github.com/paiml/trueno-graph/csr"
)

type LouvainSuite struct {
	suite.Suite
}

func TestLouvainSuite(t *testing.T) {
	suite.Run(t, new(LouvainSuite))
}

func (s *LouvainSuite) TestTwoSeparateTriangles() {
	// Two disjoint, densely connected triangles should end up as two
	// communities under any reasonable modularity optimizer.
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
		{Source: 3, Target: 4, Weight: 1},
		{Source: 4, Target: 5, Weight: 1},
		{Source: 5, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	result, err := algo.Louvain(g)
	require.NoError(s.T(), err)

	s.Equal(2, int(result.NumCommunities))
	s.Equal(result.Community[0], result.Community[1])
	s.Equal(result.Community[1], result.Community[2])
	s.Equal(result.Community[3], result.Community[4])
	s.Equal(result.Community[4], result.Community[5])
	s.NotEqual(result.Community[0], result.Community[3])
}

func (s *LouvainSuite) TestEmptyGraph() {
	g := csr.New()
	result, err := algo.Louvain(g)
	require.NoError(s.T(), err)
	s.Equal(uint32(0), result.NumCommunities)
}

func (s *LouvainSuite) TestSingleComponentSingleCommunity() {
	// A lone path graph with no competing structure should collapse to one
	// community: moving any node elsewhere only ever loses modularity.
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})
	require.NoError(s.T(), err)

	result, err := algo.Louvain(g)
	require.NoError(s.T(), err)
	s.Equal(result.Community[0], result.Community[1])
	s.Equal(result.Community[1], result.Community[2])
}

func (s *LouvainSuite) TestCommunityIDsAreDense() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	result, err := algo.Louvain(g)
	require.NoError(s.T(), err)

	seen := map[uint32]bool{}
	for _, c := range result.Community {
		s.Less(c, result.NumCommunities)
		seen[c] = true
	}
	s.Len(seen, int(result.NumCommunities))
}
