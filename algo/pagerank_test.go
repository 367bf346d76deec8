package algo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"

	"github.com/paiml/trueno-graph/algo"
	"github.com/paiml/trueno-graph/csr"
)

type PageRankSuite struct {
	suite.Suite
}

func TestPageRankSuite(t *testing.T) {
	suite.Run(t, new(PageRankSuite))
}

func (s *PageRankSuite) TestNormalization() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	pr, err := algo.PageRank(g)
	require.NoError(s.T(), err)

	sum := floats.Sum(pr)
	s.Less(math.Abs(sum-1), 1e-3)
}

func (s *PageRankSuite) TestDiamondRanking() {
	// 0->1, 0->2, 1->3, 2->3: 3 has two inbound contributors, so it should
	// rank strictly above 1 and 2, which should be roughly tied above 0.
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	pr, err := algo.PageRank(g, algo.WithMaxIterations(20), algo.WithDamping(0.85))
	require.NoError(s.T(), err)

	s.Greater(pr[3], pr[1])
	s.InDelta(pr[1], pr[2], 1e-9)
	s.Greater(pr[1], pr[0])
}

func (s *PageRankSuite) TestMonotoneToInfluence() {
	// x has two incoming edges from distinct sources, y has one; equal
	// contribution weight per source, so pr[x] >= pr[y].
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1}, // -> x = node 1
		{Source: 2, Target: 1, Weight: 1}, // -> x = node 1
		{Source: 0, Target: 3, Weight: 1}, // -> y = node 3
	})
	require.NoError(s.T(), err)

	pr, err := algo.PageRank(g)
	require.NoError(s.T(), err)

	s.GreaterOrEqual(pr[1], pr[3])
}

func (s *PageRankSuite) TestEmptyGraph() {
	g := csr.New()
	pr, err := algo.PageRank(g)
	require.NoError(s.T(), err)
	s.Nil(pr)
}
