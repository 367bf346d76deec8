package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/paiml/trueno-graph/algo"
	"github.com/paiml/trueno-graph/csr"
)

type PatternSuite struct {
	suite.Suite
}

func TestPatternSuite(t *testing.T) {
	suite.Run(t, new(PatternSuite))
}

func (s *PatternSuite) TestGodClassStarGraph() {
	b := csr.NewBuilder(10)
	for leaf := uint32(1); leaf <= 10; leaf++ {
		b.AddEdge(0, leaf, 1)
	}
	g, err := b.Freeze()
	require.NoError(s.T(), err)

	matches, err := algo.GodClasses(g, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), matches, 1)
	s.Equal(uint32(0), matches[0].Nodes[0])
	s.Equal(algo.SeverityLow, matches[0].Severity)

	matches, err = algo.GodClasses(g, 5)
	require.NoError(s.T(), err)
	require.Len(s.T(), matches, 1)
	s.Equal(algo.SeverityMedium, matches[0].Severity) // 10 / 5 = 2x threshold
}

func (s *PatternSuite) TestGodClassCriticalAboveFiveTimesThreshold() {
	b := csr.NewBuilder(30)
	for leaf := uint32(1); leaf <= 30; leaf++ {
		b.AddEdge(0, leaf, 1)
	}
	g, err := b.Freeze()
	require.NoError(s.T(), err)

	matches, err := algo.GodClasses(g, 5)
	require.NoError(s.T(), err)
	require.Len(s.T(), matches, 1)
	s.Equal(algo.SeverityCritical, matches[0].Severity) // 30 / 5 = 6x threshold
}

func (s *PatternSuite) TestDeadCodeSkipsSelfLoopAndIsolated() {
	// Node 0: self-loop, not dead code. Node 1: no edges at all, isolated,
	// not dead code. Node 2: self-loop, not dead code.
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 0, Weight: 1},
		{Source: 2, Target: 2, Weight: 1},
	})
	require.NoError(s.T(), err)

	matches, err := algo.DeadCode(g)
	require.NoError(s.T(), err)
	s.Empty(matches)
}

func (s *PatternSuite) TestDeadCodeReportsUnreferencedEntryPoint() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
	})
	require.NoError(s.T(), err)

	matches, err := algo.DeadCode(g)
	require.NoError(s.T(), err)
	require.Len(s.T(), matches, 1)
	s.Equal(uint32(0), matches[0].Nodes[0])
	s.Equal(algo.SeverityMedium, matches[0].Severity)
}

func (s *PatternSuite) TestThreeCycle() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
	})
	require.NoError(s.T(), err)

	matches, err := algo.CircularDependencies(g, 3)
	require.NoError(s.T(), err)
	require.Len(s.T(), matches, 1)
	s.ElementsMatch([]uint32{0, 1, 2}, matches[0].Nodes)
	s.Equal(algo.SeverityCritical, matches[0].Severity)
}

func (s *PatternSuite) TestUnboundedMaxLenReportsLongCycle() {
	// A 5-node cycle: maxLen=3 would reject it, but the maxLen<=0 sentinel
	// means "unbounded" and must still report it.
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
		{Source: 3, Target: 4, Weight: 1},
		{Source: 4, Target: 0, Weight: 1},
	})
	require.NoError(s.T(), err)

	matches, err := algo.CircularDependencies(g, 3)
	require.NoError(s.T(), err)
	s.Empty(matches, "a bounded maxLen=3 must reject a 5-node cycle")

	matches, err = algo.CircularDependencies(g, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), matches, 1)
	s.ElementsMatch([]uint32{0, 1, 2, 3, 4}, matches[0].Nodes)
}

func (s *PatternSuite) TestAcyclicGraphNoCycles() {
	g, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})
	require.NoError(s.T(), err)

	matches, err := algo.CircularDependencies(g, 0)
	require.NoError(s.T(), err)
	s.Empty(matches)
}
