package algo

import (
	"github.com/paiml/trueno-graph/csr"
)

// Severity ranks a Match's impact, low to critical.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String renders a Severity the way log output and test failures expect.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// PatternKind names one of the three structural anti-patterns this package
// detects.
type PatternKind int

const (
	GodClass PatternKind = iota
	DeadCodeKind
	CircularDependency
)

func (k PatternKind) String() string {
	switch k {
	case GodClass:
		return "god_class"
	case DeadCodeKind:
		return "dead_code"
	case CircularDependency:
		return "circular_dependency"
	default:
		return "unknown"
	}
}

// Match is one reported instance of a pattern: the nodes it covers and the
// severity it was scored at.
type Match struct {
	Kind     PatternKind
	Nodes    []uint32
	Severity Severity
}

/*
GodClasses reports every node whose out-degree is at least threshold, with
severity scaling linearly from low (at the threshold) to critical (beyond
5x the threshold):

	degree <  threshold          -> not reported
	degree >= threshold          -> low
	degree >= 1.67x threshold     -> medium
	degree >= 2.33x threshold     -> high
	degree >  5x threshold        -> critical

The three-way split divides the [threshold, 3x threshold] range into equal
thirds, anchored at low (1x) and high (3x); critical reuses the fourth
level of the Severity enum for degree ratios past 5x, which the high tier
alone does not distinguish.
*/
func GodClasses(g *csr.Graph, threshold uint32) ([]Match, error) {
	if threshold == 0 {
		threshold = 1
	}
	var matches []Match
	n := g.NodeCount()
	for v := uint32(0); uint64(v) < n; v++ {
		degree, err := g.OutDegree(v)
		if err != nil {
			return nil, err
		}
		if degree < threshold {
			continue
		}
		matches = append(matches, Match{
			Kind:     GodClass,
			Nodes:    []uint32{v},
			Severity: godClassSeverity(degree, threshold),
		})
	}
	return matches, nil
}

func godClassSeverity(degree, threshold uint32) Severity {
	ratio := float64(degree) / float64(threshold)
	switch {
	case ratio > 5:
		return SeverityCritical
	case ratio >= 7.0/3.0:
		return SeverityHigh
	case ratio >= 5.0/3.0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// DeadCode reports every node with zero in-degree that has at least one
// outgoing edge — an unreferenced entry point, as opposed to an isolated
// singleton with no edges at all, which is not a code smell on its own.
func DeadCode(g *csr.Graph) ([]Match, error) {
	var matches []Match
	n := g.NodeCount()
	for v := uint32(0); uint64(v) < n; v++ {
		inDeg, err := g.InDegree(v)
		if err != nil {
			return nil, err
		}
		if inDeg != 0 {
			continue
		}
		outDeg, err := g.OutDegree(v)
		if err != nil {
			return nil, err
		}
		if outDeg == 0 {
			continue
		}
		matches = append(matches, Match{
			Kind:     DeadCodeKind,
			Nodes:    []uint32{v},
			Severity: SeverityMedium,
		})
	}
	return matches, nil
}

type dfsColor int

const (
	white dfsColor = iota
	gray
	black
)

/*
CircularDependencies runs a standard three-color DFS (white/gray/black)
over the forward CSR, reporting every simple cycle of length at most
maxLen that the DFS encounters. Revisiting a gray vertex from the current
recursion stack closes a cycle; the stack segment from that vertex to the
current one (inclusive) is the reported cycle's node set.

Iteration is in ascending node ID order, so the output is deterministic.
Each back edge reports exactly one cycle and a black vertex is never
entered again, so a later root never rediscovers a cycle; parallel edges
closing the same cycle each report it. One cycle is found per back edge,
not every simple cycle of the graph.
*/
func CircularDependencies(g *csr.Graph, maxLen int) ([]Match, error) {
	n := int(g.NodeCount())
	color := make([]dfsColor, n)
	stack := make([]uint32, 0, n)
	var matches []Match

	var visit func(v uint32) error
	visit = func(v uint32) error {
		color[v] = gray
		stack = append(stack, v)

		neighbors, err := g.Outgoing(v)
		if err != nil {
			return err
		}
		for _, u := range neighbors {
			switch color[u] {
			case white:
				if err := visit(u); err != nil {
					return err
				}
			case gray:
				cycle := extractCycle(stack, u)
				if maxLen <= 0 || len(cycle) <= maxLen {
					matches = append(matches, Match{
						Kind:     CircularDependency,
						Nodes:    cycle,
						Severity: SeverityCritical,
					})
				}
			case black:
				// Cross edge into a finished subtree: not part of a cycle
				// through the current stack.
			}
		}

		stack = stack[:len(stack)-1]
		color[v] = black
		return nil
	}

	for v := 0; v < n; v++ {
		if color[v] == white {
			if err := visit(uint32(v)); err != nil {
				return nil, err
			}
		}
	}

	return matches, nil
}

// extractCycle returns the segment of stack from closer's position to the
// top, which is the cycle closed by revisiting closer.
func extractCycle(stack []uint32, closer uint32) []uint32 {
	for i, v := range stack {
		if v == closer {
			cycle := make([]uint32, len(stack)-i)
			copy(cycle, stack[i:])
			return cycle
		}
	}
	return nil
}
