package algo

import (
	"fmt"

	"github.com/paiml/trueno-graph/csr"
)

// Unreachable is the sentinel distance reported for nodes BFS never reaches,
// or reaches only beyond the requested depth cap.
const Unreachable = ^uint32(0)

// BFSOptions configures a BFS or FindCallers run. The zero value runs an
// unbounded traversal with no hooks.
type BFSOptions struct {
	maxDepth  uint32
	onVisit   func(node uint32, depth uint32)
	onEnqueue func(node uint32, depth uint32)
}

// BFSOption mutates a BFSOptions in place.
type BFSOption func(*BFSOptions)

// WithMaxDepth caps traversal to nodes within depth hops of the source; 0
// (the default) means unbounded, capped only by the graph's own diameter.
func WithMaxDepth(depth uint32) BFSOption {
	return func(o *BFSOptions) { o.maxDepth = depth }
}

// OnVisit registers a hook called once per node the first time it is
// reached, with its final distance from the source.
func OnVisit(fn func(node uint32, depth uint32)) BFSOption {
	return func(o *BFSOptions) { o.onVisit = fn }
}

// OnEnqueue registers a hook called when a node is appended to the next
// frontier, before that frontier is processed.
func OnEnqueue(fn func(node uint32, depth uint32)) BFSOption {
	return func(o *BFSOptions) { o.onEnqueue = fn }
}

/*
BFS — level-synchronous, frontier-based breadth-first search.

Steps:
 1. dist[s] = 0, all others Unreachable; frontier = {s}.
 2. While frontier is non-empty and level < maxDepth:
    2.1 for each u in frontier, for each v in outgoing(u): if dist[v] is
        still Unreachable, set dist[v] = level+1, invoke OnEnqueue, and
        append v to the next frontier.
    2.2 swap frontiers, increment level.
 3. Return dist.

Frontier expansion walks each node's neighbors in CSR order, but the
resulting distances do not depend on that order: a node's distance is
fixed the first time any frontier reaches it, and BFS visits nodes in
non-decreasing distance order by construction.

Complexity: O(N+E). A zero WithMaxDepth means "unbounded."
*/
func BFS(g *csr.Graph, source uint32, opts ...BFSOption) ([]uint32, error) {
	return frontierSearch(g, source, opts, (*csr.Graph).Outgoing)
}

// FindCallers is BFS's reverse-CSR twin: it walks incoming edges instead of
// outgoing ones, returning the set of ancestors reachable from target
// within the configured depth cap. The target itself is never part of its
// own ancestor set, even though frontierSearch's internal distance vector
// necessarily records dist[target]=0.
func FindCallers(g *csr.Graph, target uint32, opts ...BFSOption) ([]uint32, error) {
	dist, err := frontierSearch(g, target, opts, (*csr.Graph).Incoming)
	if err != nil {
		return nil, err
	}
	var ancestors []uint32
	for v, d := range dist {
		if uint32(v) == target || d == Unreachable {
			continue
		}
		ancestors = append(ancestors, uint32(v))
	}
	return ancestors, nil
}

// neighborFunc abstracts over csr.Graph's Outgoing and Incoming, letting
// frontierSearch implement both BFS and FindCallers identically.
type neighborFunc func(*csr.Graph, uint32) ([]uint32, error)

func frontierSearch(g *csr.Graph, source uint32, rawOpts []BFSOption, neighbors neighborFunc) ([]uint32, error) {
	n := g.NodeCount()
	if uint64(source) >= n {
		return nil, fmt.Errorf("%w: source %d", ErrNodeOutOfRange, source)
	}

	var o BFSOptions
	for _, opt := range rawOpts {
		opt(&o)
	}

	dist := make([]uint32, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0
	if o.onVisit != nil {
		o.onVisit(source, 0)
	}

	effectiveMax := uint32(n)
	if o.maxDepth > 0 && o.maxDepth < effectiveMax {
		effectiveMax = o.maxDepth
	}

	frontier := []uint32{source}
	for level := uint32(0); len(frontier) > 0 && level < effectiveMax; level++ {
		var next []uint32
		for _, u := range frontier {
			nbrs, err := neighbors(g, u)
			if err != nil {
				return nil, err
			}
			for _, v := range nbrs {
				if dist[v] == Unreachable {
					d := level + 1
					dist[v] = d
					if o.onVisit != nil {
						o.onVisit(v, d)
					}
					if o.onEnqueue != nil {
						o.onEnqueue(v, d)
					}
					next = append(next, v)
				}
			}
		}
		frontier = next
	}

	return dist, nil
}
