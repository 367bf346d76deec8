package csr

// Builder buffers edges in memory and freezes them into a Graph with a
// single FromEdgeList call, for callers who want AddEdge-like incremental
// ergonomics without paying its O(E)-per-call shifting cost. A Builder is
// not safe for concurrent use.
type Builder struct {
	edges  []Edge
	labels map[uint32]string
}

// NewBuilder returns an empty Builder, optionally pre-sizing its edge
// buffer when the caller knows roughly how many edges it will add.
func NewBuilder(capacityHint int) *Builder {
	b := &Builder{labels: make(map[uint32]string)}
	if capacityHint > 0 {
		b.edges = make([]Edge, 0, capacityHint)
	}
	return b
}

// AddEdge buffers one edge for the next Freeze call. It never fails: range
// and capacity checks happen once, at Freeze time, via FromEdgeList.
func (b *Builder) AddEdge(source, target uint32, weight float32) *Builder {
	b.edges = append(b.edges, Edge{Source: source, Target: target, Weight: weight})
	return b
}

// SetLabel buffers a node label to be replayed onto the frozen graph.
func (b *Builder) SetLabel(node uint32, name string) *Builder {
	b.labels[node] = name
	return b
}

// Freeze builds a Graph from every buffered edge via FromEdgeList, then
// replays buffered labels onto it. The Builder remains usable afterward;
// each Freeze call is an independent O(N+E) build.
func (b *Builder) Freeze() (*Graph, error) {
	g, err := FromEdgeList(b.edges)
	if err != nil {
		return nil, err
	}
	for node, name := range b.labels {
		g.SetLabel(node, name)
	}
	return g, nil
}
