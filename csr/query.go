package csr

// Outgoing returns the destinations of v's outgoing edges, in insertion
// order. The returned slice aliases the graph's backing array and must not
// be mutated. Complexity: O(1).
func (g *Graph) Outgoing(v uint32) ([]uint32, error) {
	if uint64(v) >= g.numNodes {
		return nil, ErrNodeOutOfRange
	}
	return g.colIndices[g.rowOffsets[v]:g.rowOffsets[v+1]], nil
}

// Incoming is Outgoing's reverse-CSR twin: the sources of v's incoming
// edges, in insertion order. Complexity: O(1).
func (g *Graph) Incoming(v uint32) ([]uint32, error) {
	if uint64(v) >= g.numNodes {
		return nil, ErrNodeOutOfRange
	}
	return g.revColIndices[g.revRowOffsets[v]:g.revRowOffsets[v+1]], nil
}

// OutgoingWeights returns the weights parallel to Outgoing(v).
func (g *Graph) OutgoingWeights(v uint32) ([]float32, error) {
	if uint64(v) >= g.numNodes {
		return nil, ErrNodeOutOfRange
	}
	return g.edgeWeights[g.rowOffsets[v]:g.rowOffsets[v+1]], nil
}

// IncomingWeights returns the weights parallel to Incoming(v).
func (g *Graph) IncomingWeights(v uint32) ([]float32, error) {
	if uint64(v) >= g.numNodes {
		return nil, ErrNodeOutOfRange
	}
	return g.revEdgeWeights[g.revRowOffsets[v]:g.revRowOffsets[v+1]], nil
}

// OutDegree returns len(Outgoing(v)) without building a slice. Complexity: O(1).
func (g *Graph) OutDegree(v uint32) (uint32, error) {
	if uint64(v) >= g.numNodes {
		return 0, ErrNodeOutOfRange
	}
	return g.rowOffsets[v+1] - g.rowOffsets[v], nil
}

// InDegree is OutDegree's reverse-CSR twin.
func (g *Graph) InDegree(v uint32) (uint32, error) {
	if uint64(v) >= g.numNodes {
		return 0, ErrNodeOutOfRange
	}
	return g.revRowOffsets[v+1] - g.revRowOffsets[v], nil
}
