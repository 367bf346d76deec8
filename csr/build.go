package csr

// FromEdgeList is the batch constructor: a one-shot, two-pass
// count-then-scatter build of both CSR directions in O(N+E) with a single
// allocation per array.
//
// Pass 1 counts, per source and per target, how many edges touch each node
// (degree counting). An exclusive prefix sum over those counts gives both
// offset arrays. Pass 2 re-walks the edge list and scatters each edge into
// its forward bucket (at a per-source write cursor) and its reverse bucket
// (at a per-target write cursor), which is what keeps insertion order
// within a single source's (or target's) block — invariant 6.
//
// N is computed as 1 + max(source, target) over all edges, or 0 for an
// empty list. Complexity: O(N+E) time, one allocation per CSR array.
func FromEdgeList(edges []Edge) (*Graph, error) {
	if len(edges) == 0 {
		return New(), nil
	}

	var maxNode uint64
	for _, e := range edges {
		if uint64(e.Source) > maxNode {
			maxNode = uint64(e.Source)
		}
		if uint64(e.Target) > maxNode {
			maxNode = uint64(e.Target)
		}
	}
	numNodes := maxNode + 1
	if numNodes > maxID+1 || uint64(len(edges)) > maxID+1 {
		return nil, ErrCapacityExceeded
	}

	// Pass 1: degree counts.
	outDeg := make([]uint32, numNodes)
	inDeg := make([]uint32, numNodes)
	for _, e := range edges {
		outDeg[e.Source]++
		inDeg[e.Target]++
	}

	// Exclusive prefix sums give the offset arrays.
	rowOffsets := make([]uint32, numNodes+1)
	revRowOffsets := make([]uint32, numNodes+1)
	var cum, revCum uint32
	for v := uint64(0); v < numNodes; v++ {
		rowOffsets[v] = cum
		cum += outDeg[v]
		revRowOffsets[v] = revCum
		revCum += inDeg[v]
	}
	rowOffsets[numNodes] = cum
	revRowOffsets[numNodes] = revCum

	colIndices := make([]uint32, len(edges))
	edgeWeights := make([]float32, len(edges))
	revColIndices := make([]uint32, len(edges))
	revEdgeWeights := make([]float32, len(edges))

	// Pass 2: scatter using per-source/per-target write cursors, which
	// start at each node's offset and advance as edges land — this is what
	// preserves the original insertion order within a block.
	outCursor := make([]uint32, numNodes)
	copy(outCursor, rowOffsets[:numNodes])
	inCursor := make([]uint32, numNodes)
	copy(inCursor, revRowOffsets[:numNodes])

	for _, e := range edges {
		fwdPos := outCursor[e.Source]
		colIndices[fwdPos] = e.Target
		edgeWeights[fwdPos] = e.Weight
		outCursor[e.Source]++

		revPos := inCursor[e.Target]
		revColIndices[revPos] = e.Source
		revEdgeWeights[revPos] = e.Weight
		inCursor[e.Target]++
	}

	return &Graph{
		rowOffsets:     rowOffsets,
		colIndices:     colIndices,
		edgeWeights:    edgeWeights,
		revRowOffsets:  revRowOffsets,
		revColIndices:  revColIndices,
		revEdgeWeights: revEdgeWeights,
		labels:         make(map[uint32]string),
		numNodes:       numNodes,
		numEdges:       uint64(len(edges)),
	}, nil
}

// AddEdge performs incremental single-edge insertion. This is the slow
// path: it shifts colIndices/edgeWeights (and their reverse twins) to make
// room, an O(E) worst-case operation, and is documented as such — bulk
// loads should prefer FromEdgeList or Builder. If max(u,v) >= N, both
// offset arrays first grow to size max(u,v)+2, replicating the final
// cumulative offset so new nodes start with zero edges.
func (g *Graph) AddEdge(source, target uint32, weight float32) error {
	need := uint64(source)
	if uint64(target) > need {
		need = uint64(target)
	}
	if need+1 > maxID+1 || g.numEdges+1 > maxID+1 {
		return ErrCapacityExceeded
	}

	if need >= g.numNodes {
		g.growTo(need + 1)
	}

	insertForward(&g.rowOffsets, &g.colIndices, &g.edgeWeights, source, target, weight, g.numNodes)
	insertForward(&g.revRowOffsets, &g.revColIndices, &g.revEdgeWeights, target, source, weight, g.numNodes)

	g.numEdges++
	return nil
}

// growTo expands both offset arrays to newSize+1 entries (newSize nodes),
// replicating each array's final cumulative value so the new nodes start
// with zero edges.
func (g *Graph) growTo(newSize uint64) {
	lastFwd := g.rowOffsets[len(g.rowOffsets)-1]
	for v := g.numNodes; v < newSize; v++ {
		g.rowOffsets = append(g.rowOffsets, lastFwd)
	}
	lastRev := g.revRowOffsets[len(g.revRowOffsets)-1]
	for v := g.numNodes; v < newSize; v++ {
		g.revRowOffsets = append(g.revRowOffsets, lastRev)
	}
	g.numNodes = newSize
}

// insertForward inserts (from, to, weight) into one direction's arrays:
// it opens a slot at the end of from's block in colIndices/weights, then
// bumps every offset after from by one.
func insertForward(rowOffsets *[]uint32, colIndices *[]uint32, weights *[]float32, from, to uint32, weight float32, numNodes uint64) {
	ro := *rowOffsets
	end := int(ro[from+1])

	*colIndices = insertUint32At(*colIndices, end, to)
	*weights = insertFloat32At(*weights, end, weight)

	for v := from + 1; v <= uint32(numNodes); v++ {
		ro[v]++
	}
}

// insertUint32At inserts v at index idx, shifting later elements right.
func insertUint32At(s []uint32, idx int, v uint32) []uint32 {
	s = append(s, 0)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}

// insertFloat32At is insertUint32At's twin for edge weights.
func insertFloat32At(s []float32, idx int, v float32) []float32 {
	s = append(s, 0)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}
