package csr

// Edge is an ordered (source, target, weight) triple as accepted by
// FromEdgeList and AddEdge. Multi-edges (repeated source/target pairs) and
// self-loops are both permitted and preserved as distinct entries.
type Edge struct {
	Source uint32
	Target uint32
	Weight float32
}

// Graph is a bidirectional Compressed Sparse Row adjacency store.
//
// Invariants (hold after every public operation):
//  1. len(rowOffsets) == len(revRowOffsets) == N+1.
//  2. Both offset slices are non-decreasing, start at 0, end at E.
//  3. len(colIndices) == len(edgeWeights) == len(revColIndices) == len(revEdgeWeights) == E.
//  4. Every entry in colIndices/revColIndices is < N.
//  5. The forward and reverse edge multisets are transposes of each other.
//  6. Within one source's forward block, edges keep insertion order (same
//     for one target's reverse block).
type Graph struct {
	// Forward CSR.
	rowOffsets  []uint32
	colIndices  []uint32
	edgeWeights []float32

	// Reverse CSR — transpose invariant: for every forward (u,v,w) there is
	// exactly one reverse entry (v,u,w) inside rev_col_indices[v's block].
	revRowOffsets  []uint32
	revColIndices  []uint32
	revEdgeWeights []float32

	// labels is a partial function from node ID to a human-readable name.
	labels map[uint32]string

	numNodes uint64
	numEdges uint64
}

// New returns an empty graph: N=E=0, both offset slices equal to [0].
func New() *Graph {
	return &Graph{
		rowOffsets:    []uint32{0},
		revRowOffsets: []uint32{0},
		labels:        make(map[uint32]string),
	}
}

// NodeCount returns N, the number of dense node slots currently allocated.
func (g *Graph) NodeCount() uint64 { return g.numNodes }

// EdgeCount returns E, the number of edges currently stored.
func (g *Graph) EdgeCount() uint64 { return g.numEdges }

// SetLabel attaches a human-readable name to a node. Label assignment does
// not touch the CSR invariants and never fails; labeling an ID past the
// current node count stores the name as well, and Label returns it right
// away without the graph growing.
func (g *Graph) SetLabel(node uint32, name string) {
	g.labels[node] = name
}

// Label returns the name previously assigned to node, if any.
func (g *Graph) Label(node uint32) (string, bool) {
	name, ok := g.labels[node]
	return name, ok
}

// Components exposes the raw forward CSR slices (row offsets, column
// indices, edge weights) for callers — such as the gpu package's buffer
// uploader — that need direct slice access rather than per-node queries.
// The returned slices are the Graph's own backing arrays and must not be
// mutated by the caller.
func (g *Graph) Components() (rowOffsets, colIndices []uint32, weights []float32) {
	return g.rowOffsets, g.colIndices, g.edgeWeights
}

// ReverseComponents is Components' twin for the reverse CSR arrays.
func (g *Graph) ReverseComponents() (rowOffsets, colIndices []uint32, weights []float32) {
	return g.revRowOffsets, g.revColIndices, g.revEdgeWeights
}
