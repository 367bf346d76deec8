// Package csr implements a bidirectional Compressed Sparse Row graph store,
// sized for code-analysis workloads (call graphs, dependency graphs, AST
// reference graphs) with tens of millions of edges.
//
// A Graph owns six parallel arrays — forward row offsets / column indices /
// edge weights, and their reverse-direction twins — plus a sparse node-label
// map. Forward arrays answer "what does this node call" in O(1) + O(degree);
// reverse arrays answer "who calls this node" with the same bound. Building
// both directions up front is what makes find-callers and PageRank's
// incoming-edge sum cheap without a second pass over every edge.
//
// Two ways to populate a Graph: FromEdgeList does a batch two-pass
// count-then-scatter build in O(N+E) with one allocation per array, and is
// the path to prefer for anything but a handful of edges. AddEdge mutates a
// built graph in place by shifting slice contents, which is O(E) worst case
// — acceptable for occasional edits, not for bulk loading. Builder buffers
// edges in memory and freezes them into a Graph via FromEdgeList, for
// callers who want incremental-looking construction without paying AddEdge's
// per-call shifting cost.
//
// Node IDs are dense uint32s in [0, N); the graph always allocates N =
// max(id)+1 slots, so referencing a far-out node implicitly creates empty
// slots for everything below it. There is no edge removal and no
// transactional mutation — see the top-level module doc for the full set of
// non-goals.
package csr
