// Package truenograph is an embedded graph engine for code-analysis
// workloads: call graphs, module-dependency graphs, and AST reference
// graphs sized from a few hundred to tens of millions of edges.
//
// Everything lives under flat, single-concern subpackages:
//
//	csr/     — bidirectional Compressed Sparse Row graph store
//	algo/    — CPU algorithms: BFS, find_callers, PageRank, Louvain, pattern matching
//	gpu/     — WebGPU-style compute backend mirroring algo's BFS/PageRank semantics
//	equiv/   — CPU/GPU backend-equivalence harness
//	persist/ — record layout and reference codec for handing a graph to an external columnar store
//
// Non-goals: this module is not a query language, not a distributed graph
// database, and does not own a production columnar storage format — the
// persist package defines the record layout an external collaborator
// consumes, not that collaborator itself. The graph is also not safe for
// concurrent mutation; concurrent readers of an otherwise-immutable graph
// are fine, since every read path is index-only.
//
//	go get github.com/paiml/trueno-graph/csr
package truenograph
