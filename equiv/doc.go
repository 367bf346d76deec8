// Package equiv is the backend-equivalence harness: it runs the same
// graph and parameters through both the algo (CPU) and gpu entry points
// and asserts the contract each algorithm family promises — bit-identical
// BFS distances, and PageRank scores within a bounded maximum absolute
// error. Any algorithm exposed on both backends belongs here; Louvain and
// pattern matching are CPU-only and are out of this package's scope.
package equiv
