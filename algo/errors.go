package algo

import "errors"

var (
	// ErrNodeOutOfRange is returned when a caller supplies a source node ID
	// that does not exist in the graph.
	ErrNodeOutOfRange = errors.New("algo: node out of range")

	// ErrNumericOverflow is returned when an iterative algorithm produces a
	// non-finite value, which for PageRank means the graph or parameters
	// are pathological enough that the power iteration diverged.
	ErrNumericOverflow = errors.New("algo: numeric overflow")
)
