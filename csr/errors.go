package csr

import "errors"

// Sentinel errors returned by the csr package. Callers should branch with
// errors.Is, not string comparison.
var (
	// ErrNodeOutOfRange is returned when a node ID is >= the graph's node
	// count, i.e. the node was never referenced by any edge or add_edge call.
	ErrNodeOutOfRange = errors.New("csr: node out of range")

	// ErrCapacityExceeded is returned when a node ID or edge count would
	// exceed the 2^32 addressing space the format commits to.
	ErrCapacityExceeded = errors.New("csr: capacity exceeded")
)

const maxID = 1<<32 - 1
