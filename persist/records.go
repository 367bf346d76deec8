package persist

// EdgeRecord is one row of the edges batch: source, target, weight, in
// forward-CSR order (source-grouped, original insertion order within each
// source's block).
type EdgeRecord struct {
	Source uint32
	Target uint32
	Weight float32
}

// NodeRecord is one row of the nodes batch. Only labeled nodes appear;
// readers must treat a missing node_id as unlabeled rather than erroring.
type NodeRecord struct {
	NodeID uint32
	Name   string
}

// EdgeBatch is the edges record batch as handed to an external codec.
type EdgeBatch struct {
	Records []EdgeRecord
}

// NodeBatch is the nodes record batch as handed to an external codec.
type NodeBatch struct {
	Records []NodeRecord
}
