package persist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/paiml/trueno-graph/csr"
)

// ToBatches extracts the edges and nodes record batches from a graph, in
// the order the external codec expects: edges in forward-CSR order, nodes
// restricted to labeled IDs.
func ToBatches(g *csr.Graph) (EdgeBatch, NodeBatch) {
	rowOffsets, colIndices, weights := g.Components()

	var edges EdgeBatch
	n := len(rowOffsets) - 1
	for v := 0; v < n; v++ {
		start, end := rowOffsets[v], rowOffsets[v+1]
		for i := start; i < end; i++ {
			edges.Records = append(edges.Records, EdgeRecord{
				Source: uint32(v),
				Target: colIndices[i],
				Weight: weights[i],
			})
		}
	}

	var nodes NodeBatch
	for v := uint32(0); uint64(v) < g.NodeCount(); v++ {
		if name, ok := g.Label(v); ok {
			nodes.Records = append(nodes.Records, NodeRecord{NodeID: v, Name: name})
		}
	}

	return edges, nodes
}

// FromBatches rebuilds a graph from record batches: the edges batch is
// passed to csr.FromEdgeList (which reconstructs both CSR directions),
// then the node batch's labels are replayed onto it.
func FromBatches(edges EdgeBatch, nodes NodeBatch) (*csr.Graph, error) {
	csrEdges := make([]csr.Edge, len(edges.Records))
	for i, r := range edges.Records {
		csrEdges[i] = csr.Edge{Source: r.Source, Target: r.Target, Weight: r.Weight}
	}

	g, err := csr.FromEdgeList(csrEdges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecError, err)
	}

	for _, r := range nodes.Records {
		g.SetLabel(r.NodeID, r.Name)
	}

	return g, nil
}

// Codec is the interface an external collaborator's columnar format
// implements to round-trip a graph. This package's Codec is a minimal
// stdlib-based reference implementation, standing in for a production
// columnar format such as Parquet or Arrow.
type Codec interface {
	Save(w io.Writer, edges EdgeBatch, nodes NodeBatch) error
	Load(r io.Reader) (EdgeBatch, NodeBatch, error)
}

// BinaryCodec is a length-prefixed binary reference codec: not the
// production columnar format, but sufficient to exercise the record
// layout and the round-trip property.
type BinaryCodec struct{}

// Save writes the edges batch followed by the nodes batch, each as a u32
// count followed by fixed-width records (nodes' name field is
// length-prefixed UTF-8).
func (BinaryCodec) Save(w io.Writer, edges EdgeBatch, nodes NodeBatch) error {
	bw := bufio.NewWriter(w)

	if err := writeUint32(bw, uint32(len(edges.Records))); err != nil {
		return fmt.Errorf("%w: %v", ErrCodecError, err)
	}
	for _, e := range edges.Records {
		if err := writeUint32(bw, e.Source); err != nil {
			return fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		if err := writeUint32(bw, e.Target); err != nil {
			return fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		if err := writeUint32(bw, math.Float32bits(e.Weight)); err != nil {
			return fmt.Errorf("%w: %v", ErrCodecError, err)
		}
	}

	if err := writeUint32(bw, uint32(len(nodes.Records))); err != nil {
		return fmt.Errorf("%w: %v", ErrCodecError, err)
	}
	for _, n := range nodes.Records {
		if err := writeUint32(bw, n.NodeID); err != nil {
			return fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		nameBytes := []byte(n.Name)
		if err := writeUint32(bw, uint32(len(nameBytes))); err != nil {
			return fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		if _, err := bw.Write(nameBytes); err != nil {
			return fmt.Errorf("%w: %v", ErrCodecError, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrCodecError, err)
	}
	return nil
}

// Load reads back what Save wrote.
func (BinaryCodec) Load(r io.Reader) (EdgeBatch, NodeBatch, error) {
	br := bufio.NewReader(r)

	edgeCount, err := readUint32(br)
	if err != nil {
		return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
	}
	edges := EdgeBatch{Records: make([]EdgeRecord, edgeCount)}
	for i := range edges.Records {
		source, err := readUint32(br)
		if err != nil {
			return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		target, err := readUint32(br)
		if err != nil {
			return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		weightBits, err := readUint32(br)
		if err != nil {
			return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		edges.Records[i] = EdgeRecord{
			Source: source,
			Target: target,
			Weight: math.Float32frombits(weightBits),
		}
	}

	nodeCount, err := readUint32(br)
	if err != nil {
		return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
	}
	nodes := NodeBatch{Records: make([]NodeRecord, nodeCount)}
	for i := range nodes.Records {
		nodeID, err := readUint32(br)
		if err != nil {
			return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		nameLen, err := readUint32(br)
		if err != nil {
			return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		nameBytes := make([]byte, nameLen)
		if _, err := io.ReadFull(br, nameBytes); err != nil {
			return EdgeBatch{}, NodeBatch{}, fmt.Errorf("%w: %v", ErrCodecError, err)
		}
		nodes.Records[i] = NodeRecord{NodeID: nodeID, Name: string(nameBytes)}
	}

	return edges, nodes, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
