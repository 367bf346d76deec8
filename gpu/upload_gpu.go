//go:build gpu

package gpu

import (
	"fmt"

	"github.com/gogpu/wgpu"

	"github.com/paiml/trueno-graph/csr"
)

// GraphBuffers holds the device-resident forward CSR arrays for one graph,
// created once per dispatch loop by UploadGraph and reused across levels.
type GraphBuffers struct {
	RowOffsets *wgpu.Buffer
	ColIndices *wgpu.Buffer
}

// UploadGraph copies a graph's forward CSR arrays into device storage
// buffers, built on csr.Graph.Components' raw-slice escape hatch so the
// upload is a single pair of buffer writes rather than per-node calls.
func UploadGraph(d *Device, g *csr.Graph) (*GraphBuffers, error) {
	rowOffsets, colIndices, _ := g.Components()

	rowBuf, err := d.device.CreateBufferInit(wgpu.BufferInitDescriptor{
		Label:    "row_offsets",
		Contents: u32Bytes(rowOffsets),
		Usage:    wgpu.BufferUsageStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
	}
	colBuf, err := d.device.CreateBufferInit(wgpu.BufferInitDescriptor{
		Label:    "col_indices",
		Contents: u32Bytes(colIndices),
		Usage:    wgpu.BufferUsageStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
	}

	return &GraphBuffers{RowOffsets: rowBuf, ColIndices: colBuf}, nil
}
