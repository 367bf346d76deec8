//go:build gpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/wgpu"
)

func u32Bytes(values []uint32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func f32Bytes(values []float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func paramsBytes(params any) []byte {
	switch p := params.(type) {
	case bfsParams:
		return u32Bytes([]uint32{p.NumNodes, p.CurrentLevel, p.Source, p._pad})
	case pageRankParams:
		out := make([]byte, 16)
		binary.LittleEndian.PutUint32(out[0:], p.NumNodes)
		binary.LittleEndian.PutUint32(out[4:], math.Float32bits(p.Damping))
		binary.LittleEndian.PutUint32(out[8:], p.Iteration)
		binary.LittleEndian.PutUint32(out[12:], math.Float32bits(p.DanglingSum))
		return out
	default:
		panic("gpu: unknown uniform params type")
	}
}

// readU32Buffer copies a storage buffer to a staging buffer, maps it for
// read, and returns its contents as a u32 slice. The map is synchronous
// from the caller's point of view: there is no overlap between this
// readback and the next dispatch, which is the simplest correct way to
// hand results back to the host.
func readU32Buffer(d *Device, buf *wgpu.Buffer, count int) ([]uint32, error) {
	size := uint64(4 * count)
	staging, err := d.device.CreateBuffer(wgpu.BufferDescriptor{
		Label: "staging_u32",
		Size:  size,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
	}

	encoder := d.device.CreateCommandEncoder(wgpu.CommandEncoderDescriptor{Label: "readback"})
	encoder.CopyBufferToBuffer(buf, 0, staging, 0, size)
	d.queue.Submit(encoder.Finish())

	data, err := staging.MapAndRead()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceLost, err)
	}
	defer staging.Unmap()

	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return out, nil
}

// readF32Buffer is readU32Buffer's twin for PageRank score readback.
func readF32Buffer(d *Device, buf *wgpu.Buffer, count int) ([]float32, error) {
	size := uint64(4 * count)
	staging, err := d.device.CreateBuffer(wgpu.BufferDescriptor{
		Label: "staging_f32",
		Size:  size,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
	}

	encoder := d.device.CreateCommandEncoder(wgpu.CommandEncoderDescriptor{Label: "readback"})
	encoder.CopyBufferToBuffer(buf, 0, staging, 0, size)
	d.queue.Submit(encoder.Finish())

	data, err := staging.MapAndRead()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceLost, err)
	}
	defer staging.Unmap()

	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out, nil
}
