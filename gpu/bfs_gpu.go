//go:build gpu

package gpu

import (
	"fmt"

	"github.com/gogpu/wgpu"

	"github.com/paiml/trueno-graph/csr"
)

type bfsParams struct {
	NumNodes     uint32
	CurrentLevel uint32
	Source       uint32
	_pad         uint32
}

/*
BFS dispatches the level-synchronous BFS kernel until a level produces no
updates, mirroring algo.BFS's termination condition one dispatch at a time:

  - distances[N] is initialized to Unreachable except distances[source]=0.
  - each level: zero `updated`, write the level into the uniform block,
    dispatch ceil(N/256) workgroups, wait, read `updated` back.
  - stop once `updated` reads 0, or after N levels (one more than the
    graph's worst-case eccentricity N-1), or after maxDepth levels if maxDepth
    is non-zero — mirroring algo.WithMaxDepth's cap so equiv's CheckBFS
    can compare a depth-capped CPU run against an equally-capped GPU one.

This issues one dispatch per level and blocks on every readback. A
pipelined variant that issues several levels before awaiting any of them
would cut host-device round trips, but level N's "did anything update"
result decides whether level N+1 should run at all, so blocking keeps
the dispatch loop's termination logic simple and easy to reason about.
*/
func BFS(d *Device, g *csr.Graph, source uint32, maxDepth uint32) (*BfsResult, error) {
	if d == nil {
		return nil, ErrGpuUnavailable
	}
	n := g.NodeCount()
	if uint64(source) >= n {
		return nil, fmt.Errorf("gpu: source %d out of range", source)
	}

	shader, err := d.device.CreateShaderModule(wgpu.ShaderModuleDescriptor{
		Label: "bfs",
		Code:  bfsShaderSource,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompileFailed, err)
	}

	graphBufs, err := UploadGraph(d, g)
	if err != nil {
		return nil, err
	}
	rowBuf, colBuf := graphBufs.RowOffsets, graphBufs.ColIndices

	distances := make([]uint32, n)
	for v := range distances {
		distances[v] = Unreachable
	}
	distances[source] = 0
	distBuf, err := d.device.CreateBufferInit(wgpu.BufferInitDescriptor{
		Label:    "distances",
		Contents: u32Bytes(distances),
		Usage:    wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
	}

	updatedBuf, err := d.device.CreateBufferInit(wgpu.BufferInitDescriptor{
		Label:    "updated",
		Contents: u32Bytes([]uint32{0}),
		Usage:    wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
	}

	pipeline, err := d.device.CreateComputePipeline(wgpu.ComputePipelineDescriptor{
		Label:  "bfs",
		Module: shader,
		Entry:  "main",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompileFailed, err)
	}

	workgroups := uint32((n + WorkgroupSize - 1) / WorkgroupSize)
	effectiveLevels := n
	if maxDepth > 0 && uint64(maxDepth) < n {
		effectiveLevels = uint64(maxDepth)
	}
	maxLevels := uint32(effectiveLevels)
	if maxLevels > 0 {
		maxLevels--
	}

	for level := uint32(0); level <= maxLevels; level++ {
		if err := d.queue.WriteBuffer(updatedBuf, 0, u32Bytes([]uint32{0})); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeviceLost, err)
		}

		params := bfsParams{NumNodes: uint32(n), CurrentLevel: level, Source: source}
		paramsBuf, err := d.device.CreateBufferInit(wgpu.BufferInitDescriptor{
			Label:    "bfs_params",
			Contents: paramsBytes(params),
			Usage:    wgpu.BufferUsageUniform,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
		}

		bindGroup, err := d.device.CreateBindGroup(wgpu.BindGroupDescriptor{
			Layout: pipeline.BindGroupLayout(0),
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Resource: paramsBuf},
				{Binding: 1, Resource: rowBuf},
				{Binding: 2, Resource: colBuf},
				{Binding: 3, Resource: distBuf},
				{Binding: 4, Resource: updatedBuf},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBufferAllocationFailed, err)
		}

		encoder := d.device.CreateCommandEncoder(wgpu.CommandEncoderDescriptor{Label: "bfs_level"})
		pass := encoder.BeginComputePass(wgpu.ComputePassDescriptor{Label: "bfs_level"})
		pass.SetPipeline(pipeline)
		pass.SetBindGroup(0, bindGroup)
		pass.DispatchWorkgroups(workgroups, 1, 1)
		pass.End()
		d.queue.Submit(encoder.Finish())

		updated, err := readU32Buffer(d, updatedBuf, 1)
		if err != nil {
			return nil, err
		}
		if updated[0] == 0 {
			break
		}
	}

	final, err := readU32Buffer(d, distBuf, int(n))
	if err != nil {
		return nil, err
	}

	visited := 0
	for _, dist := range final {
		if dist != Unreachable {
			visited++
		}
	}

	return &BfsResult{Distances: final, VisitedCount: visited}, nil
}
