// Package gpu provides a compute-device backend for the algorithms in algo,
// mirroring their CPU semantics on top of a WebGPU-style compute API
// (github.com/gogpu/wgpu): BFS as a level-synchronous kernel and PageRank as
// an SpMV-style power iteration kernel, both reading the same csr.Graph
// buffer layout.
//
// Build with the `gpu` tag to get a real device-backed implementation;
// without it, every entry point in this package returns ErrGpuUnavailable,
// which keeps CPU-only builds free of any graphics dependency.
package gpu
