package gpu

import "errors"

var (
	// ErrGpuUnavailable is returned when no compute device could be
	// acquired, or when the package was built without the gpu tag. The
	// caller is expected to fall back to the CPU algorithms in algo.
	ErrGpuUnavailable = errors.New("gpu: no compute device available")

	// ErrShaderCompileFailed is returned when a kernel's shader module
	// fails to compile on the acquired device.
	ErrShaderCompileFailed = errors.New("gpu: shader compile failed")

	// ErrBufferAllocationFailed is returned when a storage or uniform
	// buffer could not be allocated on the device.
	ErrBufferAllocationFailed = errors.New("gpu: buffer allocation failed")

	// ErrDeviceLost is returned when the device is lost mid-dispatch.
	ErrDeviceLost = errors.New("gpu: device lost")
)
