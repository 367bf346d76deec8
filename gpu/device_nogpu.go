//go:build !gpu

package gpu

// AdapterInfo surfaces diagnostic information about the acquired compute
// device. In a CPU-only build there is never one to report.
type AdapterInfo struct {
	Name       string
	Backend    string
	DeviceType string
}

// Device is an opaque handle in CPU-only builds; NewDevice never succeeds
// in producing one.
type Device struct{}

// NewDevice always returns ErrGpuUnavailable in a build without the gpu
// tag, so CPU-only binaries carry no graphics dependency.
func NewDevice(opts ...DeviceOption) (*Device, error) {
	return nil, ErrGpuUnavailable
}

// IsAvailable is always false without the gpu build tag.
func IsAvailable() bool {
	return false
}

// Info is unreachable without a Device; it exists only to satisfy callers
// written against the gpu-tagged API shape.
func (d *Device) Info() AdapterInfo {
	return AdapterInfo{}
}

// Close is a no-op in CPU-only builds.
func (d *Device) Close() {}
