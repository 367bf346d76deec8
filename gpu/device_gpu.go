//go:build gpu

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu"
)

// AdapterInfo surfaces diagnostic information about the acquired compute
// device, for logging and bug reports.
type AdapterInfo struct {
	Name       string
	Backend    string
	DeviceType string
}

// Device wraps the wgpu instance/adapter/device/queue chain needed to run
// the BFS and PageRank kernels. Acquisition is idempotent and shared: every
// NewDevice call with the same backend set returns the same underlying
// Device, reference-counted so the wgpu chain is only torn down once every
// holder has called Close.
type Device struct {
	backends Backend
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

var (
	deviceCacheMu sync.Mutex
	deviceCache   = map[Backend]*Device{}
	deviceRefs    = map[Backend]int{}
)

// NewDevice requests a high-performance compute-capable device. It returns
// ErrGpuUnavailable if no adapter or device could be acquired — the caller
// is expected to fall back to the algo package's CPU implementations.
//
// Acquisition is process-wide and shared: a call with a backend set that is
// already resident returns the cached Device and bumps its reference
// count, rather than opening a second instance/adapter/device chain for
// the same backends.
func NewDevice(opts ...DeviceOption) (*Device, error) {
	o := newDeviceOptions(opts...)

	deviceCacheMu.Lock()
	defer deviceCacheMu.Unlock()

	if d, ok := deviceCache[o.backends]; ok {
		deviceRefs[o.backends]++
		return d, nil
	}

	instance := wgpu.NewInstance(wgpu.InstanceDescriptor{
		Backends: wgpuBackends(o.backends),
	})

	adapter, err := instance.RequestAdapter(wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil || adapter == nil {
		return nil, fmt.Errorf("%w: %v", ErrGpuUnavailable, err)
	}

	device, queue, err := adapter.RequestDevice(wgpu.DeviceDescriptor{
		Label: "trueno-graph compute device",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGpuUnavailable, err)
	}

	d := &Device{
		backends: o.backends,
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
	}
	deviceCache[o.backends] = d
	deviceRefs[o.backends] = 1
	return d, nil
}

// IsAvailable reports whether a device could be acquired, without holding
// onto it — useful for tests that want to skip gracefully when no GPU is
// present.
func IsAvailable() bool {
	d, err := NewDevice()
	if err != nil {
		return false
	}
	d.Close()
	return true
}

// Info returns diagnostic adapter information for logging.
func (d *Device) Info() AdapterInfo {
	info := d.adapter.GetInfo()
	return AdapterInfo{
		Name:       info.Name,
		Backend:    info.Backend.String(),
		DeviceType: info.DeviceType.String(),
	}
}

// Close releases one holder's reference to the device. The underlying
// wgpu chain is only destroyed once every NewDevice caller sharing this
// backend set has called Close; buffers created against this device must
// not be used once that happens.
func (d *Device) Close() {
	deviceCacheMu.Lock()
	defer deviceCacheMu.Unlock()

	deviceRefs[d.backends]--
	if deviceRefs[d.backends] > 0 {
		return
	}
	delete(deviceCache, d.backends)
	delete(deviceRefs, d.backends)
	if d.device != nil {
		d.device.Destroy()
	}
}

// wgpuBackends translates our Backend bitmask into wgpu's own, so
// DeviceOptions stays independent of the gpu build tag.
func wgpuBackends(backends Backend) wgpu.Backends {
	var out wgpu.Backends
	if backends&BackendVulkan != 0 {
		out |= wgpu.BackendsVulkan
	}
	if backends&BackendMetal != 0 {
		out |= wgpu.BackendsMetal
	}
	if backends&BackendDX12 != 0 {
		out |= wgpu.BackendsDX12
	}
	return out
}
