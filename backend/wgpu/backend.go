package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxbind/backend"
	"github.com/gogpu/gfxbind/internal/logging"
	"github.com/gogpu/gfxbind/native"
)

// Backend opens devices through one HAL API.
type Backend struct {
	name  string
	api   hal.Backend
	spirv bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithSPIRV compiles WGSL shader stages to SPIR-V with naga before handing
// them to the HAL.
func WithSPIRV() Option {
	return func(b *Backend) {
		b.spirv = true
	}
}

// New returns a backend named name driving api.
func New(name string, api hal.Backend, opts ...Option) *Backend {
	b := &Backend{name: name, api: api}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the registered variant name.
func (b *Backend) Name() string { return b.name }

// Concepts reports explicit binding layouts and direct image uploads.
// Objects cannot be re-initialized in place.
func (b *Backend) Concepts() native.Concept {
	return native.ConceptBindingLayout | native.ConceptTexImages
}

// NewDevice opens a device on the first discrete or integrated adapter,
// falling back to the first adapter reported.
func (b *Backend) NewDevice() (native.Device, error) {
	instance, err := b.api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: %s: create instance: %w", b.name, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: %s: %w", b.name, backend.ErrNoDevice)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	open, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: %s: open device: %w", b.name, err)
	}

	logging.Logger().Info("wgpu: device opened", "backend", b.name, "adapter", selected.Info.Name)
	return &Device{
		instance: instance,
		device:   open.Device,
		queue:    open.Queue,
		spirv:    b.spirv,
	}, nil
}
