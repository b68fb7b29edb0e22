package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/allbackends"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/gfxbind/backend"
)

func init() {
	register(backend.NameVulkan, gputypes.BackendVulkan)
	register(backend.NameDX12, gputypes.BackendDX12)
	register(backend.NameGL, gputypes.BackendGL)

	// noop and the software rasterizer share gputypes.BackendEmpty in the
	// HAL registry, so the noop API is referenced directly.
	backend.Register(backend.NameNoop, func() backend.Backend {
		return New(backend.NameNoop, noop.API{})
	})
}

// register adds a factory that returns nil when the HAL has no API for
// variant.
func register(name string, variant gputypes.Backend) {
	backend.Register(name, func() backend.Backend {
		api, ok := hal.GetBackend(variant)
		if !ok {
			return nil
		}
		return New(name, api)
	})
}
