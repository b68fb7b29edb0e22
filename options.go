package gfxbind

import (
	"log/slog"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfxbind/backend"
	"github.com/gogpu/gfxbind/desc"
)

// Option configures a Bridge during creation.
//
// Example:
//
//	// Highest-priority backend available
//	b, err := gfxbind.New()
//
//	// A specific backend, rendering to a window
//	b, err := gfxbind.New(
//	    gfxbind.WithBackend(backend.NameVulkan),
//	    gfxbind.WithWindow(win),
//	    gfxbind.WithWindowHandle(handle),
//	)
type Option func(*options)

// options holds optional configuration for Bridge creation.
type options struct {
	backendName string
	backend     backend.Backend
	window      gpucontext.WindowProvider
	handle      uintptr
	deviceInfo  *desc.DeviceInfo
	logger      *slog.Logger
}

// WithBackend selects a registered backend by name. Without it the
// highest-priority available backend is used.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backendName = name
	}
}

// WithBackendInstance uses b directly, bypassing the registry.
// Use this for dependency injection of configured backends:
//
//	gfxbind.New(gfxbind.WithBackendInstance(wgpu.New("vk", api, wgpu.WithSPIRV())))
func WithBackendInstance(b backend.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithWindow sets the window whose size device initialization reports.
func WithWindow(w gpucontext.WindowProvider) Option {
	return func(o *options) {
		o.window = w
	}
}

// WithWindowHandle sets the native window handle handed to the device.
func WithWindowHandle(h uintptr) Option {
	return func(o *options) {
		o.handle = h
	}
}

// WithDeviceInfo sets the descriptor the device is initialized with.
func WithDeviceInfo(info *desc.DeviceInfo) Option {
	return func(o *options) {
		o.deviceInfo = info
	}
}

// WithLogger calls SetLogger with l before the bridge is built.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
