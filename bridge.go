package gfxbind

import (
	"fmt"

	"github.com/gogpu/gfxbind/backend"
	"github.com/gogpu/gfxbind/convert"
	"github.com/gogpu/gfxbind/desc"
	"github.com/gogpu/gfxbind/internal/logging"
	"github.com/gogpu/gfxbind/native"
	"github.com/gogpu/gfxbind/scratch"
)

// Bridge connects one backend to the caller-facing API. It owns the
// backend's entry tables, the converter registry with its scratch pool,
// and the device.
//
// A Bridge converts arguments through shared scratch holders and is not
// safe for concurrent use.
type Bridge struct {
	backend   backend.Backend
	classes   *native.Classes
	registry  *convert.Registry
	device    *Device
	installed int
}

// New selects a backend, installs the converting wrappers over its entry
// tables and opens and initializes its device.
func New(opts ...Option) (*Bridge, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}

	be := o.backend
	if be == nil {
		var err error
		if be, err = backend.Lookup(o.backendName); err != nil {
			return nil, fmt.Errorf("gfxbind: %w", err)
		}
	}

	concepts := be.Concepts()
	b := &Bridge{
		backend: be,
		classes: native.Build(be.Name(), concepts),
		registry: convert.NewRegistry(scratch.New(), convert.Environment{
			Window: o.window,
			Handle: o.handle,
		}).Without(concepts.Unsupported()...),
	}
	b.installed = install(b.classes, b.registry)

	nd, err := be.NewDevice()
	if err != nil {
		return nil, fmt.Errorf("gfxbind: %s: %w", be.Name(), err)
	}
	if nd == nil {
		return nil, fmt.Errorf("gfxbind: %s: %w", be.Name(), ErrNoDevice)
	}
	b.device = &Device{object: object{bridge: b, proto: b.classes.Device, native: nd}}

	info := o.deviceInfo
	if info == nil {
		info = &desc.DeviceInfo{}
	}
	if err := b.device.Initialize(info); err != nil {
		nd.Destroy()
		return nil, fmt.Errorf("gfxbind: %s: %w", be.Name(), err)
	}

	logging.Logger().Info("gfxbind: bridge ready",
		"backend", be.Name(),
		"concepts", concepts.String(),
		"converters", b.registry.Len(),
		"wrapped", b.installed)
	return b, nil
}

// Backend returns the name of the selected backend.
func (b *Bridge) Backend() string { return b.backend.Name() }

// Concepts returns the optional capabilities of the selected backend.
func (b *Bridge) Concepts() native.Concept { return b.classes.Concepts }

// Classes returns the backend's entry tables with the wrappers installed.
func (b *Bridge) Classes() *native.Classes { return b.classes }

// Registry returns the converters available to this bridge.
func (b *Bridge) Registry() *convert.Registry { return b.registry }

// Installed returns the number of entries wrapped by New.
func (b *Bridge) Installed() int { return b.installed }

// Device returns the device, or nil after Close.
func (b *Bridge) Device() *Device { return b.device }

// Close destroys the device. It is safe to call more than once.
func (b *Bridge) Close() error {
	if b.device == nil {
		return nil
	}
	err := b.device.Destroy()
	b.device = nil
	return err
}
