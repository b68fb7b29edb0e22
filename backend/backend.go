package backend

import (
	"errors"

	"github.com/gogpu/gfxbind/native"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoDevice is returned when a backend finds no adapter to open.
	ErrNoDevice = errors.New("backend: no device")
)

// Backend names, in default priority order.
const (
	NameVulkan = "vulkan"
	NameMetal  = "metal"
	NameDX12   = "dx12"
	NameGL     = "gl"
	NameNoop   = "noop"
	NameRecord = "record"
)

// Backend is a native graphics implementation the bridge can drive.
//
// Backends are registered via Register() and are selected via Get() or
// Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "vulkan", "record").
	Name() string

	// Concepts reports the optional capabilities the backend implements.
	// Entries and converters for missing concepts are never installed.
	Concepts() native.Concept

	// NewDevice opens a native device. The device is not initialized;
	// the bridge calls its initialize entry with the converted DeviceInfo.
	NewDevice() (native.Device, error)
}
