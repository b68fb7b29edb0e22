package backend

import (
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfxbind/internal/logging"
)

// Factory creates a backend instance. A factory may return nil when the
// backend cannot run on this platform or build.
type Factory func() Backend

// Priority order for backend selection (first available wins).
var priority = []string{NameVulkan, NameMetal, NameDX12, NameGL, NameNoop, NameRecord}

var backends = gpucontext.NewRegistry[Backend](gpucontext.WithPriority(priority...))

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	backends.Register(name, factory)
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	backends.Unregister(name)
}

// Available returns the registered backend names, sorted.
func Available() []string {
	names := backends.Available()
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	return backends.Has(name)
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered or its factory returns nil.
func Get(name string) Backend {
	return backends.Get(name)
}

// Default returns the best available backend based on priority.
// Factories returning nil are skipped. Backends outside the priority list
// are tried last, in name order. Returns nil if none is usable.
func Default() Backend {
	log := logging.Logger()
	names := Available()
	ordered := make([]string, 0, len(names))
	for _, name := range priority {
		if slices.Contains(names, name) {
			ordered = append(ordered, name)
		}
	}
	for _, name := range names {
		if !slices.Contains(priority, name) {
			ordered = append(ordered, name)
		}
	}
	for _, name := range ordered {
		if b := backends.Get(name); b != nil {
			log.Debug("backend: selected", "name", name)
			return b
		}
		log.Debug("backend: unavailable, skipped", "name", name)
	}
	return nil
}

// Lookup returns the named backend, or Default when name is empty.
func Lookup(name string) (Backend, error) {
	var b Backend
	if name == "" {
		b = Default()
	} else {
		b = Get(name)
	}
	if b == nil {
		if name == "" {
			name = "default"
		}
		return nil, &NotAvailableError{Name: name}
	}
	return b, nil
}

// NotAvailableError reports a backend that is unregistered or cannot run.
type NotAvailableError struct {
	Name string
}

// Error names the backend.
func (e *NotAvailableError) Error() string {
	return "backend: " + e.Name + " not available"
}

// Unwrap returns ErrBackendNotAvailable so errors.Is matches the sentinel.
func (e *NotAvailableError) Unwrap() error { return ErrBackendNotAvailable }
