// Package backend provides a pluggable native backend registry.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/gfxbind/backend/wgpu"
//
// A backend that cannot run in the current build registers a factory
// returning nil, so Get reports it as unavailable instead of failing to
// compile.
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Default()
//	b := backend.Get(backend.NameRecord)
//
// Priority order: vulkan > metal > dx12 > gl > noop > record.
package backend
