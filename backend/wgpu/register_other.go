//go:build !darwin

package wgpu

import "github.com/gogpu/gfxbind/backend"

// init registers a nil-returning metal factory off darwin.
// This allows backend.Get(backend.NameMetal) to return nil gracefully.
func init() {
	backend.Register(backend.NameMetal, func() backend.Backend {
		return nil
	})
}
