//go:build darwin

package wgpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/backend"
)

func init() {
	register(backend.NameMetal, gputypes.BackendMetal)
}
