// Package gfxbind adapts a loosely typed graphics API to fixed-shape native
// backends.
//
// # Overview
//
// Callers describe objects with the descriptor records of package desc:
// partially populated, nested, passed by pointer or by value. Native
// backends accept only the canonical argument structs of package canon, in
// a fixed field order. gfxbind sits between the two. At startup it builds
// the entry tables of the selected backend, installs a converting wrapper
// over every entry whose arguments need shaping, and keeps the original
// entry under a renamed slot ("_" + name). Every call then converts its
// arguments and forwards them unchanged in number and order.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gfxbind"
//	    _ "github.com/gogpu/gfxbind/backend/wgpu"
//	)
//
//	b, err := gfxbind.New(gfxbind.WithWindow(win), gfxbind.WithWindowHandle(handle))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	dev := b.Device()
//	buf, err := dev.CreateBuffer(&desc.BufferInfo{
//	    Usage:  gputypes.BufferUsageIndirect,
//	    Stride: 28,
//	    Size:   28,
//	})
//	err = buf.Update(&desc.IndirectBuffer{DrawInfos: []desc.DrawInfo{{VertexCount: 3}}})
//
// # Backends
//
// Backends register themselves in package backend when imported:
//
//   - backend/wgpu: vulkan, metal, dx12, gl and noop over the wgpu HAL
//   - backend/record: records every native call with its canonical arguments
//
// New picks the highest-priority available backend unless WithBackend or
// WithBackendInstance says otherwise.
//
// # Concepts
//
// Backends differ in optional capabilities (native.Concept): explicit
// binding layouts, direct image uploads and in-place re-initialization.
// Entries of an unsupported concept are neither wrapped nor defined, and
// calling them returns adapt.ErrNoEntry. Use Supports to probe:
//
//	if dev.Supports("createBindingLayout") {
//	    layout, err := dev.CreateBindingLayout(&desc.BindingLayoutInfo{Shader: shader})
//	}
//
// # Scratch Values
//
// Rectangles and colors, the values converted on every frame, are written
// into holders owned by the bridge and reused across calls. A native entry
// must copy such a value if it keeps it past the call. Because of this a
// Bridge is not safe for concurrent use.
//
// # Logging
//
// gfxbind is silent by default. Use SetLogger or WithLogger to enable
// structured logging through log/slog.
package gfxbind
