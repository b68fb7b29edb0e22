package gfxbind

import (
	"fmt"

	"github.com/gogpu/gfxbind/adapt"
	"github.com/gogpu/gfxbind/convert"
	"github.com/gogpu/gfxbind/desc"
	"github.com/gogpu/gfxbind/native"
)

// Entry names shared by several classes.
const (
	entryInitialize = native.EntryInitialize
	entryUpdate     = "update"
)

// replacementTables returns, per class name, the wrappers installed over
// the native entries. Wrappers whose converter r lacks are nil and leave
// their entry unwrapped.
func replacementTables(r *convert.Registry) map[string]map[string]adapt.Wrapper {
	conv := r.Lookup
	origin := conv(convert.NameOrigin)
	wrap := func(name string, convs ...adapt.Converter) adapt.Wrapper {
		return adapt.Adapt(adapt.RenamedName(name), convs...)
	}
	initialize := func(info string) map[string]adapt.Wrapper {
		return map[string]adapt.Wrapper{entryInitialize: wrap(entryInitialize, conv(info))}
	}

	tables := map[string]map[string]adapt.Wrapper{
		native.ClassDevice: {
			entryInitialize:          wrap(entryInitialize, conv(convert.NameDeviceInfo)),
			"createQueue":            wrap("createQueue", conv(convert.NameQueueInfo)),
			"createCommandBuffer":    wrap("createCommandBuffer", conv(convert.NameCommandBufferInfo)),
			"createBuffer":           wrap("createBuffer", conv(convert.NameBufferInfo)),
			"createTexture":          adapt.Dispatch(adapt.RenamedName("createTexture"), selectTexture),
			"createSampler":          wrap("createSampler", conv(convert.NameSamplerInfo)),
			"createShader":           wrap("createShader", conv(convert.NameShaderInfo)),
			"createInputAssembler":   wrap("createInputAssembler", conv(convert.NameInputAssemblerInfo)),
			"createRenderPass":       wrap("createRenderPass", conv(convert.NameRenderPassInfo)),
			"createFramebuffer":      wrap("createFramebuffer", conv(convert.NameFramebufferInfo)),
			"createBindingLayout":    wrap("createBindingLayout", conv(convert.NameBindingLayoutInfo)),
			"createPipelineState":    wrap("createPipelineState", conv(convert.NamePipelineStateInfo)),
			"copyBuffersToTexture":   wrap("copyBuffersToTexture", origin, origin, conv(convert.NameBufferTextureCopyList)),
			"copyTexImagesToTexture": wrap("copyTexImagesToTexture", conv(convert.NameTexImagesToBuffers), origin, conv(convert.NameBufferTextureCopyList)),
		},
		native.ClassBindingLayout:  initialize(convert.NameBindingLayoutInfo),
		native.ClassFramebuffer:    initialize(convert.NameFramebufferInfo),
		native.ClassInputAssembler: initialize(convert.NameInputAssemblerInfo),
		native.ClassPipelineState:  initialize(convert.NamePipelineStateInfo),
		native.ClassQueue:          initialize(convert.NameQueueInfo),
		native.ClassRenderPass:     initialize(convert.NameRenderPassInfo),
		native.ClassSampler:        initialize(convert.NameSamplerInfo),
		native.ClassShader:         initialize(convert.NameShaderInfo),
		native.ClassCommandBuffer: {
			entryInitialize:     wrap(entryInitialize, conv(convert.NameCommandBufferInfo)),
			"setViewport":       wrap("setViewport", conv(convert.NameViewport)),
			"setScissor":        wrap("setScissor", conv(convert.NameRect)),
			"setBlendConstants": wrap("setBlendConstants", conv(convert.NameColor)),
			"beginRenderPass": wrap("beginRenderPass",
				origin, conv(convert.NameRect), origin, conv(convert.NameColorArray), origin, origin),
		},
		native.ClassBuffer: {
			entryInitialize: wrap(entryInitialize, conv(convert.NameBufferInfo)),
			entryUpdate:     updateWrapper,
		},
		native.ClassTexture: {
			entryInitialize: adapt.Dispatch(adapt.RenamedName(entryInitialize), selectTexture),
		},
	}
	return tables
}

// install installs the replacement tables over every class present in c
// and returns the number of entries wrapped.
func install(c *native.Classes, r *convert.Registry) int {
	tables := replacementTables(r)
	n := 0
	for _, p := range c.All() {
		if p == nil {
			continue
		}
		n += len(adapt.Install(p, tables[p.Name()]))
	}
	return n
}

// selectTexture converts a texture descriptor for the dual-mode texture
// entries. The mode flag reports whether a view was requested.
func selectTexture(arg any) (any, bool, error) {
	var in *desc.TextureInfo
	switch v := arg.(type) {
	case nil:
	case *desc.TextureInfo:
		in = v
	case desc.TextureInfo:
		in = &v
	default:
		return nil, false, fmt.Errorf("%w: got %T, want %T", adapt.ErrUnexpectedType, arg, in)
	}
	info, view := convert.TextureDispatch(in)
	return info, view, nil
}

// updateWrapper wraps Buffer.update. It takes (data[, offset[, size]]):
// buffers created for indirect draws pack a *desc.IndirectBuffer into draw
// records, other buffers upload data as given. The offset defaults to 0
// and the size to the byte length of the packed data.
func updateWrapper(p *adapt.Prototype) adapt.Method {
	target := adapt.RenamedName(entryUpdate)
	return func(self any, args ...any) (any, error) {
		if len(args) < 1 || len(args) > 3 {
			return nil, fmt.Errorf("%s: %w: got %d arguments, want 1 to 3", target, adapt.ErrArity, len(args))
		}
		buf, err := adapt.As[native.Buffer](self)
		if err != nil || buf == nil {
			return nil, fmt.Errorf("%s: receiver: %w", target, adapt.ErrUnexpectedType)
		}
		var offset uint32
		if len(args) > 1 {
			if offset, err = adapt.As[uint32](args[1]); err != nil {
				return nil, fmt.Errorf("%s: offset: %w", target, err)
			}
		}
		var size *uint32
		if len(args) > 2 && args[2] != nil {
			s, err := adapt.As[uint32](args[2])
			if err != nil {
				return nil, fmt.Errorf("%s: size: %w", target, err)
			}
			size = &s
		}
		data, n, err := convert.BufferUpdate(args[0], buf.Usage(), size)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", target, err)
		}
		return p.Call(self, target, data, offset, n)
	}
}
