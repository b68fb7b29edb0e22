package native

import (
	"fmt"

	"github.com/gogpu/gfxbind/adapt"
	"github.com/gogpu/gfxbind/canon"
)

// Class names.
const (
	ClassDevice         = "Device"
	ClassQueue          = "Queue"
	ClassCommandBuffer  = "CommandBuffer"
	ClassBuffer         = "Buffer"
	ClassTexture        = "Texture"
	ClassSampler        = "Sampler"
	ClassShader         = "Shader"
	ClassInputAssembler = "InputAssembler"
	ClassRenderPass     = "RenderPass"
	ClassFramebuffer    = "Framebuffer"
	ClassBindingLayout  = "BindingLayout"
	ClassPipelineState  = "PipelineState"
)

// Classes holds the entry tables of one backend build. A nil table means
// the class is absent from the build.
type Classes struct {
	Backend  string
	Concepts Concept

	Device         *adapt.Prototype
	Queue          *adapt.Prototype
	CommandBuffer  *adapt.Prototype
	Buffer         *adapt.Prototype
	Texture        *adapt.Prototype
	Sampler        *adapt.Prototype
	Shader         *adapt.Prototype
	InputAssembler *adapt.Prototype
	RenderPass     *adapt.Prototype
	Framebuffer    *adapt.Prototype
	BindingLayout  *adapt.Prototype
	PipelineState  *adapt.Prototype
}

// All returns every table, absent ones included as nil.
func (c *Classes) All() []*adapt.Prototype {
	return []*adapt.Prototype{
		c.Device, c.Queue, c.CommandBuffer, c.Buffer, c.Texture, c.Sampler,
		c.Shader, c.InputAssembler, c.RenderPass, c.Framebuffer,
		c.BindingLayout, c.PipelineState,
	}
}

// Build returns the native entry tables for a backend named backend with
// the given concepts. Entries for concepts the backend lacks are left out.
func Build(backend string, concepts Concept) *Classes {
	c := &Classes{Backend: backend, Concepts: concepts}
	reinit := concepts.Has(ConceptReinitialize)

	c.Device = adapt.NewPrototype(ClassDevice)
	defineAll(c.Device, map[string]adapt.Method{
		"initialize":           call1(Device.Initialize),
		"createQueue":          create(Device.CreateQueue),
		"createCommandBuffer":  create(Device.CreateCommandBuffer),
		"createBuffer":         create(Device.CreateBuffer),
		"createTexture":        createTexture,
		"createSampler":        create(Device.CreateSampler),
		"createShader":         create(Device.CreateShader),
		"createInputAssembler": create(Device.CreateInputAssembler),
		"createRenderPass":     create(Device.CreateRenderPass),
		"createFramebuffer":    create(Device.CreateFramebuffer),
		"createPipelineState":  create(Device.CreatePipelineState),
		"copyBuffersToTexture": copy3(Device.CopyBuffersToTexture),
		EntryDestroy:           destroy[Device](),
	})
	if concepts.Has(ConceptBindingLayout) {
		c.Device.Define("createBindingLayout", create(BindingLayoutCreator.CreateBindingLayout))
	}
	if concepts.Has(ConceptTexImages) {
		c.Device.Define("copyTexImagesToTexture", copy3(TexImageCopier.CopyTexImagesToTexture))
	}

	c.Queue = class(ClassQueue, destroy[Queue](), reinit, call1(Initializer[canon.QueueInfo].Initialize))
	c.Queue.Define("submit", call1(Queue.Submit))

	c.CommandBuffer = class(ClassCommandBuffer, destroy[CommandBuffer](), reinit,
		call1(Initializer[canon.CommandBufferInfo].Initialize))
	defineAll(c.CommandBuffer, map[string]adapt.Method{
		"begin":              call0(CommandBuffer.Begin),
		"end":                call0(CommandBuffer.End),
		"beginRenderPass":    beginRenderPass,
		"endRenderPass":      call0(CommandBuffer.EndRenderPass),
		"bindPipelineState":  call1(CommandBuffer.BindPipelineState),
		"bindInputAssembler": call1(CommandBuffer.BindInputAssembler),
		"setViewport":        call1(CommandBuffer.SetViewport),
		"setScissor":         call1(CommandBuffer.SetScissor),
		"setBlendConstants":  call1(CommandBuffer.SetBlendConstants),
		"draw":               call1(CommandBuffer.Draw),
	})

	c.Buffer = class(ClassBuffer, destroy[Buffer](), reinit, call1(Initializer[canon.BufferInfo].Initialize))
	c.Buffer.Define("update", updateBuffer)

	c.Texture = class(ClassTexture, destroy[Texture](), reinit, initializeTexture)

	c.Sampler = class(ClassSampler, destroy[Sampler](), reinit, call1(Initializer[canon.SamplerInfo].Initialize))

	c.Shader = class(ClassShader, destroy[Shader](), reinit, call1(Initializer[canon.ShaderInfo].Initialize))
	c.Shader.Define("id", func(self any, args ...any) (any, error) {
		s, err := receiver[Shader](self)
		if err != nil {
			return nil, err
		}
		return s.Hash(), nil
	})

	c.InputAssembler = class(ClassInputAssembler, destroy[InputAssembler](), reinit,
		call1(Initializer[canon.InputAssemblerInfo].Initialize))
	c.RenderPass = class(ClassRenderPass, destroy[RenderPass](), reinit,
		call1(Initializer[canon.RenderPassInfo].Initialize))
	c.Framebuffer = class(ClassFramebuffer, destroy[Framebuffer](), reinit,
		call1(Initializer[canon.FramebufferInfo].Initialize))
	c.PipelineState = class(ClassPipelineState, destroy[PipelineState](), reinit,
		call1(Initializer[canon.PipelineStateInfo].Initialize))

	if concepts.Has(ConceptBindingLayout) {
		c.BindingLayout = class(ClassBindingLayout, destroy[BindingLayout](), reinit,
			call1(Initializer[canon.BindingLayoutInfo].Initialize))
	}
	return c
}

func class(name string, release adapt.Method, reinit bool, initialize adapt.Method) *adapt.Prototype {
	p := adapt.NewPrototype(name)
	p.Define(EntryDestroy, release)
	if reinit {
		p.Define(EntryInitialize, initialize)
	}
	return p
}

func defineAll(p *adapt.Prototype, entries map[string]adapt.Method) {
	for name, m := range entries {
		p.Define(name, m)
	}
}

// createTexture takes (info, view) and creates a texture or a view.
func createTexture(self any, args ...any) (any, error) {
	d, err := receiver[Device](self)
	if err != nil {
		return nil, err
	}
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	view, err := adapt.As[bool](args[1])
	if err != nil {
		return nil, err
	}
	if view {
		info, err := adapt.As[*canon.TextureViewInfo](args[0])
		if err != nil {
			return nil, err
		}
		return result(d.CreateTextureView(info))
	}
	info, err := adapt.As[*canon.TextureInfo](args[0])
	if err != nil {
		return nil, err
	}
	return result(d.CreateTexture(info))
}

// initializeTexture takes (info, view) and re-initializes a texture as a
// fresh texture or a view.
func initializeTexture(self any, args ...any) (any, error) {
	t, err := receiver[TextureInitializer](self)
	if err != nil {
		return nil, err
	}
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	view, err := adapt.As[bool](args[1])
	if err != nil {
		return nil, err
	}
	if view {
		info, err := adapt.As[*canon.TextureViewInfo](args[0])
		if err != nil {
			return nil, err
		}
		return nil, t.InitializeView(info)
	}
	info, err := adapt.As[*canon.TextureInfo](args[0])
	if err != nil {
		return nil, err
	}
	return nil, t.Initialize(info)
}

// updateBuffer takes (data, offset, size).
func updateBuffer(self any, args ...any) (any, error) {
	b, err := receiver[Buffer](self)
	if err != nil {
		return nil, err
	}
	if err := arity(args, 3); err != nil {
		return nil, err
	}
	data, err := adapt.As[[]byte](args[0])
	if err != nil {
		return nil, err
	}
	offset, err := adapt.As[uint32](args[1])
	if err != nil {
		return nil, err
	}
	size, err := adapt.As[uint32](args[2])
	if err != nil {
		return nil, err
	}
	return nil, b.Update(data, offset, size)
}

// beginRenderPass takes (framebuffer, area, clear flags, colors, depth,
// stencil).
func beginRenderPass(self any, args ...any) (any, error) {
	cb, err := receiver[CommandBuffer](self)
	if err != nil {
		return nil, err
	}
	if err := arity(args, 6); err != nil {
		return nil, err
	}
	fb, err := adapt.As[Framebuffer](args[0])
	if err != nil {
		return nil, err
	}
	area, err := adapt.As[*canon.Rect](args[1])
	if err != nil {
		return nil, err
	}
	flags, err := adapt.As[canon.ClearFlags](args[2])
	if err != nil {
		return nil, err
	}
	colors, err := adapt.As[[]*canon.Color](args[3])
	if err != nil {
		return nil, err
	}
	depth, err := adapt.As[float32](args[4])
	if err != nil {
		return nil, err
	}
	stencil, err := adapt.As[uint32](args[5])
	if err != nil {
		return nil, err
	}
	if err := cb.BeginRenderPass(fb, area, flags, colors, depth, stencil); err != nil {
		return nil, fmt.Errorf("beginRenderPass: %w", err)
	}
	return nil, nil
}
