package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/internal/logging"
	"github.com/gogpu/gfxbind/native"
)

// Device is a native device backed by a HAL device and its queue.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	surface  hal.Surface
	spirv    bool
	info     canon.DeviceInfo
}

var (
	_ native.Device               = (*Device)(nil)
	_ native.BindingLayoutCreator = (*Device)(nil)
	_ native.TexImageCopier       = (*Device)(nil)
)

// HAL returns the underlying HAL device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) { return d.device, d.queue }

// Surface returns the configured window surface, or nil when the device
// renders offscreen.
func (d *Device) Surface() hal.Surface { return d.surface }

// Info returns the DeviceInfo the device was initialized with.
func (d *Device) Info() canon.DeviceInfo { return d.info }

// Initialize records the surface size and, when a window handle is set,
// creates and configures a surface for it.
func (d *Device) Initialize(info *canon.DeviceInfo) error {
	if info == nil {
		return fmt.Errorf("initialize: %w", ErrNilDescriptor)
	}
	d.info = *info
	if info.WindowHandle == 0 {
		return nil
	}
	if d.surface == nil {
		s, err := d.instance.CreateSurface(0, info.WindowHandle)
		if err != nil {
			return fmt.Errorf("initialize: create surface: %w", err)
		}
		d.surface = s
	}
	err := d.surface.Configure(d.device, &hal.SurfaceConfiguration{
		Width:       info.Width,
		Height:      info.Height,
		Format:      gputypes.TextureFormatBGRA8Unorm,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: gputypes.PresentModeFifo,
		AlphaMode:   gputypes.CompositeAlphaModeOpaque,
	})
	if err != nil {
		return fmt.Errorf("initialize: configure surface: %w", err)
	}
	logging.Logger().Debug("wgpu: surface configured", "width", info.Width, "height", info.Height)
	return nil
}

// CreateQueue returns a queue submitting to the device's HAL queue.
func (d *Device) CreateQueue(info *canon.QueueInfo) (native.Queue, error) {
	q := &Queue{d: d}
	if info != nil {
		q.info = *info
	}
	return q, nil
}

// CreateBuffer creates a HAL buffer of info.Size bytes rounded up to four,
// always writable from the queue. Indirect buffers also keep a host copy.
func (d *Device) CreateBuffer(info *canon.BufferInfo) (native.Buffer, error) {
	if info == nil {
		return nil, fmt.Errorf("createBuffer: %w", ErrNilDescriptor)
	}
	size := align4(uint64(info.Size))
	if size == 0 {
		size = 4
	}
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfxbind buffer",
		Size:  size,
		Usage: info.Usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("createBuffer: %w", err)
	}
	b := &Buffer{d: d, buf: buf, info: *info, size: size}
	if info.Usage.Contains(gputypes.BufferUsageIndirect) {
		b.host = make([]byte, size)
	}
	return b, nil
}

// CreateTexture creates a HAL texture with a default view covering every
// mip level and layer.
func (d *Device) CreateTexture(info *canon.TextureInfo) (native.Texture, error) {
	if info == nil {
		return nil, fmt.Errorf("createTexture: %w", ErrNilDescriptor)
	}
	desc := textureDescriptor(info)
	tex, err := d.device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("createTexture: %w", err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:           desc.Label,
		Format:          info.Format,
		Dimension:       defaultViewDimension(info, desc.Size.DepthOrArrayLayers),
		Aspect:          gputypes.TextureAspectAll,
		MipLevelCount:   desc.MipLevelCount,
		ArrayLayerCount: desc.Size.DepthOrArrayLayers,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("createTexture: view: %w", err)
	}
	return &Texture{
		d:      d,
		tex:    tex,
		view:   view,
		format: info.Format,
		width:  desc.Size.Width,
		height: desc.Size.Height,
	}, nil
}

// CreateTextureView creates a view over info.Texture. An undefined format
// inherits the parent's; zero level and layer counts mean one.
func (d *Device) CreateTextureView(info *canon.TextureViewInfo) (native.Texture, error) {
	if info == nil {
		return nil, fmt.Errorf("createTextureView: %w", ErrNilDescriptor)
	}
	parent, err := own[*Texture](info.Texture)
	if err != nil || parent == nil {
		return nil, fmt.Errorf("createTextureView: texture: %w", ErrForeignObject)
	}
	format := info.Format
	if format == gputypes.TextureFormatUndefined {
		format = parent.format
	}
	view, err := d.device.CreateTextureView(parent.tex, &hal.TextureViewDescriptor{
		Label:           "gfxbind texture view",
		Format:          format,
		Dimension:       info.Type,
		Aspect:          gputypes.TextureAspectAll,
		BaseMipLevel:    info.BaseLevel,
		MipLevelCount:   atLeastOne(info.LevelCount),
		BaseArrayLayer:  info.BaseLayer,
		ArrayLayerCount: atLeastOne(info.LayerCount),
	})
	if err != nil {
		return nil, fmt.Errorf("createTextureView: %w", err)
	}
	return &Texture{
		d:      d,
		tex:    parent.tex,
		view:   view,
		format: format,
		width:  parent.width,
		height: parent.height,
		isView: true,
	}, nil
}

// CreateSampler creates a HAL sampler.
func (d *Device) CreateSampler(info *canon.SamplerInfo) (native.Sampler, error) {
	if info == nil {
		return nil, fmt.Errorf("createSampler: %w", ErrNilDescriptor)
	}
	s, err := d.device.CreateSampler(samplerDescriptor(info))
	if err != nil {
		return nil, fmt.Errorf("createSampler: %w", err)
	}
	return &Sampler{d: d, sampler: s}, nil
}

// CreateInputAssembler groups buffers created by this device. The index
// and indirect buffers may be nil.
func (d *Device) CreateInputAssembler(info *canon.InputAssemblerInfo) (native.InputAssembler, error) {
	if info == nil {
		return nil, fmt.Errorf("createInputAssembler: %w", ErrNilDescriptor)
	}
	ia := &InputAssembler{attributes: info.Attributes}
	for i, v := range info.VertexBuffers {
		b, err := own[*Buffer](v)
		if err != nil || b == nil {
			return nil, fmt.Errorf("createInputAssembler: vertex buffer %d: %w", i, ErrForeignObject)
		}
		ia.vertexBuffers = append(ia.vertexBuffers, b)
	}
	var err error
	if ia.indexBuffer, err = own[*Buffer](info.IndexBuffer); err != nil {
		return nil, fmt.Errorf("createInputAssembler: index buffer: %w", err)
	}
	if ia.indirectBuffer, err = own[*Buffer](info.IndirectBuffer); err != nil {
		return nil, fmt.Errorf("createInputAssembler: indirect buffer: %w", err)
	}
	return ia, nil
}

// CreateRenderPass keeps info for BeginRenderPass and pipeline creation.
// HAL has no render pass object.
func (d *Device) CreateRenderPass(info *canon.RenderPassInfo) (native.RenderPass, error) {
	if info == nil {
		return nil, fmt.Errorf("createRenderPass: %w", ErrNilDescriptor)
	}
	return &RenderPass{info: *info}, nil
}

// CreateFramebuffer binds textures of this device to a render pass.
func (d *Device) CreateFramebuffer(info *canon.FramebufferInfo) (native.Framebuffer, error) {
	if info == nil {
		return nil, fmt.Errorf("createFramebuffer: %w", ErrNilDescriptor)
	}
	rp, err := own[*RenderPass](info.RenderPass)
	if err != nil || rp == nil {
		return nil, fmt.Errorf("createFramebuffer: render pass: %w", ErrForeignObject)
	}
	fb := &Framebuffer{renderPass: rp}
	for i, c := range info.ColorTextures {
		t, err := own[*Texture](c)
		if err != nil || t == nil {
			return nil, fmt.Errorf("createFramebuffer: color texture %d: %w", i, ErrForeignObject)
		}
		fb.colors = append(fb.colors, t)
	}
	if fb.depthStencil, err = own[*Texture](info.DepthStencilTexture); err != nil {
		return nil, fmt.Errorf("createFramebuffer: depth-stencil texture: %w", err)
	}
	return fb, nil
}

// CreateBindingLayout creates a bind group layout from the shader's
// uniform blocks and samplers.
func (d *Device) CreateBindingLayout(info *canon.BindingLayoutInfo) (native.BindingLayout, error) {
	if info == nil {
		return nil, fmt.Errorf("createBindingLayout: %w", ErrNilDescriptor)
	}
	s, err := own[*Shader](info.Shader)
	if err != nil || s == nil {
		return nil, fmt.Errorf("createBindingLayout: shader: %w", ErrForeignObject)
	}
	layout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   s.info.Name,
		Entries: bindGroupEntries(&s.info),
	})
	if err != nil {
		return nil, fmt.Errorf("createBindingLayout: %w", err)
	}
	return &BindingLayout{d: d, layout: layout}, nil
}

// CreatePipelineState creates a render pipeline with its bind group and
// pipeline layouts. The shader must have a vertex stage; color targets
// and depth-stencil state follow the render pass attachments.
func (d *Device) CreatePipelineState(info *canon.PipelineStateInfo) (native.PipelineState, error) {
	if info == nil {
		return nil, fmt.Errorf("createPipelineState: %w", ErrNilDescriptor)
	}
	s, err := own[*Shader](info.Shader)
	if err != nil || s == nil {
		return nil, fmt.Errorf("createPipelineState: shader: %w", ErrForeignObject)
	}
	rp, err := own[*RenderPass](info.RenderPass)
	if err != nil || rp == nil {
		return nil, fmt.Errorf("createPipelineState: render pass: %w", ErrForeignObject)
	}
	vs := s.Module(gputypes.ShaderStageVertex)
	if vs == nil {
		return nil, fmt.Errorf("createPipelineState %q: %w", s.info.Name, ErrNoVertexStage)
	}

	ps := &PipelineState{d: d}
	if entries := bindGroupEntries(&s.info); len(entries) > 0 {
		bgl, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{Label: s.info.Name, Entries: entries})
		if err != nil {
			return nil, fmt.Errorf("createPipelineState: bind group layout: %w", err)
		}
		ps.bindGroupLayout = bgl
	}
	var groups []hal.BindGroupLayout
	if ps.bindGroupLayout != nil {
		groups = []hal.BindGroupLayout{ps.bindGroupLayout}
	}
	ps.layout, err = d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:              s.info.Name,
		BindGroupLayouts:   groups,
		PushConstantRanges: pushConstantRanges(info.PushConstantRanges),
	})
	if err != nil {
		ps.Destroy()
		return nil, fmt.Errorf("createPipelineState: pipeline layout: %w", err)
	}

	var attrs []canon.Attribute
	if info.InputState != nil {
		attrs = info.InputState.Attributes
	}
	desc := &hal.RenderPipelineDescriptor{
		Label:       s.info.Name,
		Layout:      ps.layout,
		Vertex:      hal.VertexState{Module: vs, EntryPoint: entryPoint, Buffers: vertexLayouts(attrs)},
		Primitive:   primitiveState(info.Primitive, info.RasterizerState),
		Multisample: gputypes.DefaultMultisampleState(),
	}
	if fs := s.Module(gputypes.ShaderStageFragment); fs != nil {
		desc.Fragment = &hal.FragmentState{
			Module:     fs,
			EntryPoint: entryPoint,
			Targets:    colorTargets(rp.info.ColorAttachments, info.BlendState),
		}
	}
	if ds := rp.info.DepthStencilAttachment; ds != nil {
		desc.DepthStencil = depthStencilState(ds.Format, info.DepthStencilState, info.RasterizerState)
	}
	if info.BlendState != nil {
		desc.Multisample.AlphaToCoverageEnabled = info.BlendState.IsA2C
	}
	ps.pipeline, err = d.device.CreateRenderPipeline(desc)
	if err != nil {
		ps.Destroy()
		return nil, fmt.Errorf("createPipelineState %q: %w", s.info.Name, err)
	}
	return ps, nil
}

// CopyBuffersToTexture writes buffers[i] into the texture region
// regions[i] through the queue.
func (d *Device) CopyBuffersToTexture(buffers [][]byte, dst native.Texture, regions []canon.BufferTextureCopy) error {
	t, err := own[*Texture](dst)
	if err != nil || t == nil {
		return fmt.Errorf("copyBuffersToTexture: texture: %w", ErrForeignObject)
	}
	if len(buffers) < len(regions) {
		return fmt.Errorf("copyBuffersToTexture: %d buffers for %d regions", len(buffers), len(regions))
	}
	bpt := bytesPerTexel(t.format)
	for i := range regions {
		r := &regions[i]
		dstTex := &hal.ImageCopyTexture{Texture: t.tex, Aspect: gputypes.TextureAspectAll}
		extent := &hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1}
		if r.TexOffset != nil {
			dstTex.Origin = hal.Origin3D{X: uint32(r.TexOffset.X), Y: uint32(r.TexOffset.Y), Z: uint32(r.TexOffset.Z)}
		}
		if r.TexSubres != nil {
			dstTex.MipLevel = r.TexSubres.MipLevel
			dstTex.Origin.Z += r.TexSubres.BaseArrayLayer
			extent.DepthOrArrayLayers = atLeastOne(r.TexSubres.LayerCount)
		}
		if r.TexExtent != nil {
			extent.Width = r.TexExtent.Width
			extent.Height = r.TexExtent.Height
			if r.TexExtent.Depth > 1 {
				extent.DepthOrArrayLayers = r.TexExtent.Depth
			}
		}
		rowTexels := r.BuffStride
		if rowTexels == 0 {
			rowTexels = extent.Width
		}
		rows := r.BuffTexHeight
		if rows == 0 {
			rows = extent.Height
		}
		layout := &hal.ImageDataLayout{BytesPerRow: rowTexels * bpt, RowsPerImage: rows}
		if err := d.queue.WriteTexture(dstTex, buffers[i], layout, extent); err != nil {
			return fmt.Errorf("copyBuffersToTexture: region %d: %w", i, err)
		}
	}
	return nil
}

// CopyTexImagesToTexture uploads decoded image pixels. Images are tightly
// packed RGBA rows, so the upload is a buffer copy.
func (d *Device) CopyTexImagesToTexture(buffers [][]byte, dst native.Texture, regions []canon.BufferTextureCopy) error {
	return d.CopyBuffersToTexture(buffers, dst, regions)
}

// Destroy waits for the device to go idle and releases it with its
// surface and instance.
func (d *Device) Destroy() {
	if d.device == nil {
		return
	}
	if err := d.device.WaitIdle(); err != nil {
		logging.Logger().Warn("wgpu: wait idle failed", "error", err)
	}
	if d.surface != nil {
		d.surface.Unconfigure(d.device)
		d.surface.Destroy()
		d.surface = nil
	}
	d.device.Destroy()
	d.device = nil
	d.instance.Destroy()
}

// own asserts that v was created by this backend. A nil v yields the zero T.
func own[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrForeignObject, v)
	}
	return t, nil
}
