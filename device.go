package gfxbind

import (
	"github.com/gogpu/gfxbind/desc"
)

// Device creates the objects of one backend. Every method converts its
// descriptor arguments and calls the backend's entry of the same name.
type Device struct {
	object
}

// Native returns the backend's device object.
func (d *Device) Native() any {
	if d == nil {
		return nil
	}
	return d.native
}

// Initialize (re)initializes the device. The surface size and window
// handle come from the bridge options, not from info.
func (d *Device) Initialize(info *desc.DeviceInfo) error {
	return d.exec("initialize", info)
}

// CreateQueue creates a queue. A nil ForceSync means false.
func (d *Device) CreateQueue(info *desc.QueueInfo) (*Queue, error) {
	o, err := d.child(d.bridge.classes.Queue, "createQueue", info)
	if err != nil {
		return nil, err
	}
	return &Queue{o}, nil
}

// CreateCommandBuffer creates a command buffer for info.Queue.
func (d *Device) CreateCommandBuffer(info *desc.CommandBufferInfo) (*CommandBuffer, error) {
	o, err := d.child(d.bridge.classes.CommandBuffer, "createCommandBuffer", info)
	if err != nil {
		return nil, err
	}
	return &CommandBuffer{o}, nil
}

// CreateBuffer creates a buffer of info.Size bytes. Buffers with
// gputypes.BufferUsageIndirect are filled with Update and a
// *desc.IndirectBuffer.
func (d *Device) CreateBuffer(info *desc.BufferInfo) (*Buffer, error) {
	o, err := d.child(d.bridge.classes.Buffer, "createBuffer", info)
	if err != nil {
		return nil, err
	}
	return &Buffer{o}, nil
}

// CreateTexture creates a texture, or a view over info.Texture when it is
// set.
func (d *Device) CreateTexture(info *desc.TextureInfo) (*Texture, error) {
	o, err := d.child(d.bridge.classes.Texture, "createTexture", info)
	if err != nil {
		return nil, err
	}
	return &Texture{o}, nil
}

// CreateSampler creates a sampler. The border color passes through the
// scratch Color.
func (d *Device) CreateSampler(info *desc.SamplerInfo) (*Sampler, error) {
	o, err := d.child(d.bridge.classes.Sampler, "createSampler", info)
	if err != nil {
		return nil, err
	}
	return &Sampler{o}, nil
}

// CreateShader compiles info's stages, attributes, blocks and samplers into
// a shader program.
func (d *Device) CreateShader(info *desc.ShaderInfo) (*Shader, error) {
	o, err := d.child(d.bridge.classes.Shader, "createShader", info)
	if err != nil {
		return nil, err
	}
	return &Shader{o}, nil
}

// CreateInputAssembler binds info's vertex, index and indirect buffers.
func (d *Device) CreateInputAssembler(info *desc.InputAssemblerInfo) (*InputAssembler, error) {
	o, err := d.child(d.bridge.classes.InputAssembler, "createInputAssembler", info)
	if err != nil {
		return nil, err
	}
	return &InputAssembler{o}, nil
}

// CreateRenderPass creates a render pass from color attachments, an
// optional depth-stencil attachment and sub-passes.
func (d *Device) CreateRenderPass(info *desc.RenderPassInfo) (*RenderPass, error) {
	o, err := d.child(d.bridge.classes.RenderPass, "createRenderPass", info)
	if err != nil {
		return nil, err
	}
	return &RenderPass{o}, nil
}

// CreateFramebuffer binds color and depth-stencil textures to
// info.RenderPass.
func (d *Device) CreateFramebuffer(info *desc.FramebufferInfo) (*Framebuffer, error) {
	o, err := d.child(d.bridge.classes.Framebuffer, "createFramebuffer", info)
	if err != nil {
		return nil, err
	}
	return &Framebuffer{o}, nil
}

// CreateBindingLayout fails with adapt.ErrNoEntry on backends without
// explicit binding layouts.
func (d *Device) CreateBindingLayout(info *desc.BindingLayoutInfo) (*BindingLayout, error) {
	o, err := d.child(d.bridge.classes.BindingLayout, "createBindingLayout", info)
	if err != nil {
		return nil, err
	}
	return &BindingLayout{o}, nil
}

// CreatePipelineState builds a graphics pipeline. The blend color passes
// through the scratch Color.
func (d *Device) CreatePipelineState(info *desc.PipelineStateInfo) (*PipelineState, error) {
	o, err := d.child(d.bridge.classes.PipelineState, "createPipelineState", info)
	if err != nil {
		return nil, err
	}
	return &PipelineState{o}, nil
}

// CopyBuffersToTexture uploads buffers[i] into regions[i] of dst.
func (d *Device) CopyBuffersToTexture(buffers [][]byte, dst *Texture, regions []desc.BufferTextureCopy) error {
	return d.exec("copyBuffersToTexture", buffers, dst, regions)
}

// CopyTexImagesToTexture uploads image sources, each a *desc.CanvasElement
// or *desc.ImageElement, into regions of dst. An unreadable source cancels
// the whole upload with convert.ErrUnknownPixelSource. Backends that cannot
// upload images directly fail with adapt.ErrNoEntry.
func (d *Device) CopyTexImagesToTexture(images []any, dst *Texture, regions []desc.BufferTextureCopy) error {
	return d.exec("copyTexImagesToTexture", images, dst, regions)
}
