package record

import (
	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/native"
)

// Device records device calls and hands out recording objects.
type Device struct {
	log    *Log
	nextID uint32
	info   *canon.DeviceInfo
}

var (
	_ native.Device               = (*Device)(nil)
	_ native.BindingLayoutCreator = (*Device)(nil)
	_ native.TexImageCopier       = (*Device)(nil)
)

// Log returns the device's call log.
func (d *Device) Log() *Log { return d.log }

// Info returns the DeviceInfo of the last initialize call.
func (d *Device) Info() *canon.DeviceInfo { return d.info }

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// Initialize records info and keeps it for Info.
func (d *Device) Initialize(info *canon.DeviceInfo) error {
	d.log.add(native.ClassDevice, "initialize", info)
	d.info = info
	return nil
}

// CreateQueue records the call and returns a recording queue.
func (d *Device) CreateQueue(info *canon.QueueInfo) (native.Queue, error) {
	d.log.add(native.ClassDevice, "createQueue", info)
	return &Queue{object: d.object(native.ClassQueue), Info: info}, nil
}

// CreateCommandBuffer records the call and returns a recording command
// buffer.
func (d *Device) CreateCommandBuffer(info *canon.CommandBufferInfo) (native.CommandBuffer, error) {
	d.log.add(native.ClassDevice, "createCommandBuffer", info)
	return &CommandBuffer{object: d.object(native.ClassCommandBuffer), Info: info}, nil
}

// CreateBuffer records the call and returns a buffer holding info.Size
// zero bytes.
func (d *Device) CreateBuffer(info *canon.BufferInfo) (native.Buffer, error) {
	d.log.add(native.ClassDevice, "createBuffer", info)
	b := &Buffer{object: d.object(native.ClassBuffer)}
	b.reset(info)
	return b, nil
}

// CreateTexture records the call and returns a fresh texture.
func (d *Device) CreateTexture(info *canon.TextureInfo) (native.Texture, error) {
	d.log.add(native.ClassDevice, "createTexture", info)
	return &Texture{object: d.object(native.ClassTexture), Info: info}, nil
}

// CreateTextureView records the call and returns a texture view.
func (d *Device) CreateTextureView(info *canon.TextureViewInfo) (native.Texture, error) {
	d.log.add(native.ClassDevice, "createTextureView", info)
	return &Texture{object: d.object(native.ClassTexture), View: info}, nil
}

// CreateSampler records the call and returns a recording sampler.
func (d *Device) CreateSampler(info *canon.SamplerInfo) (native.Sampler, error) {
	d.log.add(native.ClassDevice, "createSampler", info)
	return &Object[canon.SamplerInfo]{object: d.object(native.ClassSampler), Info: info}, nil
}

// CreateShader records the call and returns a shader whose hash is its
// object ID.
func (d *Device) CreateShader(info *canon.ShaderInfo) (native.Shader, error) {
	d.log.add(native.ClassDevice, "createShader", info)
	o := d.object(native.ClassShader)
	return &Shader{Object: Object[canon.ShaderInfo]{object: o, Info: info}}, nil
}

// CreateInputAssembler records the call and returns a recording input
// assembler.
func (d *Device) CreateInputAssembler(info *canon.InputAssemblerInfo) (native.InputAssembler, error) {
	d.log.add(native.ClassDevice, "createInputAssembler", info)
	return &Object[canon.InputAssemblerInfo]{object: d.object(native.ClassInputAssembler), Info: info}, nil
}

// CreateRenderPass records the call and returns a recording render pass.
func (d *Device) CreateRenderPass(info *canon.RenderPassInfo) (native.RenderPass, error) {
	d.log.add(native.ClassDevice, "createRenderPass", info)
	return &Object[canon.RenderPassInfo]{object: d.object(native.ClassRenderPass), Info: info}, nil
}

// CreateFramebuffer records the call and returns a recording framebuffer.
func (d *Device) CreateFramebuffer(info *canon.FramebufferInfo) (native.Framebuffer, error) {
	d.log.add(native.ClassDevice, "createFramebuffer", info)
	return &Object[canon.FramebufferInfo]{object: d.object(native.ClassFramebuffer), Info: info}, nil
}

// CreateBindingLayout records the call and returns a recording binding
// layout.
func (d *Device) CreateBindingLayout(info *canon.BindingLayoutInfo) (native.BindingLayout, error) {
	d.log.add(native.ClassDevice, "createBindingLayout", info)
	return &Object[canon.BindingLayoutInfo]{object: d.object(native.ClassBindingLayout), Info: info}, nil
}

// CreatePipelineState records the call and returns a recording pipeline.
func (d *Device) CreatePipelineState(info *canon.PipelineStateInfo) (native.PipelineState, error) {
	d.log.add(native.ClassDevice, "createPipelineState", info)
	return &Object[canon.PipelineStateInfo]{object: d.object(native.ClassPipelineState), Info: info}, nil
}

// CopyBuffersToTexture records the upload without copying anything.
func (d *Device) CopyBuffersToTexture(buffers [][]byte, dst native.Texture, regions []canon.BufferTextureCopy) error {
	d.log.add(native.ClassDevice, "copyBuffersToTexture", buffers, dst, regions)
	return nil
}

// CopyTexImagesToTexture records the extracted pixel buffers without
// copying anything.
func (d *Device) CopyTexImagesToTexture(buffers [][]byte, dst native.Texture, regions []canon.BufferTextureCopy) error {
	d.log.add(native.ClassDevice, "copyTexImagesToTexture", buffers, dst, regions)
	return nil
}

// Destroy records the call.
func (d *Device) Destroy() {
	d.log.add(native.ClassDevice, "destroy")
}

func (d *Device) object(class string) object {
	return object{log: d.log, class: class, ID: d.id()}
}
