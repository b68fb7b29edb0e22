// Package native declares the contract native graphics backends implement.
//
// Backends accept canonical arguments only (see package canon). Their
// objects are reached through adapt.Prototype tables built by Build, one
// table per class, holding an entry per native method the backend
// supports. Concept-dependent methods live on optional interfaces so a
// backend that lacks a concept simply does not implement them.
package native

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/canon"
)

// Device creates every other native object.
type Device interface {
	Initialize(info *canon.DeviceInfo) error
	CreateQueue(info *canon.QueueInfo) (Queue, error)
	CreateCommandBuffer(info *canon.CommandBufferInfo) (CommandBuffer, error)
	CreateBuffer(info *canon.BufferInfo) (Buffer, error)
	CreateTexture(info *canon.TextureInfo) (Texture, error)
	CreateTextureView(info *canon.TextureViewInfo) (Texture, error)
	CreateSampler(info *canon.SamplerInfo) (Sampler, error)
	CreateShader(info *canon.ShaderInfo) (Shader, error)
	CreateInputAssembler(info *canon.InputAssemblerInfo) (InputAssembler, error)
	CreateRenderPass(info *canon.RenderPassInfo) (RenderPass, error)
	CreateFramebuffer(info *canon.FramebufferInfo) (Framebuffer, error)
	CreatePipelineState(info *canon.PipelineStateInfo) (PipelineState, error)
	CopyBuffersToTexture(buffers [][]byte, dst Texture, regions []canon.BufferTextureCopy) error
	Destroy()
}

// BindingLayoutCreator is implemented by devices with explicit binding
// layouts.
type BindingLayoutCreator interface {
	CreateBindingLayout(info *canon.BindingLayoutInfo) (BindingLayout, error)
}

// TexImageCopier is implemented by devices that upload decoded images
// directly.
type TexImageCopier interface {
	CopyTexImagesToTexture(buffers [][]byte, dst Texture, regions []canon.BufferTextureCopy) error
}

// Initializer is implemented by objects that can be re-initialized in place
// from a new descriptor.
type Initializer[T any] interface {
	Initialize(info *T) error
}

// TextureInitializer re-initializes a texture as a fresh texture or as a
// view.
type TextureInitializer interface {
	Initialize(info *canon.TextureInfo) error
	InitializeView(info *canon.TextureViewInfo) error
}

// Queue submits recorded command buffers.
type Queue interface {
	Submit(cmdBuffs []CommandBuffer) error
	Destroy()
}

// CommandBuffer records a render pass.
type CommandBuffer interface {
	Begin() error
	End() error
	BeginRenderPass(fb Framebuffer, area *canon.Rect, clear canon.ClearFlags, colors []*canon.Color, depth float32, stencil uint32) error
	EndRenderPass() error
	BindPipelineState(ps PipelineState) error
	BindInputAssembler(ia InputAssembler) error
	SetViewport(vp *canon.Viewport) error
	SetScissor(rect *canon.Rect) error
	SetBlendConstants(c *canon.Color) error
	Draw(ia InputAssembler) error
	Destroy()
}

// Buffer is a native buffer.
type Buffer interface {
	Usage() gputypes.BufferUsage
	Size() uint32
	Update(data []byte, offset, size uint32) error
	Destroy()
}

// Texture is a native texture or texture view.
type Texture interface {
	Format() gputypes.TextureFormat
	IsView() bool
	Destroy()
}

// Shader is a native shader program.
type Shader interface {
	Hash() uint32
	Destroy()
}

type (
	Sampler        interface{ Destroy() }
	InputAssembler interface{ Destroy() }
	RenderPass     interface{ Destroy() }
	Framebuffer    interface{ Destroy() }
	BindingLayout  interface{ Destroy() }
	PipelineState  interface{ Destroy() }
)
