// Package desc defines the descriptors callers hand to the graphics API.
//
// Descriptors may be partially populated. A nil nested pointer or a nil
// list means the field is absent; zero scalars mean "use the default".
// Records with no nested values or references share their layout with the
// canonical struct of the same name in package canon.
package desc

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/canon"
)

// Resource is anything that wraps a native object created by a backend:
// buffers, textures, shaders, render passes and the like.
type Resource interface {
	Native() any
}

type (
	Offset                 canon.Offset
	Rect                   canon.Rect
	Extent                 canon.Extent
	TextureSubres          canon.TextureSubres
	Viewport               canon.Viewport
	Color                  canon.Color
	BufferInfo             canon.BufferInfo
	ShaderMacro            canon.ShaderMacro
	Uniform                canon.Uniform
	UniformSampler         canon.UniformSampler
	Attribute              canon.Attribute
	ColorAttachment        canon.ColorAttachment
	DepthStencilAttachment canon.DepthStencilAttachment
	SubPass                canon.SubPass
	PushConstantRange      canon.PushConstantRange
	RasterizerState        canon.RasterizerState
	DepthStencilState      canon.DepthStencilState
	BlendTarget            canon.BlendTarget
	FormatInfo             canon.FormatInfo
)

// BufferTextureCopy describes one region of a buffer-to-texture upload.
type BufferTextureCopy struct {
	BuffStride    uint32
	BuffTexHeight uint32
	TexOffset     *Offset
	TexExtent     *Extent
	TexSubres     *TextureSubres
}

// DeviceInfo describes device initialization. The surface size and window
// handle are taken from the environment, not from the descriptor.
type DeviceInfo struct {
	NativeWidth  uint32
	NativeHeight uint32
}

// TextureInfo describes either a fresh texture or, when Texture is set, a
// view over an existing one. Type, Usage, Width, Height, Depth, ArrayLayer,
// MipLevel, Samples and Flags apply to fresh textures; ViewType, BaseLevel,
// LevelCount, BaseLayer and LayerCount apply to views. Format applies to both.
type TextureInfo struct {
	Texture Resource

	Type       gputypes.TextureDimension
	Usage      gputypes.TextureUsage
	Format     gputypes.TextureFormat
	Width      uint32
	Height     uint32
	Depth      uint32
	ArrayLayer uint32
	MipLevel   uint32
	Samples    uint32
	Flags      canon.TextureFlags

	ViewType   gputypes.TextureViewDimension
	BaseLevel  uint32
	LevelCount uint32
	BaseLayer  uint32
	LayerCount uint32
}

// SamplerInfo describes a sampler. A nil BorderColor keeps the color most
// recently converted.
type SamplerInfo struct {
	Name          string
	MinFilter     gputypes.FilterMode
	MagFilter     gputypes.FilterMode
	MipFilter     gputypes.MipmapFilterMode
	AddressU      gputypes.AddressMode
	AddressV      gputypes.AddressMode
	AddressW      gputypes.AddressMode
	MaxAnisotropy uint32
	CmpFunc       gputypes.CompareFunction
	BorderColor   *Color
	MinLOD        float32
	MaxLOD        float32
	MipLODBias    float32
}

// UniformBlock declares a uniform buffer binding and its members.
type UniformBlock struct {
	ShaderStages gputypes.ShaderStages
	Binding      uint32
	Name         string
	Members      []Uniform
}

// ShaderStage is the source of one stage with its macros.
type ShaderStage struct {
	Type   gputypes.ShaderStage
	Source string
	Macros []ShaderMacro
}

// ShaderInfo describes a shader program. Nil lists are absent.
type ShaderInfo struct {
	Name       string
	Stages     []ShaderStage
	Attributes []Attribute
	Blocks     []UniformBlock
	Samplers   []UniformSampler
}

// InputAssemblerInfo binds buffers to a vertex layout. IndexBuffer and
// IndirectBuffer may be nil.
type InputAssemblerInfo struct {
	Attributes     []Attribute
	VertexBuffers  []Resource
	IndexBuffer    Resource
	IndirectBuffer Resource
}

// RenderPassInfo describes a render pass. A nil DepthStencilAttachment
// means the pass has none.
type RenderPassInfo struct {
	ColorAttachments       []ColorAttachment
	DepthStencilAttachment *DepthStencilAttachment
	SubPasses              []SubPass
}

// FramebufferInfo binds textures to the attachments of RenderPass.
type FramebufferInfo struct {
	RenderPass            Resource
	ColorTextures         []Resource
	DepthStencilTexture   Resource
	ColorMipmapLevels     []uint32
	DepStencilMipmapLevel uint32
}

// BindingLayoutInfo derives a binding layout from Shader.
type BindingLayoutInfo struct {
	Shader Resource
}

// BindingUnit is one bound resource. Only the reference matching Type
// needs to be set.
type BindingUnit struct {
	ShaderStages gputypes.ShaderStages
	Binding      uint32
	Type         canon.DescriptorType
	Name         string
	Count        uint32
	Buffer       Resource
	Texture      Resource
	Sampler      Resource
}

// InputState lists the vertex attributes a pipeline reads.
type InputState struct {
	Attributes []Attribute
}

// BlendState describes pipeline blending. A nil BlendColor keeps the color
// most recently converted.
type BlendState struct {
	IsA2C      bool
	IsIndepend bool
	BlendColor *Color
	Targets    []BlendTarget
}

// PipelineStateInfo describes a graphics pipeline. Nil state records are
// absent and leave the backend's defaults in place.
type PipelineStateInfo struct {
	Primitive          gputypes.PrimitiveTopology
	Shader             Resource
	InputState         *InputState
	RasterizerState    *RasterizerState
	DepthStencilState  *DepthStencilState
	BlendState         *BlendState
	DynamicStates      canon.DynamicStateFlags
	RenderPass         Resource
	PushConstantRanges []PushConstantRange
}

// CommandBufferInfo describes a command buffer recorded for Queue.
type CommandBufferInfo struct {
	Queue Resource
	Type  canon.CommandBufferType
}

// QueueInfo describes a queue. A nil ForceSync means false.
type QueueInfo struct {
	Type      canon.QueueType
	ForceSync *bool
}

// DrawInfo holds the parameters of one indirect draw.
type DrawInfo struct {
	VertexCount   uint32
	FirstVertex   uint32
	IndexCount    uint32
	FirstIndex    uint32
	VertexOffset  int32
	InstanceCount uint32
	FirstInstance uint32
}

// IndirectBuffer is the update source for buffers created with
// gputypes.BufferUsageIndirect.
type IndirectBuffer struct {
	DrawInfos []DrawInfo
}
