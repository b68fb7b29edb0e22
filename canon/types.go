package canon

import "github.com/gogpu/gputypes"

// Offset is a texel offset inside a texture.
type Offset struct {
	X int32
	Y int32
	Z int32
}

// Rect is an integer rectangle, used for scissors and render areas.
type Rect struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// Extent is the size of a texture region.
type Extent struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// TextureSubres selects a mip level and a range of array layers.
type TextureSubres struct {
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// BufferTextureCopy describes one region of a buffer-to-texture upload.
type BufferTextureCopy struct {
	BuffStride    uint32
	BuffTexHeight uint32
	TexOffset     *Offset
	TexExtent     *Extent
	TexSubres     *TextureSubres
}

// Viewport maps normalized device coordinates to the framebuffer.
type Viewport struct {
	Left     int32
	Top      int32
	Width    uint32
	Height   uint32
	MinDepth float32
	MaxDepth float32
}

// Color is a linear RGBA color.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// DeviceInfo carries the window the device renders to.
type DeviceInfo struct {
	WindowHandle uintptr
	Width        uint32
	Height       uint32
	NativeWidth  uint32
	NativeHeight uint32
	SharedCtx    any
}

// BufferInfo describes a buffer to create.
type BufferInfo struct {
	Usage    gputypes.BufferUsage
	MemUsage MemoryUsage
	Stride   uint32
	Size     uint32
	Flags    BufferFlags
}

// TextureInfo describes a texture to create.
type TextureInfo struct {
	Type       gputypes.TextureDimension
	Usage      gputypes.TextureUsage
	Format     gputypes.TextureFormat
	Width      uint32
	Height     uint32
	Depth      uint32
	ArrayLayer uint32
	MipLevel   uint32
	Samples    uint32
	Flags      TextureFlags
}

// TextureViewInfo describes a view over an existing native texture.
type TextureViewInfo struct {
	Texture    any
	Type       gputypes.TextureViewDimension
	Format     gputypes.TextureFormat
	BaseLevel  uint32
	LevelCount uint32
	BaseLayer  uint32
	LayerCount uint32
}

// SamplerInfo describes a sampler. BorderColor is held by value.
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
	BorderColor   Color
	MinLOD        float32
	MaxLOD        float32
	MipLODBias    float32
}

// ShaderMacro is a preprocessor definition injected into a shader stage.
type ShaderMacro struct {
	Macro string
	Value string
}

// Uniform is one member of a uniform block.
type Uniform struct {
	Name  string
	Type  UniformType
	Count uint32
}

// UniformBlock is a uniform buffer binding declared by a shader.
type UniformBlock struct {
	ShaderStages gputypes.ShaderStages
	Binding      uint32
	Name         string
	Members      []Uniform
}

// UniformSampler is a combined texture-sampler binding declared by a shader.
type UniformSampler struct {
	ShaderStages gputypes.ShaderStages
	Binding      uint32
	Name         string
	Type         UniformType
	Count        uint32
}

// ShaderStage is the source of one programmable stage.
type ShaderStage struct {
	Type   gputypes.ShaderStage
	Source string
	Macros []ShaderMacro
}

// ShaderInfo describes a shader program.
type ShaderInfo struct {
	Name       string
	Stages     []ShaderStage
	Attributes []Attribute
	Blocks     []UniformBlock
	Samplers   []UniformSampler
}

// Attribute is a vertex input.
type Attribute struct {
	Name         string
	Format       gputypes.VertexFormat
	IsNormalized bool
	Stream       uint32
	IsInstanced  bool
	Location     uint32
}

// InputAssemblerInfo binds vertex, index and indirect buffers together.
type InputAssemblerInfo struct {
	Attributes     []Attribute
	VertexBuffers  []any
	IndexBuffer    any
	IndirectBuffer any
}

// ColorAttachment describes a color target of a render pass.
type ColorAttachment struct {
	Format      gputypes.TextureFormat
	LoadOp      gputypes.LoadOp
	StoreOp     gputypes.StoreOp
	SampleCount uint32
	BeginLayout TextureLayout
	EndLayout   TextureLayout
}

// DepthStencilAttachment describes the depth-stencil target of a render pass.
type DepthStencilAttachment struct {
	Format         gputypes.TextureFormat
	DepthLoadOp    gputypes.LoadOp
	DepthStoreOp   gputypes.StoreOp
	StencilLoadOp  gputypes.LoadOp
	StencilStoreOp gputypes.StoreOp
	SampleCount    uint32
	BeginLayout    TextureLayout
	EndLayout      TextureLayout
}

// SubPass lists the attachments one sub-pass reads and writes, by index.
type SubPass struct {
	BindPoint    PipelineBindPoint
	Inputs       []uint32
	Colors       []uint32
	Resolves     []uint32
	DepthStencil int32
	Preserves    []uint32
}

// RenderPassInfo describes a render pass.
type RenderPassInfo struct {
	ColorAttachments       []ColorAttachment
	DepthStencilAttachment *DepthStencilAttachment
	SubPasses              []SubPass
}

// FramebufferInfo binds textures to the attachments of a render pass.
type FramebufferInfo struct {
	RenderPass            any
	ColorTextures         []any
	DepthStencilTexture   any
	ColorMipmapLevels     []uint32
	DepStencilMipmapLevel uint32
}

// BindingLayoutInfo derives a binding layout from a shader.
type BindingLayoutInfo struct {
	Shader any
}

// BindingUnit is one bound resource in a binding layout.
type BindingUnit struct {
	ShaderStages gputypes.ShaderStages
	Binding      uint32
	Type         DescriptorType
	Name         string
	Count        uint32
	Buffer       any
	Texture      any
	Sampler      any
}

// PushConstantRange is a range of push constants visible to some stages.
type PushConstantRange struct {
	ShaderType gputypes.ShaderStages
	Offset     uint32
	Count      uint32
}

// InputState lists the vertex attributes a pipeline consumes.
type InputState struct {
	Attributes []Attribute
}

// RasterizerState controls primitive rasterization.
type RasterizerState struct {
	IsDiscard      bool
	PolygonMode    PolygonMode
	ShadeModel     ShadeModel
	CullMode       gputypes.CullMode
	IsFrontFaceCCW bool
	DepthBias      float32
	DepthBiasClamp float32
	DepthBiasSlop  float32
	IsDepthClip    bool
	IsMultisample  bool
	LineWidth      float32
}

// DepthStencilState controls depth and stencil testing.
type DepthStencilState struct {
	DepthTest             bool
	DepthWrite            bool
	DepthFunc             gputypes.CompareFunction
	StencilTestFront      bool
	StencilFuncFront      gputypes.CompareFunction
	StencilReadMaskFront  uint32
	StencilWriteMaskFront uint32
	StencilFailOpFront    gputypes.StencilOperation
	StencilZFailOpFront   gputypes.StencilOperation
	StencilPassOpFront    gputypes.StencilOperation
	StencilRefFront       uint32
	StencilTestBack       bool
	StencilFuncBack       gputypes.CompareFunction
	StencilReadMaskBack   uint32
	StencilWriteMaskBack  uint32
	StencilFailOpBack     gputypes.StencilOperation
	StencilZFailOpBack    gputypes.StencilOperation
	StencilPassOpBack     gputypes.StencilOperation
	StencilRefBack        uint32
}

// BlendTarget is the blend configuration of one color target.
type BlendTarget struct {
	Blend          bool
	BlendSrc       gputypes.BlendFactor
	BlendDst       gputypes.BlendFactor
	BlendEq        gputypes.BlendOperation
	BlendSrcAlpha  gputypes.BlendFactor
	BlendDstAlpha  gputypes.BlendFactor
	BlendAlphaEq   gputypes.BlendOperation
	BlendColorMask gputypes.ColorWriteMask
}

// BlendState is the blend configuration of a pipeline. BlendColor is held
// by value.
type BlendState struct {
	IsA2C      bool
	IsIndepend bool
	BlendColor Color
	Targets    []BlendTarget
}

// PipelineStateInfo describes a graphics pipeline.
type PipelineStateInfo struct {
	Primitive          gputypes.PrimitiveTopology
	Shader             any
	InputState         *InputState
	RasterizerState    *RasterizerState
	DepthStencilState  *DepthStencilState
	BlendState         *BlendState
	DynamicStates      DynamicStateFlags
	RenderPass         any
	PushConstantRanges []PushConstantRange
}

// CommandBufferInfo describes a command buffer.
type CommandBufferInfo struct {
	Queue any
	Type  CommandBufferType
}

// QueueInfo describes a queue.
type QueueInfo struct {
	Type      QueueType
	ForceSync bool
}

// FormatInfo describes a texture format.
type FormatInfo struct {
	Name         string
	Size         uint32
	Count        uint32
	Type         FormatType
	HasAlpha     bool
	HasDepth     bool
	HasStencil   bool
	IsCompressed bool
}
