package canon

// MemoryUsage selects the memory heap a buffer lives in.
type MemoryUsage uint32

const (
	MemoryUsageNone   MemoryUsage = 0
	MemoryUsageDevice MemoryUsage = 0x1
	MemoryUsageHost   MemoryUsage = 0x2
)

// BufferFlags holds optional buffer behaviors.
type BufferFlags uint32

const (
	BufferFlagNone         BufferFlags = 0
	BufferFlagBackupBuffer BufferFlags = 0x4
)

// TextureFlags holds optional texture behaviors.
type TextureFlags uint32

const (
	TextureFlagNone         TextureFlags = 0
	TextureFlagGenMipmap    TextureFlags = 0x1
	TextureFlagCubemap      TextureFlags = 0x2
	TextureFlagBackupBuffer TextureFlags = 0x4
)

// TextureLayout is the image layout an attachment is in at a pass boundary.
type TextureLayout uint32

const (
	TextureLayoutUndefined TextureLayout = iota
	TextureLayoutGeneral
	TextureLayoutColorAttachmentOptimal
	TextureLayoutDepthStencilAttachmentOptimal
	TextureLayoutDepthStencilReadonlyOptimal
	TextureLayoutShaderReadonlyOptimal
	TextureLayoutTransferSrcOptimal
	TextureLayoutTransferDstOptimal
	TextureLayoutPreinitialized
	TextureLayoutPresentSrc
)

// PipelineBindPoint selects the pipeline kind a sub-pass binds.
type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics PipelineBindPoint = iota
	PipelineBindPointCompute
	PipelineBindPointRayTracing
)

// PolygonMode controls polygon rasterization.
type PolygonMode uint32

const (
	PolygonModeFill PolygonMode = iota
	PolygonModePoint
	PolygonModeLine
)

// ShadeModel controls attribute interpolation.
type ShadeModel uint32

const (
	ShadeModelGourand ShadeModel = iota
	ShadeModelFlat
)

// DynamicStateFlags marks pipeline states set on the command buffer.
type DynamicStateFlags uint32

const (
	DynamicStateViewport DynamicStateFlags = 1 << iota
	DynamicStateScissor
	DynamicStateLineWidth
	DynamicStateDepthBias
	DynamicStateBlendConstants
	DynamicStateDepthBounds
	DynamicStateStencilWriteMask
	DynamicStateStencilCompareMask
)

// CommandBufferType distinguishes primary and secondary command buffers.
type CommandBufferType uint32

const (
	CommandBufferTypePrimary CommandBufferType = iota
	CommandBufferTypeSecondary
)

// QueueType selects the hardware queue family.
type QueueType uint32

const (
	QueueTypeGraphics QueueType = iota
	QueueTypeCompute
	QueueTypeTransfer
)

// FormatType is the numeric class of a texture format.
type FormatType uint32

const (
	FormatTypeNone FormatType = iota
	FormatTypeUnorm
	FormatTypeSnorm
	FormatTypeUint
	FormatTypeInt
	FormatTypeUfloat
	FormatTypeFloat
)

// UniformType is the shader-side type of a uniform member.
type UniformType uint32

const (
	UniformTypeUnknown UniformType = iota
	UniformTypeBool
	UniformTypeBool2
	UniformTypeBool3
	UniformTypeBool4
	UniformTypeInt
	UniformTypeInt2
	UniformTypeInt3
	UniformTypeInt4
	UniformTypeUint
	UniformTypeUint2
	UniformTypeUint3
	UniformTypeUint4
	UniformTypeFloat
	UniformTypeFloat2
	UniformTypeFloat3
	UniformTypeFloat4
	UniformTypeMat2
	UniformTypeMat2x3
	UniformTypeMat2x4
	UniformTypeMat3x2
	UniformTypeMat3
	UniformTypeMat3x4
	UniformTypeMat4x2
	UniformTypeMat4x3
	UniformTypeMat4
	UniformTypeSampler1D
	UniformTypeSampler1DArray
	UniformTypeSampler2D
	UniformTypeSampler2DArray
	UniformTypeSampler3D
	UniformTypeSamplerCube
)

// Size returns the byte size of a scalar, vector or matrix uniform type and
// zero for samplers and unknown types. Matrix columns are padded to vec4.
func (t UniformType) Size() uint32 {
	switch t {
	case UniformTypeBool, UniformTypeInt, UniformTypeUint, UniformTypeFloat:
		return 4
	case UniformTypeBool2, UniformTypeInt2, UniformTypeUint2, UniformTypeFloat2:
		return 8
	case UniformTypeBool3, UniformTypeInt3, UniformTypeUint3, UniformTypeFloat3:
		return 12
	case UniformTypeBool4, UniformTypeInt4, UniformTypeUint4, UniformTypeFloat4:
		return 16
	case UniformTypeMat2, UniformTypeMat2x3, UniformTypeMat2x4:
		return 32
	case UniformTypeMat3x2, UniformTypeMat3, UniformTypeMat3x4:
		return 48
	case UniformTypeMat4x2, UniformTypeMat4x3, UniformTypeMat4:
		return 64
	default:
		return 0
	}
}

// DescriptorType is the kind of resource a binding unit holds.
type DescriptorType uint32

const (
	DescriptorTypeUnknown DescriptorType = iota
	DescriptorTypeUniformBuffer
	DescriptorTypeSampler
)

// ClearFlags selects the attachments cleared when a render pass begins.
type ClearFlags uint32

const (
	ClearNone    ClearFlags = 0
	ClearColor   ClearFlags = 0x1
	ClearDepth   ClearFlags = 0x2
	ClearStencil ClearFlags = 0x4
	ClearAll     ClearFlags = ClearColor | ClearDepth | ClearStencil
)
