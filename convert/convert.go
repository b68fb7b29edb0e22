// Package convert turns caller descriptors into canonical backend arguments.
//
// There is one converter per semantic type. A nil descriptor converts to a
// nil canonical value, except for Rect and Color, which return the pool's
// resident holder unchanged. Composite converters build their canonical
// record field by field in declaration order and recurse into nested
// records; list fields convert element-wise into a new slice of the same
// length, and a nil list stays nil.
//
// Converters shape arguments only. They do not check that required nested
// fields are present or that values are in range.
package convert

import (
	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/desc"
)

// Ref unwraps a resource reference to its native object.
func Ref(r desc.Resource) any {
	if r == nil {
		return nil
	}
	return r.Native()
}

// Refs unwraps every reference in rs.
func Refs(rs []desc.Resource) []any {
	if rs == nil {
		return nil
	}
	out := make([]any, len(rs))
	for i, r := range rs {
		out[i] = Ref(r)
	}
	return out
}

// Origin passes arg through, unwrapping resource references.
func Origin(arg any) any {
	if r, ok := arg.(desc.Resource); ok {
		return Ref(r)
	}
	return arg
}

// mapList converts each element of in with fn. A nil in yields nil.
func mapList[D, C any](in []D, fn func(*D) *C) []C {
	if in == nil {
		return nil
	}
	out := make([]C, len(in))
	for i := range in {
		out[i] = *fn(&in[i])
	}
	return out
}

// Offset converts a texel offset: X, Y, Z.
func Offset(in *desc.Offset) *canon.Offset {
	if in == nil {
		return nil
	}
	out := canon.Offset(*in)
	return &out
}

// Extent converts a region size: Width, Height, Depth.
func Extent(in *desc.Extent) *canon.Extent {
	if in == nil {
		return nil
	}
	out := canon.Extent(*in)
	return &out
}

// TextureSubres converts a subresource selection: MipLevel,
// BaseArrayLayer, LayerCount.
func TextureSubres(in *desc.TextureSubres) *canon.TextureSubres {
	if in == nil {
		return nil
	}
	out := canon.TextureSubres(*in)
	return &out
}

// BufferTextureCopy converts one upload region: BuffStride,
// BuffTexHeight, then the nested TexOffset, TexExtent and TexSubres.
func BufferTextureCopy(in *desc.BufferTextureCopy) *canon.BufferTextureCopy {
	if in == nil {
		return nil
	}
	return &canon.BufferTextureCopy{
		BuffStride:    in.BuffStride,
		BuffTexHeight: in.BuffTexHeight,
		TexOffset:     Offset(in.TexOffset),
		TexExtent:     Extent(in.TexExtent),
		TexSubres:     TextureSubres(in.TexSubres),
	}
}

// BufferTextureCopyList converts upload regions element-wise.
func BufferTextureCopyList(in []desc.BufferTextureCopy) []canon.BufferTextureCopy {
	return mapList(in, BufferTextureCopy)
}

// Viewport converts a viewport: Left, Top, Width, Height, MinDepth,
// MaxDepth.
func Viewport(in *desc.Viewport) *canon.Viewport {
	if in == nil {
		return nil
	}
	out := canon.Viewport(*in)
	return &out
}

// BufferInfo converts a buffer descriptor: Usage, MemUsage, Stride, Size,
// Flags.
func BufferInfo(in *desc.BufferInfo) *canon.BufferInfo {
	if in == nil {
		return nil
	}
	out := canon.BufferInfo(*in)
	return &out
}

// ShaderMacro converts a macro definition: Macro, Value.
func ShaderMacro(in *desc.ShaderMacro) *canon.ShaderMacro {
	if in == nil {
		return nil
	}
	out := canon.ShaderMacro(*in)
	return &out
}

// Uniform converts a block member: Name, Type, Count.
func Uniform(in *desc.Uniform) *canon.Uniform {
	if in == nil {
		return nil
	}
	out := canon.Uniform(*in)
	return &out
}

// UniformBlock converts a uniform block: ShaderStages, Binding, Name,
// then its Members in order.
func UniformBlock(in *desc.UniformBlock) *canon.UniformBlock {
	if in == nil {
		return nil
	}
	return &canon.UniformBlock{
		ShaderStages: in.ShaderStages,
		Binding:      in.Binding,
		Name:         in.Name,
		Members:      mapList(in.Members, Uniform),
	}
}

// UniformSampler converts a sampler binding: ShaderStages, Binding, Name,
// Type, Count.
func UniformSampler(in *desc.UniformSampler) *canon.UniformSampler {
	if in == nil {
		return nil
	}
	out := canon.UniformSampler(*in)
	return &out
}

// ShaderStage converts one stage: Type, Source, then its Macros.
func ShaderStage(in *desc.ShaderStage) *canon.ShaderStage {
	if in == nil {
		return nil
	}
	return &canon.ShaderStage{
		Type:   in.Type,
		Source: in.Source,
		Macros: mapList(in.Macros, ShaderMacro),
	}
}

// ShaderInfo converts a shader: Name, Stages, Attributes, Blocks,
// Samplers. Each list converts element-wise.
func ShaderInfo(in *desc.ShaderInfo) *canon.ShaderInfo {
	if in == nil {
		return nil
	}
	return &canon.ShaderInfo{
		Name:       in.Name,
		Stages:     mapList(in.Stages, ShaderStage),
		Attributes: mapList(in.Attributes, Attribute),
		Blocks:     mapList(in.Blocks, UniformBlock),
		Samplers:   mapList(in.Samplers, UniformSampler),
	}
}

// Attribute converts a vertex input: Name, Format, IsNormalized, Stream,
// IsInstanced, Location.
func Attribute(in *desc.Attribute) *canon.Attribute {
	if in == nil {
		return nil
	}
	out := canon.Attribute(*in)
	return &out
}

// InputAssemblerInfo converts the attribute list and unwraps the vertex,
// index and indirect buffer references to native objects.
func InputAssemblerInfo(in *desc.InputAssemblerInfo) *canon.InputAssemblerInfo {
	if in == nil {
		return nil
	}
	return &canon.InputAssemblerInfo{
		Attributes:     mapList(in.Attributes, Attribute),
		VertexBuffers:  Refs(in.VertexBuffers),
		IndexBuffer:    Ref(in.IndexBuffer),
		IndirectBuffer: Ref(in.IndirectBuffer),
	}
}

// ColorAttachment converts a color target: Format, LoadOp, StoreOp,
// SampleCount, BeginLayout, EndLayout.
func ColorAttachment(in *desc.ColorAttachment) *canon.ColorAttachment {
	if in == nil {
		return nil
	}
	out := canon.ColorAttachment(*in)
	return &out
}

// DepthStencilAttachment converts the depth-stencil target: Format, the
// depth load and store ops, the stencil load and store ops, SampleCount,
// BeginLayout, EndLayout.
func DepthStencilAttachment(in *desc.DepthStencilAttachment) *canon.DepthStencilAttachment {
	if in == nil {
		return nil
	}
	out := canon.DepthStencilAttachment(*in)
	return &out
}

// SubPass converts a sub-pass: BindPoint, Inputs, Colors, Resolves,
// DepthStencil, Preserves. Attachment lists are shared, not copied.
func SubPass(in *desc.SubPass) *canon.SubPass {
	if in == nil {
		return nil
	}
	out := canon.SubPass(*in)
	return &out
}

// RenderPassInfo converts the color attachments, the optional
// depth-stencil attachment and the sub-passes.
func RenderPassInfo(in *desc.RenderPassInfo) *canon.RenderPassInfo {
	if in == nil {
		return nil
	}
	return &canon.RenderPassInfo{
		ColorAttachments:       mapList(in.ColorAttachments, ColorAttachment),
		DepthStencilAttachment: DepthStencilAttachment(in.DepthStencilAttachment),
		SubPasses:              mapList(in.SubPasses, SubPass),
	}
}

// FramebufferInfo unwraps the render pass and texture references and
// keeps the mip levels.
func FramebufferInfo(in *desc.FramebufferInfo) *canon.FramebufferInfo {
	if in == nil {
		return nil
	}
	return &canon.FramebufferInfo{
		RenderPass:            Ref(in.RenderPass),
		ColorTextures:         Refs(in.ColorTextures),
		DepthStencilTexture:   Ref(in.DepthStencilTexture),
		ColorMipmapLevels:     in.ColorMipmapLevels,
		DepStencilMipmapLevel: in.DepStencilMipmapLevel,
	}
}

// BindingLayoutInfo unwraps the shader reference.
func BindingLayoutInfo(in *desc.BindingLayoutInfo) *canon.BindingLayoutInfo {
	if in == nil {
		return nil
	}
	return &canon.BindingLayoutInfo{Shader: Ref(in.Shader)}
}

// BindingUnit converts one binding: ShaderStages, Binding, Type, Name,
// Count, then the unwrapped Buffer, Texture and Sampler.
func BindingUnit(in *desc.BindingUnit) *canon.BindingUnit {
	if in == nil {
		return nil
	}
	return &canon.BindingUnit{
		ShaderStages: in.ShaderStages,
		Binding:      in.Binding,
		Type:         in.Type,
		Name:         in.Name,
		Count:        in.Count,
		Buffer:       Ref(in.Buffer),
		Texture:      Ref(in.Texture),
		Sampler:      Ref(in.Sampler),
	}
}

// PushConstantRange converts a push-constant range: ShaderType, Offset,
// Count.
func PushConstantRange(in *desc.PushConstantRange) *canon.PushConstantRange {
	if in == nil {
		return nil
	}
	out := canon.PushConstantRange(*in)
	return &out
}

// InputState converts the pipeline's attribute list.
func InputState(in *desc.InputState) *canon.InputState {
	if in == nil {
		return nil
	}
	return &canon.InputState{Attributes: mapList(in.Attributes, Attribute)}
}

// RasterizerState converts rasterizer state field for field.
func RasterizerState(in *desc.RasterizerState) *canon.RasterizerState {
	if in == nil {
		return nil
	}
	out := canon.RasterizerState(*in)
	return &out
}

// DepthStencilState converts depth and stencil state, front face fields
// before back face fields.
func DepthStencilState(in *desc.DepthStencilState) *canon.DepthStencilState {
	if in == nil {
		return nil
	}
	out := canon.DepthStencilState(*in)
	return &out
}

// BlendTarget converts one target: Blend, the color factors and
// operation, the alpha factors and operation, then BlendColorMask.
func BlendTarget(in *desc.BlendTarget) *canon.BlendTarget {
	if in == nil {
		return nil
	}
	out := canon.BlendTarget(*in)
	return &out
}

// CommandBufferInfo unwraps the queue reference and keeps the type.
func CommandBufferInfo(in *desc.CommandBufferInfo) *canon.CommandBufferInfo {
	if in == nil {
		return nil
	}
	return &canon.CommandBufferInfo{Queue: Ref(in.Queue), Type: in.Type}
}

// QueueInfo converts a queue descriptor. A nil ForceSync becomes false.
func QueueInfo(in *desc.QueueInfo) *canon.QueueInfo {
	if in == nil {
		return nil
	}
	return &canon.QueueInfo{Type: in.Type, ForceSync: in.ForceSync != nil && *in.ForceSync}
}

// FormatInfo converts a format description field for field.
func FormatInfo(in *desc.FormatInfo) *canon.FormatInfo {
	if in == nil {
		return nil
	}
	out := canon.FormatInfo(*in)
	return &out
}
