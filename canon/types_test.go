package canon

import (
	"reflect"
	"slices"
	"testing"
)

func fieldNames(v any) []string {
	t := reflect.TypeOf(v)
	names := make([]string, t.NumField())
	for i := range names {
		names[i] = t.Field(i).Name
	}
	return names
}

// Native entry points read these structs positionally, so the declared
// order must never drift.
func TestFieldOrder(t *testing.T) {
	tests := []struct {
		v    any
		want []string
	}{
		{Offset{}, []string{"X", "Y", "Z"}},
		{Rect{}, []string{"X", "Y", "Width", "Height"}},
		{Extent{}, []string{"Width", "Height", "Depth"}},
		{TextureSubres{}, []string{"MipLevel", "BaseArrayLayer", "LayerCount"}},
		{BufferTextureCopy{}, []string{"BuffStride", "BuffTexHeight", "TexOffset", "TexExtent", "TexSubres"}},
		{Viewport{}, []string{"Left", "Top", "Width", "Height", "MinDepth", "MaxDepth"}},
		{Color{}, []string{"R", "G", "B", "A"}},
		{DeviceInfo{}, []string{"WindowHandle", "Width", "Height", "NativeWidth", "NativeHeight", "SharedCtx"}},
		{BufferInfo{}, []string{"Usage", "MemUsage", "Stride", "Size", "Flags"}},
		{TextureInfo{}, []string{"Type", "Usage", "Format", "Width", "Height", "Depth", "ArrayLayer", "MipLevel", "Samples", "Flags"}},
		{TextureViewInfo{}, []string{"Texture", "Type", "Format", "BaseLevel", "LevelCount", "BaseLayer", "LayerCount"}},
		{SamplerInfo{}, []string{"Name", "MinFilter", "MagFilter", "MipFilter", "AddressU", "AddressV", "AddressW",
			"MaxAnisotropy", "CmpFunc", "BorderColor", "MinLOD", "MaxLOD", "MipLODBias"}},
		{ShaderMacro{}, []string{"Macro", "Value"}},
		{Uniform{}, []string{"Name", "Type", "Count"}},
		{UniformBlock{}, []string{"ShaderStages", "Binding", "Name", "Members"}},
		{UniformSampler{}, []string{"ShaderStages", "Binding", "Name", "Type", "Count"}},
		{ShaderStage{}, []string{"Type", "Source", "Macros"}},
		{ShaderInfo{}, []string{"Name", "Stages", "Attributes", "Blocks", "Samplers"}},
		{Attribute{}, []string{"Name", "Format", "IsNormalized", "Stream", "IsInstanced", "Location"}},
		{InputAssemblerInfo{}, []string{"Attributes", "VertexBuffers", "IndexBuffer", "IndirectBuffer"}},
		{ColorAttachment{}, []string{"Format", "LoadOp", "StoreOp", "SampleCount", "BeginLayout", "EndLayout"}},
		{DepthStencilAttachment{}, []string{"Format", "DepthLoadOp", "DepthStoreOp", "StencilLoadOp", "StencilStoreOp",
			"SampleCount", "BeginLayout", "EndLayout"}},
		{SubPass{}, []string{"BindPoint", "Inputs", "Colors", "Resolves", "DepthStencil", "Preserves"}},
		{RenderPassInfo{}, []string{"ColorAttachments", "DepthStencilAttachment", "SubPasses"}},
		{FramebufferInfo{}, []string{"RenderPass", "ColorTextures", "DepthStencilTexture", "ColorMipmapLevels", "DepStencilMipmapLevel"}},
		{BindingLayoutInfo{}, []string{"Shader"}},
		{BindingUnit{}, []string{"ShaderStages", "Binding", "Type", "Name", "Count", "Buffer", "Texture", "Sampler"}},
		{PushConstantRange{}, []string{"ShaderType", "Offset", "Count"}},
		{InputState{}, []string{"Attributes"}},
		{RasterizerState{}, []string{"IsDiscard", "PolygonMode", "ShadeModel", "CullMode", "IsFrontFaceCCW",
			"DepthBias", "DepthBiasClamp", "DepthBiasSlop", "IsDepthClip", "IsMultisample", "LineWidth"}},
		{DepthStencilState{}, []string{"DepthTest", "DepthWrite", "DepthFunc",
			"StencilTestFront", "StencilFuncFront", "StencilReadMaskFront", "StencilWriteMaskFront",
			"StencilFailOpFront", "StencilZFailOpFront", "StencilPassOpFront", "StencilRefFront",
			"StencilTestBack", "StencilFuncBack", "StencilReadMaskBack", "StencilWriteMaskBack",
			"StencilFailOpBack", "StencilZFailOpBack", "StencilPassOpBack", "StencilRefBack"}},
		{BlendTarget{}, []string{"Blend", "BlendSrc", "BlendDst", "BlendEq", "BlendSrcAlpha", "BlendDstAlpha",
			"BlendAlphaEq", "BlendColorMask"}},
		{BlendState{}, []string{"IsA2C", "IsIndepend", "BlendColor", "Targets"}},
		{PipelineStateInfo{}, []string{"Primitive", "Shader", "InputState", "RasterizerState", "DepthStencilState",
			"BlendState", "DynamicStates", "RenderPass", "PushConstantRanges"}},
		{CommandBufferInfo{}, []string{"Queue", "Type"}},
		{QueueInfo{}, []string{"Type", "ForceSync"}},
		{FormatInfo{}, []string{"Name", "Size", "Count", "Type", "HasAlpha", "HasDepth", "HasStencil", "IsCompressed"}},
	}
	for _, tt := range tests {
		name := reflect.TypeOf(tt.v).Name()
		t.Run(name, func(t *testing.T) {
			if got := fieldNames(tt.v); !slices.Equal(got, tt.want) {
				t.Errorf("%s fields = %v, want %v", name, got, tt.want)
			}
		})
	}
}

func TestUniformTypeSize(t *testing.T) {
	tests := []struct {
		typ  UniformType
		want uint32
	}{
		{UniformTypeFloat, 4},
		{UniformTypeInt2, 8},
		{UniformTypeFloat3, 12},
		{UniformTypeFloat4, 16},
		{UniformTypeMat3, 48},
		{UniformTypeMat4, 64},
		{UniformTypeSampler2D, 0},
		{UniformTypeUnknown, 0},
	}
	for _, tt := range tests {
		if got := tt.typ.Size(); got != tt.want {
			t.Errorf("UniformType(%d).Size() = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestClearAll(t *testing.T) {
	if ClearAll&ClearColor == 0 || ClearAll&ClearDepth == 0 || ClearAll&ClearStencil == 0 {
		t.Errorf("ClearAll = %#x, want all attachment bits", ClearAll)
	}
}
