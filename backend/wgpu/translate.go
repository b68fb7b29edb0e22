package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxbind/canon"
)

// SamplerBindingOffset separates the sampler half of a uniform sampler
// from its texture half.
const SamplerBindingOffset = 16

// bytesPerTexel returns the bytes per texel for a texture format.
func bytesPerTexel(format gputypes.TextureFormat) uint32 {
	switch format {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatRG8Unorm, gputypes.TextureFormatR16Float, gputypes.TextureFormatDepth16Unorm:
		return 2
	case gputypes.TextureFormatR32Float, gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return 4
	case gputypes.TextureFormatRG32Float, gputypes.TextureFormatRGBA16Float:
		return 8
	case gputypes.TextureFormatRGBA32Float:
		return 16
	default:
		return 4 // Default to RGBA8
	}
}

func atLeastOne(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	return v
}

func align4(v uint64) uint64 {
	return (v + 3) &^ 3
}

// textureDescriptor converts a texture description. Cubemaps get six array
// layers.
func textureDescriptor(info *canon.TextureInfo) *hal.TextureDescriptor {
	dim := info.Type
	if dim == gputypes.TextureDimensionUndefined {
		dim = gputypes.TextureDimension2D
	}
	layers := atLeastOne(info.ArrayLayer)
	if info.Flags&canon.TextureFlagCubemap != 0 {
		layers = 6
	}
	if dim == gputypes.TextureDimension3D {
		layers = atLeastOne(info.Depth)
	}
	return &hal.TextureDescriptor{
		Label: "gfxbind texture",
		Size: hal.Extent3D{
			Width:              atLeastOne(info.Width),
			Height:             atLeastOne(info.Height),
			DepthOrArrayLayers: layers,
		},
		MipLevelCount: atLeastOne(info.MipLevel),
		SampleCount:   atLeastOne(info.Samples),
		Dimension:     dim,
		Format:        info.Format,
		Usage:         info.Usage | gputypes.TextureUsageCopyDst,
	}
}

// defaultViewDimension picks the view dimension of a texture's own view.
func defaultViewDimension(info *canon.TextureInfo, layers uint32) gputypes.TextureViewDimension {
	switch {
	case info.Flags&canon.TextureFlagCubemap != 0:
		return gputypes.TextureViewDimensionCube
	case info.Type == gputypes.TextureDimension1D:
		return gputypes.TextureViewDimension1D
	case info.Type == gputypes.TextureDimension3D:
		return gputypes.TextureViewDimension3D
	case layers > 1:
		return gputypes.TextureViewDimension2DArray
	default:
		return gputypes.TextureViewDimension2D
	}
}

func samplerDescriptor(info *canon.SamplerInfo) *hal.SamplerDescriptor {
	aniso := info.MaxAnisotropy
	switch {
	case aniso == 0:
		aniso = 1
	case aniso > 16:
		aniso = 16
	}
	cmp := info.CmpFunc
	if cmp == gputypes.CompareFunctionNever {
		cmp = gputypes.CompareFunctionUndefined
	}
	lodMax := info.MaxLOD
	if lodMax == 0 {
		lodMax = 32
	}
	return &hal.SamplerDescriptor{
		Label:        info.Name,
		AddressModeU: info.AddressU,
		AddressModeV: info.AddressV,
		AddressModeW: info.AddressW,
		MagFilter:    info.MagFilter,
		MinFilter:    info.MinFilter,
		MipmapFilter: gputypes.FilterMode(info.MipFilter),
		LodMinClamp:  info.MinLOD,
		LodMaxClamp:  lodMax,
		Compare:      cmp,
		Anisotropy:   uint16(aniso),
	}
}

// stencilOp maps a gputypes stencil operation onto the HAL's zero-based
// enumeration. Undefined keeps the stencil value.
func stencilOp(op gputypes.StencilOperation) hal.StencilOperation {
	if op == gputypes.StencilOperationUndefined {
		return hal.StencilOperationKeep
	}
	return hal.StencilOperation(op - gputypes.StencilOperationKeep)
}

func compareOr(fn, fallback gputypes.CompareFunction) gputypes.CompareFunction {
	if fn == gputypes.CompareFunctionUndefined {
		return fallback
	}
	return fn
}

// depthStencilState builds the depth-stencil state of a pipeline rendering
// into format. A nil state enables depth testing with Less.
func depthStencilState(format gputypes.TextureFormat, ds *canon.DepthStencilState, rs *canon.RasterizerState) *hal.DepthStencilState {
	out := &hal.DepthStencilState{
		Format:            format,
		DepthWriteEnabled: true,
		DepthCompare:      gputypes.CompareFunctionLess,
		StencilFront:      hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways},
		StencilBack:       hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways},
	}
	if ds != nil {
		out.DepthWriteEnabled = ds.DepthWrite
		out.DepthCompare = gputypes.CompareFunctionAlways
		if ds.DepthTest {
			out.DepthCompare = compareOr(ds.DepthFunc, gputypes.CompareFunctionLess)
		}
		if ds.StencilTestFront {
			out.StencilFront = hal.StencilFaceState{
				Compare:     compareOr(ds.StencilFuncFront, gputypes.CompareFunctionAlways),
				FailOp:      stencilOp(ds.StencilFailOpFront),
				DepthFailOp: stencilOp(ds.StencilZFailOpFront),
				PassOp:      stencilOp(ds.StencilPassOpFront),
			}
			out.StencilReadMask = ds.StencilReadMaskFront
			out.StencilWriteMask = ds.StencilWriteMaskFront
		}
		if ds.StencilTestBack {
			out.StencilBack = hal.StencilFaceState{
				Compare:     compareOr(ds.StencilFuncBack, gputypes.CompareFunctionAlways),
				FailOp:      stencilOp(ds.StencilFailOpBack),
				DepthFailOp: stencilOp(ds.StencilZFailOpBack),
				PassOp:      stencilOp(ds.StencilPassOpBack),
			}
		}
	}
	if rs != nil {
		out.DepthBias = int32(rs.DepthBias)
		out.DepthBiasSlopeScale = rs.DepthBiasSlop
		out.DepthBiasClamp = rs.DepthBiasClamp
	}
	return out
}

func primitiveState(topology gputypes.PrimitiveTopology, rs *canon.RasterizerState) gputypes.PrimitiveState {
	out := gputypes.PrimitiveState{
		Topology:  topology,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeBack,
	}
	if rs != nil {
		out.CullMode = rs.CullMode
		if !rs.IsFrontFaceCCW {
			out.FrontFace = gputypes.FrontFaceCW
		}
		out.UnclippedDepth = !rs.IsDepthClip
	}
	return out
}

// colorTargets pairs each color attachment of a render pass with its blend
// target. Without independent blending every attachment uses target 0.
func colorTargets(atts []canon.ColorAttachment, bs *canon.BlendState) []gputypes.ColorTargetState {
	out := make([]gputypes.ColorTargetState, len(atts))
	for i, att := range atts {
		out[i] = gputypes.ColorTargetState{Format: att.Format, WriteMask: gputypes.ColorWriteMaskAll}
		if bs == nil || len(bs.Targets) == 0 {
			continue
		}
		t := bs.Targets[0]
		if bs.IsIndepend && i < len(bs.Targets) {
			t = bs.Targets[i]
		}
		if t.BlendColorMask != 0 {
			out[i].WriteMask = t.BlendColorMask
		}
		if !t.Blend {
			continue
		}
		out[i].Blend = &gputypes.BlendState{
			Color: gputypes.BlendComponent{SrcFactor: t.BlendSrc, DstFactor: t.BlendDst, Operation: t.BlendEq},
			Alpha: gputypes.BlendComponent{SrcFactor: t.BlendSrcAlpha, DstFactor: t.BlendDstAlpha, Operation: t.BlendAlphaEq},
		}
	}
	return out
}

// vertexLayouts groups attributes into one buffer layout per stream,
// packing attributes of a stream in declaration order.
func vertexLayouts(attrs []canon.Attribute) []gputypes.VertexBufferLayout {
	var out []gputypes.VertexBufferLayout
	for _, a := range attrs {
		for uint32(len(out)) <= a.Stream {
			out = append(out, gputypes.VertexBufferLayout{StepMode: gputypes.VertexStepModeVertex})
		}
		l := &out[a.Stream]
		if a.IsInstanced {
			l.StepMode = gputypes.VertexStepModeInstance
		}
		l.Attributes = append(l.Attributes, gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         l.ArrayStride,
			ShaderLocation: a.Location,
		})
		l.ArrayStride += a.Format.Size()
	}
	return out
}

// bindGroupEntries derives the layout of bind group 0 from a shader's
// uniform blocks and samplers.
func bindGroupEntries(info *canon.ShaderInfo) []gputypes.BindGroupLayoutEntry {
	var entries []gputypes.BindGroupLayoutEntry
	for _, b := range info.Blocks {
		var size uint64
		for _, m := range b.Members {
			size += uint64(m.Type.Size()) * uint64(atLeastOne(m.Count))
		}
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    b.Binding,
			Visibility: b.ShaderStages,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: size,
			},
		})
	}
	for _, s := range info.Samplers {
		entries = append(entries,
			gputypes.BindGroupLayoutEntry{
				Binding:    s.Binding,
				Visibility: s.ShaderStages,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: samplerViewDimension(s.Type),
				},
			},
			gputypes.BindGroupLayoutEntry{
				Binding:    s.Binding + SamplerBindingOffset,
				Visibility: s.ShaderStages,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		)
	}
	return entries
}

func samplerViewDimension(t canon.UniformType) gputypes.TextureViewDimension {
	switch t {
	case canon.UniformTypeSamplerCube:
		return gputypes.TextureViewDimensionCube
	case canon.UniformTypeSampler3D:
		return gputypes.TextureViewDimension3D
	case canon.UniformTypeSampler1D:
		return gputypes.TextureViewDimension1D
	case canon.UniformTypeSampler2DArray, canon.UniformTypeSampler1DArray:
		return gputypes.TextureViewDimension2DArray
	default:
		return gputypes.TextureViewDimension2D
	}
}

func pushConstantRanges(in []canon.PushConstantRange) []hal.PushConstantRange {
	if len(in) == 0 {
		return nil
	}
	out := make([]hal.PushConstantRange, len(in))
	for i, r := range in {
		out[i] = hal.PushConstantRange{
			Stages: r.ShaderType,
			Range:  hal.Range{Start: r.Offset, End: r.Offset + r.Count},
		}
	}
	return out
}

func halColor(c *canon.Color) gputypes.Color {
	if c == nil {
		return gputypes.Color{}
	}
	return gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}
