package convert

import (
	"fmt"
	"maps"
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfxbind/adapt"
	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/desc"
	"github.com/gogpu/gfxbind/scratch"
)

// Converter names, as used by Lookup and Without.
const (
	NameOrigin                 = "origin"
	NameTexImagesToBuffers     = "texImagesToBuffers"
	NameOffset                 = "Offset"
	NameRect                   = "Rect"
	NameExtent                 = "Extent"
	NameTextureSubres          = "TextureSubres"
	NameBufferTextureCopy      = "BufferTextureCopy"
	NameBufferTextureCopyList  = "BufferTextureCopyList"
	NameViewport               = "Viewport"
	NameColor                  = "Color"
	NameColorArray             = "ColorArray"
	NameDeviceInfo             = "DeviceInfo"
	NameBufferInfo             = "BufferInfo"
	NameTextureInfo            = "TextureInfo"
	NameTextureViewInfo        = "TextureViewInfo"
	NameSamplerInfo            = "SamplerInfo"
	NameShaderMacro            = "ShaderMacro"
	NameUniform                = "Uniform"
	NameUniformBlock           = "UniformBlock"
	NameUniformSampler         = "UniformSampler"
	NameShaderStage            = "ShaderStage"
	NameShaderInfo             = "ShaderInfo"
	NameAttribute              = "Attribute"
	NameInputAssemblerInfo     = "InputAssemblerInfo"
	NameColorAttachment        = "ColorAttachment"
	NameDepthStencilAttachment = "DepthStencilAttachment"
	NameSubPass                = "SubPass"
	NameRenderPassInfo         = "RenderPassInfo"
	NameFramebufferInfo        = "FramebufferInfo"
	NameBindingLayoutInfo      = "BindingLayoutInfo"
	NameBindingUnit            = "BindingUnit"
	NamePushConstantRange      = "PushConstantRange"
	NameInputState             = "InputState"
	NameRasterizerState        = "RasterizerState"
	NameDepthStencilState      = "DepthStencilState"
	NameBlendTarget            = "BlendTarget"
	NameBlendState             = "BlendState"
	NamePipelineStateInfo      = "PipelineStateInfo"
	NameCommandBufferInfo      = "CommandBufferInfo"
	NameQueueInfo              = "QueueInfo"
	NameFormatInfo             = "FormatInfo"
)

// Environment supplies the values device initialization reads from outside
// the descriptor.
type Environment struct {
	// Window reports the surface size. Nil means a zero-sized surface.
	Window gpucontext.WindowProvider
	// Handle is the native window handle, passed through untouched.
	Handle uintptr
}

// Registry holds the converters of one bridge. Converters for Rect, Color
// and ColorArray write into the registry's scratch pool, so a Registry is
// not safe for concurrent use.
type Registry struct {
	pool   *scratch.Pool
	env    Environment
	erased map[string]adapt.Converter
}

// NewRegistry returns a registry with every converter, writing small values
// into pool.
func NewRegistry(pool *scratch.Pool, env Environment) *Registry {
	r := &Registry{pool: pool, env: env}
	r.erased = map[string]adapt.Converter{
		NameOrigin:                 func(arg any) (any, error) { return Origin(arg), nil },
		NameTexImagesToBuffers:     eraseImages,
		NameOffset:                 erase(Offset),
		NameRect:                   erase(r.Rect),
		NameExtent:                 erase(Extent),
		NameTextureSubres:          erase(TextureSubres),
		NameBufferTextureCopy:      erase(BufferTextureCopy),
		NameBufferTextureCopyList:  eraseList(BufferTextureCopyList),
		NameViewport:               erase(Viewport),
		NameColor:                  erase(r.Color),
		NameColorArray:             eraseList(r.ColorArray),
		NameDeviceInfo:             erase(r.DeviceInfo),
		NameBufferInfo:             erase(BufferInfo),
		NameTextureInfo:            erase(TextureInfo),
		NameTextureViewInfo:        erase(TextureViewInfo),
		NameSamplerInfo:            erase(r.SamplerInfo),
		NameShaderMacro:            erase(ShaderMacro),
		NameUniform:                erase(Uniform),
		NameUniformBlock:           erase(UniformBlock),
		NameUniformSampler:         erase(UniformSampler),
		NameShaderStage:            erase(ShaderStage),
		NameShaderInfo:             erase(ShaderInfo),
		NameAttribute:              erase(Attribute),
		NameInputAssemblerInfo:     erase(InputAssemblerInfo),
		NameColorAttachment:        erase(ColorAttachment),
		NameDepthStencilAttachment: erase(DepthStencilAttachment),
		NameSubPass:                erase(SubPass),
		NameRenderPassInfo:         erase(RenderPassInfo),
		NameFramebufferInfo:        erase(FramebufferInfo),
		NameBindingLayoutInfo:      erase(BindingLayoutInfo),
		NameBindingUnit:            erase(BindingUnit),
		NamePushConstantRange:      erase(PushConstantRange),
		NameInputState:             erase(InputState),
		NameRasterizerState:        erase(RasterizerState),
		NameDepthStencilState:      erase(DepthStencilState),
		NameBlendTarget:            erase(BlendTarget),
		NameBlendState:             erase(r.BlendState),
		NamePipelineStateInfo:      erase(r.PipelineStateInfo),
		NameCommandBufferInfo:      erase(CommandBufferInfo),
		NameQueueInfo:              erase(QueueInfo),
		NameFormatInfo:             erase(FormatInfo),
	}
	return r
}

// Lookup returns the named converter, or nil if the registry has none.
func (r *Registry) Lookup(name string) adapt.Converter {
	return r.erased[name]
}

// Without returns a copy of r lacking the named converters. Backends use it
// to drop concepts they do not implement; wrappers needing a dropped
// converter are then never installed.
func (r *Registry) Without(names ...string) *Registry {
	c := &Registry{pool: r.pool, env: r.env, erased: maps.Clone(r.erased)}
	for _, name := range names {
		delete(c.erased, name)
	}
	return c
}

// Len returns the number of converters.
func (r *Registry) Len() int { return len(r.erased) }

// Pool returns the scratch pool the registry writes into.
func (r *Registry) Pool() *scratch.Pool { return r.pool }

// Rect converts through the scratch rectangle.
func (r *Registry) Rect(in *desc.Rect) *canon.Rect { return r.pool.Rect(in) }

// Color converts through the scratch color.
func (r *Registry) Color(in *desc.Color) *canon.Color { return r.pool.Color(in) }

// ColorArray converts through the scratch color array.
func (r *Registry) ColorArray(in []desc.Color) []*canon.Color { return r.pool.Colors(in) }

// DeviceInfo fills the surface size in physical pixels and the window
// handle from the environment.
func (r *Registry) DeviceInfo(in *desc.DeviceInfo) *canon.DeviceInfo {
	if in == nil {
		return nil
	}
	var width, height uint32
	if w := r.env.Window; w != nil {
		lw, lh := w.Size()
		sf := w.ScaleFactor()
		width = uint32(math.Round(float64(lw) * sf))
		height = uint32(math.Round(float64(lh) * sf))
	}
	return &canon.DeviceInfo{
		WindowHandle: r.env.Handle,
		Width:        width,
		Height:       height,
		NativeWidth:  in.NativeWidth,
		NativeHeight: in.NativeHeight,
	}
}

// SamplerInfo converts a sampler. The border color goes through the scratch
// color and is copied out of it.
func (r *Registry) SamplerInfo(in *desc.SamplerInfo) *canon.SamplerInfo {
	if in == nil {
		return nil
	}
	return &canon.SamplerInfo{
		Name:          in.Name,
		MinFilter:     in.MinFilter,
		MagFilter:     in.MagFilter,
		MipFilter:     in.MipFilter,
		AddressU:      in.AddressU,
		AddressV:      in.AddressV,
		AddressW:      in.AddressW,
		MaxAnisotropy: in.MaxAnisotropy,
		CmpFunc:       in.CmpFunc,
		BorderColor:   *r.Color(in.BorderColor),
		MinLOD:        in.MinLOD,
		MaxLOD:        in.MaxLOD,
		MipLODBias:    in.MipLODBias,
	}
}

// BlendState converts a blend state. The blend color goes through the
// scratch color and is copied out of it.
func (r *Registry) BlendState(in *desc.BlendState) *canon.BlendState {
	if in == nil {
		return nil
	}
	return &canon.BlendState{
		IsA2C:      in.IsA2C,
		IsIndepend: in.IsIndepend,
		BlendColor: *r.Color(in.BlendColor),
		Targets:    mapList(in.Targets, BlendTarget),
	}
}

// PipelineStateInfo converts a pipeline: Primitive, Shader, InputState,
// RasterizerState, DepthStencilState, BlendState, DynamicStates,
// RenderPass, PushConstantRanges. The blend color goes through the
// scratch color.
func (r *Registry) PipelineStateInfo(in *desc.PipelineStateInfo) *canon.PipelineStateInfo {
	if in == nil {
		return nil
	}
	return &canon.PipelineStateInfo{
		Primitive:          in.Primitive,
		Shader:             Ref(in.Shader),
		InputState:         InputState(in.InputState),
		RasterizerState:    RasterizerState(in.RasterizerState),
		DepthStencilState:  DepthStencilState(in.DepthStencilState),
		BlendState:         r.BlendState(in.BlendState),
		DynamicStates:      in.DynamicStates,
		RenderPass:         Ref(in.RenderPass),
		PushConstantRanges: mapList(in.PushConstantRanges, PushConstantRange),
	}
}

// erase adapts a typed record converter. It accepts *D, D or nil, and a
// nil result is returned as an untyped nil.
func erase[D, C any](fn func(*D) *C) adapt.Converter {
	return func(arg any) (any, error) {
		var out *C
		switch v := arg.(type) {
		case nil:
			out = fn(nil)
		case *D:
			out = fn(v)
		case D:
			out = fn(&v)
		default:
			var want *D
			return nil, fmt.Errorf("%w: got %T, want %T", adapt.ErrUnexpectedType, arg, want)
		}
		if out == nil {
			return nil, nil
		}
		return out, nil
	}
}

// eraseList adapts a typed list converter. A nil result is returned as an
// untyped nil.
func eraseList[D, C any](fn func([]D) []C) adapt.Converter {
	return func(arg any) (any, error) {
		var in []D
		if arg != nil {
			v, ok := arg.([]D)
			if !ok {
				return nil, fmt.Errorf("%w: got %T, want %T", adapt.ErrUnexpectedType, arg, in)
			}
			in = v
		}
		out := fn(in)
		if out == nil {
			return nil, nil
		}
		return out, nil
	}
}

func eraseImages(arg any) (any, error) {
	images, err := adapt.As[[]any](arg)
	if err != nil {
		return nil, err
	}
	buffers, err := TexImagesToBuffers(images)
	if err != nil || buffers == nil {
		return nil, err
	}
	return buffers, nil
}
