package convert

import (
	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/desc"
)

// TextureInfo converts the fresh-texture fields of in.
func TextureInfo(in *desc.TextureInfo) *canon.TextureInfo {
	if in == nil {
		return nil
	}
	return &canon.TextureInfo{
		Type:       in.Type,
		Usage:      in.Usage,
		Format:     in.Format,
		Width:      in.Width,
		Height:     in.Height,
		Depth:      in.Depth,
		ArrayLayer: in.ArrayLayer,
		MipLevel:   in.MipLevel,
		Samples:    in.Samples,
		Flags:      in.Flags,
	}
}

// TextureViewInfo converts the view fields of in.
func TextureViewInfo(in *desc.TextureInfo) *canon.TextureViewInfo {
	if in == nil {
		return nil
	}
	return &canon.TextureViewInfo{
		Texture:    Ref(in.Texture),
		Type:       in.ViewType,
		Format:     in.Format,
		BaseLevel:  in.BaseLevel,
		LevelCount: in.LevelCount,
		BaseLayer:  in.BaseLayer,
		LayerCount: in.LayerCount,
	}
}

// TextureDispatch picks the converter for a texture descriptor. A
// descriptor referencing an existing texture converts to a
// *canon.TextureViewInfo with view set; any other converts to a
// *canon.TextureInfo with view unset.
func TextureDispatch(in *desc.TextureInfo) (info any, view bool) {
	if in == nil {
		return nil, false
	}
	if Ref(in.Texture) != nil {
		return TextureViewInfo(in), true
	}
	return TextureInfo(in), false
}
