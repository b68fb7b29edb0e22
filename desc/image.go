package desc

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// CanvasElement is a pixel source backed by a drawable RGBA canvas.
type CanvasElement struct {
	Image *image.RGBA
}

// ImageElement is a pixel source backed by decoded, tightly packed RGBA8
// bytes.
type ImageElement struct {
	Width  int
	Height int
	Data   []byte
}

// NewCanvasElement returns a blank canvas of the given size.
func NewCanvasElement(width, height int) *CanvasElement {
	return &CanvasElement{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewImageElement rasterizes img into tightly packed RGBA8 bytes.
func NewImageElement(img image.Image) *ImageElement {
	b := img.Bounds()
	return NewImageElementScaled(img, b.Dx(), b.Dy())
}

// NewImageElementScaled rasterizes img into a width x height RGBA8 image,
// resampling with Catmull-Rom when the size differs from the source.
func NewImageElementScaled(img image.Image, width, height int) *ImageElement {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	src := img.Bounds()
	if src.Dx() == width && src.Dy() == height {
		xdraw.Draw(dst, dst.Bounds(), img, src.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	}
	return &ImageElement{Width: width, Height: height, Data: dst.Pix}
}
