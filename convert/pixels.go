package convert

import (
	"github.com/gogpu/gfxbind/desc"
	"github.com/gogpu/gfxbind/internal/logging"
)

// TexImagesToBuffers extracts the raw pixel bytes of each image source.
// Sources must be *desc.CanvasElement or *desc.ImageElement. If any source
// is neither, the failure is logged and no list is returned, so the
// enclosing call is cancelled rather than issued with missing images.
func TexImagesToBuffers(images []any) ([][]byte, error) {
	if images == nil {
		return nil, nil
	}
	buffers := make([][]byte, 0, len(images))
	for i, img := range images {
		switch src := img.(type) {
		case *desc.CanvasElement:
			if src != nil && src.Image != nil {
				buffers = append(buffers, src.Image.Pix)
				continue
			}
		case *desc.ImageElement:
			if src != nil {
				buffers = append(buffers, src.Data)
				continue
			}
		}
		logging.Logger().Warn("convert: texImagesToBuffers failed", "index", i, "type", typeName(img))
		return nil, ErrUnknownPixelSource
	}
	return buffers, nil
}
