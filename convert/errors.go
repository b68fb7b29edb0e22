package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPixelSource is returned when an image source is neither a
	// canvas nor an image element.
	ErrUnknownPixelSource = errors.New("convert: unknown pixel source")

	// ErrUnsupportedSource is returned when a buffer update source is not
	// one of the supported slice types.
	ErrUnsupportedSource = errors.New("convert: unsupported buffer source")
)

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
