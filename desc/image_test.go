package desc

import (
	"image"
	"image/color"
	"testing"
)

func TestNewImageElement(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 5))
	src.SetNRGBA(2, 3, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(3, 4, color.NRGBA{B: 255, A: 255})

	el := NewImageElement(src)
	if el.Width != 2 || el.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", el.Width, el.Height)
	}
	if len(el.Data) != 2*2*4 {
		t.Fatalf("len(Data) = %d, want 16", len(el.Data))
	}
	if el.Data[0] != 255 || el.Data[3] != 255 {
		t.Errorf("first pixel = %v, want opaque red", el.Data[0:4])
	}
	if got := el.Data[12:16]; got[2] != 255 || got[3] != 255 {
		t.Errorf("last pixel = %v, want opaque blue", got)
	}
}

func TestNewImageElementScaled(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	el := NewImageElementScaled(src, 4, 4)
	if el.Width != 4 || el.Height != 4 {
		t.Fatalf("size = %dx%d, want 4x4", el.Width, el.Height)
	}
	if len(el.Data) != 4*4*4 {
		t.Fatalf("len(Data) = %d, want 64", len(el.Data))
	}
	if el.Data[3] == 0 {
		t.Error("scaled opaque image should stay opaque")
	}
}

func TestNewCanvasElement(t *testing.T) {
	c := NewCanvasElement(8, 4)
	if got := len(c.Image.Pix); got != 8*4*4 {
		t.Errorf("len(Pix) = %d, want 128", got)
	}
}
