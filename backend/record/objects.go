package record

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/native"
)

type object struct {
	log   *Log
	class string
	ID    uint32
}

func (o *object) record(method string, args ...any) {
	o.log.add(o.class, method, args...)
}

// Destroy records the call.
func (o *object) Destroy() { o.record("destroy") }

// Object is a recording object described by an info record of type T.
type Object[T any] struct {
	object
	Info *T
}

// Initialize records info and replaces Info with it.
func (o *Object[T]) Initialize(info *T) error {
	o.record("initialize", info)
	o.Info = info
	return nil
}

// Shader is a recording shader. Its hash is the object ID.
type Shader struct {
	Object[canon.ShaderInfo]
}

// Hash returns the shader's object ID.
func (s *Shader) Hash() uint32 { return s.ID }

// Queue records submissions.
type Queue struct {
	object
	Info *canon.QueueInfo
}

// Initialize records info and replaces Info with it.
func (q *Queue) Initialize(info *canon.QueueInfo) error {
	q.record("initialize", info)
	q.Info = info
	return nil
}

// Submit records the command buffers in submission order.
func (q *Queue) Submit(cmdBuffs []native.CommandBuffer) error {
	q.record("submit", cmdBuffs)
	return nil
}

// Buffer keeps the bytes written to it.
type Buffer struct {
	object
	Info *canon.BufferInfo
	Data []byte
}

func (b *Buffer) reset(info *canon.BufferInfo) {
	b.Info = info
	b.Data = nil
	if info != nil {
		b.Data = make([]byte, info.Size)
	}
}

// Initialize records info and reallocates Data to info.Size bytes.
func (b *Buffer) Initialize(info *canon.BufferInfo) error {
	b.record("initialize", info)
	b.reset(info)
	return nil
}

// Usage returns the usage of the last BufferInfo, or zero.
func (b *Buffer) Usage() gputypes.BufferUsage {
	if b.Info == nil {
		return 0
	}
	return b.Info.Usage
}

// Size returns the length of Data.
func (b *Buffer) Size() uint32 { return uint32(len(b.Data)) }

// Update copies size bytes of data to offset, growing the buffer if the
// write runs past its end.
func (b *Buffer) Update(data []byte, offset, size uint32) error {
	b.record("update", data, offset, size)
	if int(size) > len(data) {
		return fmt.Errorf("record: update of %d bytes from a %d-byte source", size, len(data))
	}
	if end := int(offset + size); end > len(b.Data) {
		b.Data = append(b.Data, make([]byte, end-len(b.Data))...)
	}
	copy(b.Data[offset:], data[:size])
	return nil
}

// Texture is a recording texture or texture view.
type Texture struct {
	object
	Info *canon.TextureInfo
	View *canon.TextureViewInfo
}

// Initialize records info and turns the texture into a fresh one.
func (t *Texture) Initialize(info *canon.TextureInfo) error {
	t.record("initialize", info)
	t.Info, t.View = info, nil
	return nil
}

// InitializeView records info and turns the texture into a view.
func (t *Texture) InitializeView(info *canon.TextureViewInfo) error {
	t.record("initializeView", info)
	t.Info, t.View = nil, info
	return nil
}

// Format returns the view's format for views and the texture's otherwise.
func (t *Texture) Format() gputypes.TextureFormat {
	switch {
	case t.View != nil:
		return t.View.Format
	case t.Info != nil:
		return t.Info.Format
	}
	return gputypes.TextureFormatUndefined
}

// IsView reports whether the last initialization was a view.
func (t *Texture) IsView() bool { return t.View != nil }

// CommandBuffer records commands.
type CommandBuffer struct {
	object
	Info *canon.CommandBufferInfo
}

// Initialize records info and replaces Info with it.
func (c *CommandBuffer) Initialize(info *canon.CommandBufferInfo) error {
	c.record("initialize", info)
	c.Info = info
	return nil
}

// Begin, End and EndRenderPass record the call.
func (c *CommandBuffer) Begin() error         { c.record("begin"); return nil }
func (c *CommandBuffer) End() error           { c.record("end"); return nil }
func (c *CommandBuffer) EndRenderPass() error { c.record("endRenderPass"); return nil }

// BeginRenderPass records the area and colors by value.
func (c *CommandBuffer) BeginRenderPass(fb native.Framebuffer, area *canon.Rect, flags canon.ClearFlags,
	colors []*canon.Color, depth float32, stencil uint32) error {
	var a canon.Rect
	if area != nil {
		a = *area
	}
	cs := make([]canon.Color, len(colors))
	for i, col := range colors {
		if col != nil {
			cs[i] = *col
		}
	}
	c.record("beginRenderPass", fb, a, flags, cs, depth, stencil)
	return nil
}

// BindPipelineState records the pipeline.
func (c *CommandBuffer) BindPipelineState(ps native.PipelineState) error {
	c.record("bindPipelineState", ps)
	return nil
}

// BindInputAssembler records the input assembler.
func (c *CommandBuffer) BindInputAssembler(ia native.InputAssembler) error {
	c.record("bindInputAssembler", ia)
	return nil
}

// SetViewport records the viewport pointer. Viewports are not scratch
// values, so the pointer stays valid.
func (c *CommandBuffer) SetViewport(vp *canon.Viewport) error {
	c.record("setViewport", vp)
	return nil
}

// SetScissor records the rectangle by value.
func (c *CommandBuffer) SetScissor(rect *canon.Rect) error {
	var r canon.Rect
	if rect != nil {
		r = *rect
	}
	c.record("setScissor", r)
	return nil
}

// SetBlendConstants records the color by value.
func (c *CommandBuffer) SetBlendConstants(col *canon.Color) error {
	var v canon.Color
	if col != nil {
		v = *col
	}
	c.record("setBlendConstants", v)
	return nil
}

// Draw records the input assembler.
func (c *CommandBuffer) Draw(ia native.InputAssembler) error {
	c.record("draw", ia)
	return nil
}
