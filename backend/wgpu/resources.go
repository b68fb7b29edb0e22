package wgpu

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/convert"
	"github.com/gogpu/gfxbind/desc"
	"github.com/gogpu/gfxbind/native"
)

// Queue submits command buffers to the device queue.
type Queue struct {
	d    *Device
	info canon.QueueInfo
}

// Submit submits the recorded command buffers in order. With ForceSync the
// call returns after the device has gone idle.
func (q *Queue) Submit(cmdBuffs []native.CommandBuffer) error {
	bufs := make([]hal.CommandBuffer, 0, len(cmdBuffs))
	for i, c := range cmdBuffs {
		cb, err := own[*CommandBuffer](c)
		if err != nil || cb == nil {
			return fmt.Errorf("submit: command buffer %d: %w", i, ErrForeignObject)
		}
		if cb.recorded == nil {
			return fmt.Errorf("submit: command buffer %d: %w", i, ErrNotRecorded)
		}
		bufs = append(bufs, cb.recorded)
	}
	if _, err := q.d.queue.Submit(bufs); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if q.info.ForceSync {
		return q.d.device.WaitIdle()
	}
	return nil
}

// Destroy is a no-op. The queue belongs to the device.
func (q *Queue) Destroy() {}

// Buffer is a HAL buffer. Indirect buffers keep a host copy of their
// contents for draw decoding.
type Buffer struct {
	d    *Device
	buf  hal.Buffer
	info canon.BufferInfo
	size uint64
	host []byte
	// written is the end of the valid host bytes. An update at offset 0
	// resets it; later offsets extend it.
	written uint32
}

// Usage returns the usage the buffer was created with.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.info.Usage }
// Size returns the requested size in bytes, before alignment.
func (b *Buffer) Size() uint32                { return b.info.Size }

// Update writes size bytes of data at offset. Writes are padded to a
// multiple of four bytes as the queue requires.
func (b *Buffer) Update(data []byte, offset, size uint32) error {
	if int(size) > len(data) {
		return fmt.Errorf("update: %d bytes from a %d-byte source: %w", size, len(data), ErrOutOfRange)
	}
	end := uint64(offset) + align4(uint64(size))
	if end > b.size {
		return fmt.Errorf("update: [%d, %d) past buffer size %d: %w", offset, end, b.size, ErrOutOfRange)
	}
	chunk := data[:size]
	if size%4 != 0 {
		padded := make([]byte, align4(uint64(size)))
		copy(padded, chunk)
		chunk = padded
	}
	if err := b.d.queue.WriteBuffer(b.buf, uint64(offset), chunk); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if b.host != nil {
		copy(b.host[offset:], chunk)
		if offset == 0 {
			b.written = size
		} else {
			b.written = max(b.written, offset+size)
		}
	}
	return nil
}

// Read maps the buffer and copies size bytes at offset out of it. The
// buffer must be mappable; the noop HAL maps every buffer.
func (b *Buffer) Read(offset, size uint32) ([]byte, error) {
	m, err := b.d.device.MapBuffer(b.buf, uint64(offset), uint64(size))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	defer func() { _ = b.d.device.UnmapBuffer(b.buf) }()
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(m.Ptr), size))
	return out, nil
}

// drawInfos decodes the packed draw records of an indirect buffer, up to
// the end of the last update.
func (b *Buffer) drawInfos() []desc.DrawInfo {
	n := int(b.written) / (convert.IndirectStride * 4)
	if b.info.Stride > 0 {
		n = min(n, int(b.info.Size/b.info.Stride))
	}
	out := make([]desc.DrawInfo, n)
	for i := range out {
		rec := b.host[i*convert.IndirectStride*4:]
		word := func(k int) uint32 { return binary.LittleEndian.Uint32(rec[k*4:]) }
		out[i] = desc.DrawInfo{
			VertexCount:   word(0),
			FirstVertex:   word(1),
			IndexCount:    word(2),
			FirstIndex:    word(3),
			VertexOffset:  int32(word(4)),
			InstanceCount: word(5),
			FirstInstance: word(6),
		}
	}
	return out
}

// Destroy releases the HAL buffer.
func (b *Buffer) Destroy() {
	if b.buf != nil {
		b.d.device.DestroyBuffer(b.buf)
		b.buf = nil
	}
}

// Texture is a HAL texture with a view, or a view over another Texture.
type Texture struct {
	d      *Device
	tex    hal.Texture
	view   hal.TextureView
	format gputypes.TextureFormat
	width  uint32
	height uint32
	isView bool
}

// Format returns the texel format of the view.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }
// IsView reports whether t was created with CreateTextureView.
func (t *Texture) IsView() bool                   { return t.isView }

// Destroy releases the view, and the texture itself unless t is a view.
func (t *Texture) Destroy() {
	if t.view != nil {
		t.d.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if !t.isView && t.tex != nil {
		t.d.device.DestroyTexture(t.tex)
	}
	t.tex = nil
}

// Sampler is a HAL sampler.
type Sampler struct {
	d       *Device
	sampler hal.Sampler
}

// Destroy releases the HAL sampler.
func (s *Sampler) Destroy() {
	if s.sampler != nil {
		s.d.device.DestroySampler(s.sampler)
		s.sampler = nil
	}
}

// InputAssembler groups the buffers a draw reads.
type InputAssembler struct {
	attributes     []canon.Attribute
	vertexBuffers  []*Buffer
	indexBuffer    *Buffer
	indirectBuffer *Buffer
}

func (ia *InputAssembler) vertexCount() uint32 {
	if len(ia.vertexBuffers) == 0 {
		return 0
	}
	vb := ia.vertexBuffers[0]
	if vb.info.Stride == 0 {
		return 0
	}
	return vb.info.Size / vb.info.Stride
}

func (ia *InputAssembler) indexCount() uint32 {
	if ia.indexBuffer == nil || ia.indexBuffer.info.Stride == 0 {
		return 0
	}
	return ia.indexBuffer.info.Size / ia.indexBuffer.info.Stride
}

func (ia *InputAssembler) indexFormat() gputypes.IndexFormat {
	if ia.indexBuffer != nil && ia.indexBuffer.info.Stride == 4 {
		return gputypes.IndexFormatUint32
	}
	return gputypes.IndexFormatUint16
}

// Destroy is a no-op. The buffers are owned by their creators.
func (ia *InputAssembler) Destroy() {}

// RenderPass holds the attachment description used to begin passes.
type RenderPass struct {
	info canon.RenderPassInfo
}

// Destroy is a no-op.
func (rp *RenderPass) Destroy() {}

// Framebuffer lists the textures bound to a render pass.
type Framebuffer struct {
	renderPass   *RenderPass
	colors       []*Texture
	depthStencil *Texture
}

// Destroy is a no-op. The textures are owned by their creators.
func (fb *Framebuffer) Destroy() {}

// BindingLayout is a HAL bind group layout.
type BindingLayout struct {
	d      *Device
	layout hal.BindGroupLayout
}

// Destroy releases the bind group layout.
func (bl *BindingLayout) Destroy() {
	if bl.layout != nil {
		bl.d.device.DestroyBindGroupLayout(bl.layout)
		bl.layout = nil
	}
}

// PipelineState owns a render pipeline with its layouts.
type PipelineState struct {
	d               *Device
	pipeline        hal.RenderPipeline
	layout          hal.PipelineLayout
	bindGroupLayout hal.BindGroupLayout
}

// Destroy releases the pipeline and its layouts.
func (ps *PipelineState) Destroy() {
	if ps.pipeline != nil {
		ps.d.device.DestroyRenderPipeline(ps.pipeline)
		ps.pipeline = nil
	}
	if ps.layout != nil {
		ps.d.device.DestroyPipelineLayout(ps.layout)
		ps.layout = nil
	}
	if ps.bindGroupLayout != nil {
		ps.d.device.DestroyBindGroupLayout(ps.bindGroupLayout)
		ps.bindGroupLayout = nil
	}
}
