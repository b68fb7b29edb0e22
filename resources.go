package gfxbind

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/adapt"
	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/desc"
	"github.com/gogpu/gfxbind/native"
)

// Initialize methods re-initialize an object in place. They fail with
// adapt.ErrNoEntry on backends without native.ConceptReinitialize.

// Queue submits recorded command buffers to the device.
type Queue struct {
	object
}

// Native returns the backend's queue object, or nil for a nil Queue.
func (q *Queue) Native() any {
	if q == nil {
		return nil
	}
	return q.native
}

// Initialize re-initializes the queue. A nil ForceSync means false.
func (q *Queue) Initialize(info *desc.QueueInfo) error {
	return q.exec("initialize", info)
}

// Submit submits the command buffers in order.
func (q *Queue) Submit(cmdBuffs ...*CommandBuffer) error {
	list := make([]native.CommandBuffer, len(cmdBuffs))
	for i, cb := range cmdBuffs {
		nc, ok := cb.Native().(native.CommandBuffer)
		if !ok {
			return fmt.Errorf("Queue.submit: command buffer %d: %w", i, ErrDestroyed)
		}
		list[i] = nc
	}
	return q.exec("submit", list)
}

// CommandBuffer records render passes and draws for later submission.
// Recording happens between Begin and End.
type CommandBuffer struct {
	object
}

// Native returns the backend's command buffer object.
func (c *CommandBuffer) Native() any {
	if c == nil {
		return nil
	}
	return c.native
}

// Initialize re-initializes the command buffer for info.Queue.
func (c *CommandBuffer) Initialize(info *desc.CommandBufferInfo) error {
	return c.exec("initialize", info)
}

// Begin starts recording. Commands recorded by an earlier Begin and End
// pair are discarded.
func (c *CommandBuffer) Begin() error { return c.exec("begin") }
// End finishes recording, closing any open render pass.
func (c *CommandBuffer) End() error   { return c.exec("end") }

// BeginRenderPass begins a render pass on fb over area. Flags select which
// attachments are cleared, to colors, depth and stencil.
func (c *CommandBuffer) BeginRenderPass(fb *Framebuffer, area *desc.Rect, flags canon.ClearFlags,
	colors []desc.Color, depth float32, stencil uint32) error {
	return c.exec("beginRenderPass", fb, area, flags, colors, depth, stencil)
}

// EndRenderPass closes the render pass opened by BeginRenderPass.
func (c *CommandBuffer) EndRenderPass() error { return c.exec("endRenderPass") }

// BindPipelineState selects the pipeline used by subsequent draws.
func (c *CommandBuffer) BindPipelineState(ps *PipelineState) error {
	return c.exec("bindPipelineState", ps.Native())
}

// BindInputAssembler selects the vertex and index buffers used by
// subsequent draws.
func (c *CommandBuffer) BindInputAssembler(ia *InputAssembler) error {
	return c.exec("bindInputAssembler", ia.Native())
}

// SetViewport sets the viewport as left, top, width, height, minDepth,
// maxDepth.
func (c *CommandBuffer) SetViewport(vp *desc.Viewport) error {
	return c.exec("setViewport", vp)
}

// SetScissor sets the scissor rectangle. The rectangle is converted through
// the bridge's scratch Rect, so a nil rect reapplies the last one.
func (c *CommandBuffer) SetScissor(rect *desc.Rect) error {
	return c.exec("setScissor", rect)
}

// SetBlendConstants sets the constant blend color through the scratch
// Color. A nil color reapplies the last one.
func (c *CommandBuffer) SetBlendConstants(color *desc.Color) error {
	return c.exec("setBlendConstants", color)
}

// Draw issues the draws described by ia: one per indirect record when ia
// has an indirect buffer, otherwise one indexed or non-indexed draw.
func (c *CommandBuffer) Draw(ia *InputAssembler) error {
	return c.exec("draw", ia.Native())
}

// Buffer is a vertex, index, uniform or indirect buffer.
type Buffer struct {
	object
}

// Native returns the backend's buffer object.
func (b *Buffer) Native() any {
	if b == nil {
		return nil
	}
	return b.native
}

// Initialize re-creates the buffer storage from info.
func (b *Buffer) Initialize(info *desc.BufferInfo) error {
	return b.exec("initialize", info)
}

// Update uploads data at offset 0. Indirect buffers take a
// *desc.IndirectBuffer; other buffers take []byte, []uint16, []uint32,
// []int32 or []float32.
func (b *Buffer) Update(data any) error {
	return b.exec("update", data)
}

// UpdateAt uploads data at offset.
func (b *Buffer) UpdateAt(data any, offset uint32) error {
	return b.exec("update", data, offset)
}

// UpdateRange uploads size bytes of data at offset.
func (b *Buffer) UpdateRange(data any, offset, size uint32) error {
	return b.exec("update", data, offset, size)
}

// Usage returns the usage the buffer was created with.
func (b *Buffer) Usage() gputypes.BufferUsage {
	if nb, ok := b.Native().(native.Buffer); ok {
		return nb.Usage()
	}
	return 0
}

// Texture is a texture or a view over one.
type Texture struct {
	object
}

// Native returns the backend's texture object.
func (t *Texture) Native() any {
	if t == nil {
		return nil
	}
	return t.native
}

// Initialize re-initializes the texture, as a view when info.Texture is
// set.
func (t *Texture) Initialize(info *desc.TextureInfo) error {
	return t.exec("initialize", info)
}

// IsView reports whether the texture is a view over another texture.
func (t *Texture) IsView() bool {
	nt, ok := t.Native().(native.Texture)
	return ok && nt.IsView()
}

// Format returns the texel format.
func (t *Texture) Format() gputypes.TextureFormat {
	if nt, ok := t.Native().(native.Texture); ok {
		return nt.Format()
	}
	return gputypes.TextureFormatUndefined
}

// Sampler holds filtering and addressing state.
type Sampler struct {
	object
}

// Native returns the backend's sampler object.
func (s *Sampler) Native() any {
	if s == nil {
		return nil
	}
	return s.native
}

// Initialize re-initializes the sampler. A nil BorderColor keeps the
// color most recently converted.
func (s *Sampler) Initialize(info *desc.SamplerInfo) error {
	return s.exec("initialize", info)
}

// Shader is a compiled shader program.
type Shader struct {
	object
}

// Native returns the backend's shader object.
func (s *Shader) Native() any {
	if s == nil {
		return nil
	}
	return s.native
}

// Initialize recompiles the shader from info.
func (s *Shader) Initialize(info *desc.ShaderInfo) error {
	return s.exec("initialize", info)
}

// ID returns the backend's identifier for the shader program.
func (s *Shader) ID() (uint32, error) {
	v, err := s.call("id")
	if err != nil {
		return 0, err
	}
	return adapt.As[uint32](v)
}

// InputAssembler binds vertex, index and indirect buffers with their
// attribute layout.
type InputAssembler struct {
	object
}

// Native returns the backend's input assembler object.
func (ia *InputAssembler) Native() any {
	if ia == nil {
		return nil
	}
	return ia.native
}

// Initialize rebinds the input assembler's buffers and attributes.
func (ia *InputAssembler) Initialize(info *desc.InputAssemblerInfo) error {
	return ia.exec("initialize", info)
}

// RenderPass describes the attachments and load and store operations of
// a pass.
type RenderPass struct {
	object
}

// Native returns the backend's render pass object.
func (rp *RenderPass) Native() any {
	if rp == nil {
		return nil
	}
	return rp.native
}

// Initialize redefines the render pass attachments.
func (rp *RenderPass) Initialize(info *desc.RenderPassInfo) error {
	return rp.exec("initialize", info)
}

// Framebuffer binds textures to the attachments of a render pass.
type Framebuffer struct {
	object
}

// Native returns the backend's framebuffer object.
func (fb *Framebuffer) Native() any {
	if fb == nil {
		return nil
	}
	return fb.native
}

// Initialize rebinds the framebuffer's textures.
func (fb *Framebuffer) Initialize(info *desc.FramebufferInfo) error {
	return fb.exec("initialize", info)
}

// BindingLayout is the resource layout derived from a shader.
type BindingLayout struct {
	object
}

// Native returns the backend's binding layout object.
func (bl *BindingLayout) Native() any {
	if bl == nil {
		return nil
	}
	return bl.native
}

// Initialize re-derives the layout from info.Shader.
func (bl *BindingLayout) Initialize(info *desc.BindingLayoutInfo) error {
	return bl.exec("initialize", info)
}

// PipelineState is a compiled graphics pipeline.
type PipelineState struct {
	object
}

// Native returns the backend's pipeline object.
func (ps *PipelineState) Native() any {
	if ps == nil {
		return nil
	}
	return ps.native
}

// Initialize rebuilds the pipeline from info.
func (ps *PipelineState) Initialize(info *desc.PipelineStateInfo) error {
	return ps.exec("initialize", info)
}

var (
	_ desc.Resource = (*Device)(nil)
	_ desc.Resource = (*Queue)(nil)
	_ desc.Resource = (*CommandBuffer)(nil)
	_ desc.Resource = (*Buffer)(nil)
	_ desc.Resource = (*Texture)(nil)
	_ desc.Resource = (*Sampler)(nil)
	_ desc.Resource = (*Shader)(nil)
	_ desc.Resource = (*InputAssembler)(nil)
	_ desc.Resource = (*RenderPass)(nil)
	_ desc.Resource = (*Framebuffer)(nil)
	_ desc.Resource = (*BindingLayout)(nil)
	_ desc.Resource = (*PipelineState)(nil)
)
