package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/native"
)

// CommandBuffer records render passes into a HAL command encoder.
type CommandBuffer struct {
	d        *Device
	info     canon.CommandBufferInfo
	encoder  hal.CommandEncoder
	pass     hal.RenderPassEncoder
	recorded hal.CommandBuffer
	ia       *InputAssembler
}

// CreateCommandBuffer creates a command buffer backed by its own HAL
// encoder.
func (d *Device) CreateCommandBuffer(info *canon.CommandBufferInfo) (native.CommandBuffer, error) {
	enc, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "gfxbind commands"})
	if err != nil {
		return nil, fmt.Errorf("createCommandBuffer: %w", err)
	}
	cb := &CommandBuffer{d: d, encoder: enc}
	if info != nil {
		cb.info = *info
	}
	return cb, nil
}

// Begin starts recording. A previously recorded buffer is released once
// the device is idle.
func (c *CommandBuffer) Begin() error {
	if c.recorded != nil {
		if err := c.d.device.WaitIdle(); err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		c.encoder.ResetAll([]hal.CommandBuffer{c.recorded})
		c.d.device.FreeCommandBuffer(c.recorded)
		c.recorded = nil
	}
	if err := c.encoder.BeginEncoding("gfxbind commands"); err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	return nil
}

// End closes an open render pass and finishes encoding. The recorded
// buffer is kept for Queue.Submit.
func (c *CommandBuffer) End() error {
	if c.pass != nil {
		c.pass.End()
		c.pass = nil
	}
	cmd, err := c.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	c.recorded = cmd
	return nil
}

// BeginRenderPass begins a pass over the framebuffer's attachments. Clear
// flags override the render pass load operations; viewport and scissor
// are set to area.
func (c *CommandBuffer) BeginRenderPass(fb native.Framebuffer, area *canon.Rect, flags canon.ClearFlags,
	colors []*canon.Color, depth float32, stencil uint32) error {
	f, err := own[*Framebuffer](fb)
	if err != nil || f == nil {
		return fmt.Errorf("beginRenderPass: framebuffer: %w", ErrForeignObject)
	}
	if c.pass != nil {
		c.pass.End()
	}

	rp := f.renderPass.info
	desc := &hal.RenderPassDescriptor{Label: "gfxbind pass"}
	for i, t := range f.colors {
		att := hal.RenderPassColorAttachment{
			View:    t.view,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}
		if i < len(rp.ColorAttachments) {
			ca := rp.ColorAttachments[i]
			if ca.LoadOp != gputypes.LoadOpUndefined {
				att.LoadOp = ca.LoadOp
			}
			if ca.StoreOp != gputypes.StoreOpUndefined {
				att.StoreOp = ca.StoreOp
			}
		}
		if flags&canon.ClearColor != 0 {
			att.LoadOp = gputypes.LoadOpClear
		}
		if att.LoadOp == gputypes.LoadOpClear && i < len(colors) {
			att.ClearValue = halColor(colors[i])
		}
		desc.ColorAttachments = append(desc.ColorAttachments, att)
	}
	if ds := f.depthStencil; ds != nil {
		att := &hal.RenderPassDepthStencilAttachment{
			View:              ds.view,
			DepthLoadOp:       gputypes.LoadOpLoad,
			DepthStoreOp:      gputypes.StoreOpStore,
			DepthClearValue:   depth,
			StencilClearValue: stencil,
		}
		if a := rp.DepthStencilAttachment; a != nil {
			if a.DepthLoadOp != gputypes.LoadOpUndefined {
				att.DepthLoadOp = a.DepthLoadOp
			}
			if a.DepthStoreOp != gputypes.StoreOpUndefined {
				att.DepthStoreOp = a.DepthStoreOp
			}
		}
		if flags&canon.ClearDepth != 0 {
			att.DepthLoadOp = gputypes.LoadOpClear
		}
		if ds.format.HasStencil() {
			att.StencilLoadOp = gputypes.LoadOpLoad
			att.StencilStoreOp = gputypes.StoreOpStore
			if a := rp.DepthStencilAttachment; a != nil && a.StencilLoadOp != gputypes.LoadOpUndefined {
				att.StencilLoadOp = a.StencilLoadOp
			}
			if flags&canon.ClearStencil != 0 {
				att.StencilLoadOp = gputypes.LoadOpClear
			}
		}
		desc.DepthStencilAttachment = att
	}

	c.pass = c.encoder.BeginRenderPass(desc)
	if area != nil && area.Width > 0 && area.Height > 0 {
		c.pass.SetViewport(float32(area.X), float32(area.Y), float32(area.Width), float32(area.Height), 0, 1)
		c.pass.SetScissorRect(uint32(max(area.X, 0)), uint32(max(area.Y, 0)), area.Width, area.Height)
	}
	return nil
}

// EndRenderPass ends the open pass. It fails with ErrNoRenderPass when no
// pass is open.
func (c *CommandBuffer) EndRenderPass() error {
	if c.pass == nil {
		return fmt.Errorf("endRenderPass: %w", ErrNoRenderPass)
	}
	c.pass.End()
	c.pass = nil
	return nil
}

// BindPipelineState sets the render pipeline of the open pass.
func (c *CommandBuffer) BindPipelineState(ps native.PipelineState) error {
	p, err := own[*PipelineState](ps)
	if err != nil || p == nil {
		return fmt.Errorf("bindPipelineState: %w", ErrForeignObject)
	}
	if c.pass == nil {
		return fmt.Errorf("bindPipelineState: %w", ErrNoRenderPass)
	}
	c.pass.SetPipeline(p.pipeline)
	return nil
}

// BindInputAssembler binds the vertex buffers to slots in order and the
// index buffer, if any, with a format derived from its stride.
func (c *CommandBuffer) BindInputAssembler(ia native.InputAssembler) error {
	a, err := own[*InputAssembler](ia)
	if err != nil || a == nil {
		return fmt.Errorf("bindInputAssembler: %w", ErrForeignObject)
	}
	if c.pass == nil {
		return fmt.Errorf("bindInputAssembler: %w", ErrNoRenderPass)
	}
	for slot, vb := range a.vertexBuffers {
		c.pass.SetVertexBuffer(uint32(slot), vb.buf, 0)
	}
	if a.indexBuffer != nil {
		c.pass.SetIndexBuffer(a.indexBuffer.buf, a.indexFormat(), 0)
	}
	c.ia = a
	return nil
}

// SetViewport sets the viewport of the open pass.
func (c *CommandBuffer) SetViewport(vp *canon.Viewport) error {
	if c.pass == nil {
		return fmt.Errorf("setViewport: %w", ErrNoRenderPass)
	}
	if vp == nil {
		return fmt.Errorf("setViewport: %w", ErrNilDescriptor)
	}
	c.pass.SetViewport(float32(vp.Left), float32(vp.Top), float32(vp.Width), float32(vp.Height), vp.MinDepth, vp.MaxDepth)
	return nil
}

// SetScissor sets the scissor of the open pass. Negative origins clamp
// to zero.
func (c *CommandBuffer) SetScissor(rect *canon.Rect) error {
	if c.pass == nil {
		return fmt.Errorf("setScissor: %w", ErrNoRenderPass)
	}
	if rect == nil {
		return fmt.Errorf("setScissor: %w", ErrNilDescriptor)
	}
	c.pass.SetScissorRect(uint32(max(rect.X, 0)), uint32(max(rect.Y, 0)), rect.Width, rect.Height)
	return nil
}

// SetBlendConstants sets the blend constant of the open pass.
func (c *CommandBuffer) SetBlendConstants(col *canon.Color) error {
	if c.pass == nil {
		return fmt.Errorf("setBlendConstants: %w", ErrNoRenderPass)
	}
	hc := halColor(col)
	c.pass.SetBlendConstant(&hc)
	return nil
}

// Draw draws the input assembler. With an indirect buffer it issues one
// draw per packed draw record; otherwise it draws every vertex, or every
// index when an index buffer is bound.
func (c *CommandBuffer) Draw(ia native.InputAssembler) error {
	a, err := own[*InputAssembler](ia)
	if err != nil || a == nil {
		return fmt.Errorf("draw: %w", ErrForeignObject)
	}
	if c.pass == nil {
		return fmt.Errorf("draw: %w", ErrNoRenderPass)
	}
	if c.ia != a {
		if err := c.BindInputAssembler(a); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}
	indexed := a.indexBuffer != nil
	if a.indirectBuffer != nil {
		for _, di := range a.indirectBuffer.drawInfos() {
			instances := atLeastOne(di.InstanceCount)
			if indexed {
				c.pass.DrawIndexed(di.IndexCount, instances, di.FirstIndex, di.VertexOffset, di.FirstInstance)
			} else {
				c.pass.Draw(di.VertexCount, instances, di.FirstVertex, di.FirstInstance)
			}
		}
		return nil
	}
	if indexed {
		c.pass.DrawIndexed(a.indexCount(), 1, 0, 0, 0)
	} else {
		c.pass.Draw(a.vertexCount(), 1, 0, 0)
	}
	return nil
}

// Destroy ends any open pass and releases the recorded buffer and the
// encoder.
func (c *CommandBuffer) Destroy() {
	if c.pass != nil {
		c.pass.End()
		c.pass = nil
	}
	if c.recorded != nil {
		c.d.device.FreeCommandBuffer(c.recorded)
		c.recorded = nil
	}
	if c.encoder != nil {
		c.encoder.Destroy()
		c.encoder = nil
	}
}
