package wgpu

import "errors"

var (
	// ErrNilDescriptor is returned when a create or initialize call gets a
	// nil info record.
	ErrNilDescriptor = errors.New("wgpu: nil descriptor")

	// ErrForeignObject is returned when an argument was created by another
	// backend.
	ErrForeignObject = errors.New("wgpu: object not created by this backend")

	// ErrNoRenderPass is returned by pass commands outside a render pass.
	ErrNoRenderPass = errors.New("wgpu: no render pass in progress")

	// ErrNotRecorded is returned when submitting a command buffer that was
	// never ended.
	ErrNotRecorded = errors.New("wgpu: command buffer not recorded")

	// ErrOutOfRange is returned by buffer writes past the end of the buffer.
	ErrOutOfRange = errors.New("wgpu: write out of range")

	// ErrNoVertexStage is returned for shaders without a vertex stage.
	ErrNoVertexStage = errors.New("wgpu: shader has no vertex stage")
)
