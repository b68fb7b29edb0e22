// Package wgpu provides a native backend on top of the gogpu/wgpu HAL.
//
// The backend registers one variant per HAL API: "vulkan", "dx12", "gl",
// "noop" and, on darwin, "metal". Variants whose HAL API is not compiled
// in or not present on the machine register a factory that returns nil,
// so backend.Default skips them.
//
// # Shaders
//
// Shader stages carry WGSL source, one entry point named "main" per stage.
// Macros become module-scope const declarations prepended to the source.
// With WithSPIRV the stages are compiled to SPIR-V with naga before module
// creation; otherwise the WGSL is handed to the HAL unchanged.
//
// # Bindings
//
// Uniform blocks bind at their declared binding. A uniform sampler binds
// its texture at the declared binding and its sampler at
// binding+SamplerBindingOffset, both in bind group 0.
//
// # Indirect draws
//
// Buffers created with gputypes.BufferUsageIndirect keep a host copy of
// their contents. Drawing an input assembler with an indirect buffer
// issues one draw per packed draw record, indexed when the input
// assembler has an index buffer.
package wgpu
