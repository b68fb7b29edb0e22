package wgpu

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/native"
)

// entryPoint is the entry point of every shader stage.
const entryPoint = "main"

// stageSource prepends the stage's macros to its WGSL source.
func stageSource(stage *canon.ShaderStage) string {
	if len(stage.Macros) == 0 {
		return stage.Source
	}
	var sb strings.Builder
	for _, m := range stage.Macros {
		value := m.Value
		if value == "" {
			value = "1"
		}
		fmt.Fprintf(&sb, "const %s = %s;\n", m.Macro, value)
	}
	sb.WriteString(stage.Source)
	return sb.String()
}

// compileSPIRV compiles WGSL source to SPIR-V words.
// IR validation is skipped; the HAL validates the module.
func compileSPIRV(source string) ([]uint32, error) {
	opts := naga.DefaultOptions()
	opts.Validate = false
	spirvBytes, err := naga.CompileWithOptions(source, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// shaderHash hashes the shader name and its stage sources with FNV-1a.
func shaderHash(info *canon.ShaderInfo) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(info.Name)) // fnv.Write never returns an error
	for i := range info.Stages {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(stageSource(&info.Stages[i])))
	}
	return h.Sum32()
}

// Shader holds one module per stage.
type Shader struct {
	d       *Device
	info    canon.ShaderInfo
	modules map[gputypes.ShaderStage]hal.ShaderModule
	hash    uint32
}

// Hash returns the FNV-1a hash of the name and stage sources.
func (s *Shader) Hash() uint32 { return s.hash }

// Module returns the module of a stage, or nil.
func (s *Shader) Module(stage gputypes.ShaderStage) hal.ShaderModule {
	return s.modules[stage]
}

// Destroy releases every stage module.
func (s *Shader) Destroy() {
	for stage, m := range s.modules {
		s.d.device.DestroyShaderModule(m)
		delete(s.modules, stage)
	}
}

// CreateShader creates one module per stage. Macros become WGSL const
// declarations; with WithSPIRV the source is compiled to SPIR-V first.
func (d *Device) CreateShader(info *canon.ShaderInfo) (native.Shader, error) {
	if info == nil {
		return nil, fmt.Errorf("createShader: %w", ErrNilDescriptor)
	}
	s := &Shader{
		d:       d,
		info:    *info,
		modules: make(map[gputypes.ShaderStage]hal.ShaderModule, len(info.Stages)),
		hash:    shaderHash(info),
	}
	for i := range info.Stages {
		stage := &info.Stages[i]
		source := hal.ShaderSource{WGSL: stageSource(stage)}
		if d.spirv {
			code, err := compileSPIRV(source.WGSL)
			if err != nil {
				s.Destroy()
				return nil, fmt.Errorf("createShader %q: %w", info.Name, err)
			}
			source = hal.ShaderSource{SPIRV: code}
		}
		m, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  info.Name,
			Source: source,
		})
		if err != nil {
			s.Destroy()
			return nil, fmt.Errorf("createShader %q: %w", info.Name, err)
		}
		s.modules[stage.Type] = m
	}
	return s, nil
}
