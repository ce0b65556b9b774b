// Package shader compiles WGSL programs for the render passes.
//
// Every program is compiled to SPIR-V with naga while its pass loads. When
// the host device exposes a HAL device, the SPIR-V is also turned into a
// HAL shader module on that device.
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// ErrEmptySource is returned when a program has no WGSL source.
var ErrEmptySource = errors.New("shader: empty source")

// CompileToSPIRV compiles WGSL source to a SPIR-V word slice.
func CompileToSPIRV(label, wgslSource string) ([]uint32, error) {
	if wgslSource == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, label)
	}
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %s: %w", label, err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// Module is a HAL shader module together with the device that owns it.
type Module struct {
	device hal.Device
	module hal.ShaderModule
}

// Destroy releases the module. It is safe to call on a nil Module.
func (m *Module) Destroy() {
	if m == nil || m.module == nil {
		return
	}
	m.device.DestroyShaderModule(m.module)
	m.module = nil
}

// halProvider is implemented by device providers that expose HAL types.
type halProvider interface {
	HalDevice() any
}

// NewModule creates a HAL shader module when provider exposes a HAL device.
// It returns (nil, nil) for providers without HAL access; those backends
// execute programs without a device module.
func NewModule(provider any, label string, spirvCode []uint32) (*Module, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: create module %s: %w", label, err)
	}
	return &Module{device: device, module: module}, nil
}
