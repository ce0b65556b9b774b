// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/lightfield/internal/shader"

// Fragment is the input of one fragment invocation.
type Fragment struct {
	// X and Y are the pixel coordinates in the target.
	X, Y int

	// U and V are the interpolated quad texture coordinates.
	U, V float32

	// Width and Height are the target dimensions.
	Width, Height int
}

// FragmentFunc computes the color of one fragment. It must not mutate
// shared state: backends may evaluate fragments in parallel.
type FragmentFunc func(f Fragment) Color

// ProgramDescriptor describes a program to compile.
type ProgramDescriptor struct {
	// Label is a debug label.
	Label string

	// Source is the WGSL module with vs_main and fs_main entry points.
	Source string

	// Fragment is the CPU evaluation of fs_main used by software backends.
	Fragment FragmentFunc
}

// Program is a compiled draw program.
type Program struct {
	label    string
	spirv    []uint32
	fragment FragmentFunc
	module   *shader.Module
}

// Label returns the debug label.
func (p *Program) Label() string { return p.label }

// SPIRV returns the compiled SPIR-V words.
func (p *Program) SPIRV() []uint32 { return p.spirv }

// Destroy releases device resources held by the program.
func (p *Program) Destroy() {
	if p == nil {
		return
	}
	p.module.Destroy()
	p.module = nil
	p.fragment = nil
}

// Compiler turns WGSL source into SPIR-V words.
type Compiler func(label, source string) ([]uint32, error)

// DefaultCompiler compiles with naga.
var DefaultCompiler Compiler = shader.CompileToSPIRV

// compileProgram validates and compiles desc for the given device handle.
func compileProgram(handle DeviceHandle, compile Compiler, desc ProgramDescriptor) (*Program, error) {
	if desc.Fragment == nil {
		return nil, ErrNilProgram
	}
	spirv, err := compile(desc.Label, desc.Source)
	if err != nil {
		return nil, err
	}
	module, err := shader.NewModule(handle, desc.Label, spirv)
	if err != nil {
		return nil, err
	}
	return &Program{
		label:    desc.Label,
		spirv:    spirv,
		fragment: desc.Fragment,
		module:   module,
	}, nil
}
