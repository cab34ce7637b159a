// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"fmt"
	"slices"
	"strings"

	"github.com/glskel/glskel/glsl"
	"github.com/glskel/glskel/gpu"
)

type shader struct {
	typ      gpu.ShaderTypes
	src      string
	compiled bool
	iface    *glsl.Interface
	log      string

	// deleted is set by DeleteShader while still attached to a program.
	deleted  bool
	attached int
}

type block struct {
	name    string
	binding gpu.BindingPoint
	members []glsl.Var
}

type uniform struct {
	name  string
	value int
}

type program struct {
	stages []gpu.Shader
	linked bool
	log    string

	// link results
	blocks   []block
	uniforms []uniform
	vertex   VertexKernel
	fragment FragmentKernel
	varyings []int
}

// CreateShader makes a new shader object of the given type.
func (dev *Device) CreateShader(typ gpu.ShaderTypes) gpu.Shader {
	if typ < 0 || typ >= gpu.ShaderTypesN {
		dev.fail("CreateShader: invalid type %v", typ)
		return 0
	}
	sh := gpu.Shader(dev.newName())
	dev.shaders[sh] = &shader{typ: typ}
	return sh
}

// ShaderSource sets the source of the shader. Any trailing NUL
// terminator is dropped.
func (dev *Device) ShaderSource(sh gpu.Shader, src string) {
	s := dev.shaders[sh]
	if s == nil {
		dev.fail("ShaderSource: no shader %d", sh)
		return
	}
	s.src = strings.TrimRight(src, "\x00")
}

// CompileShader scans and reflects the shader source.
func (dev *Device) CompileShader(sh gpu.Shader) (bool, string) {
	s := dev.shaders[sh]
	if s == nil {
		dev.fail("CompileShader: no shader %d", sh)
		return false, ""
	}
	s.compiled = false
	s.iface = nil
	if strings.TrimSpace(s.src) == "" {
		s.log = "0:0(1): error: empty shader source\n"
		return false, s.log
	}
	si, err := glsl.Reflect(s.src)
	if err != nil {
		s.log = err.Error() + "\n"
		return false, s.log
	}
	if si.Version == "" {
		s.log = "0:0(1): error: missing #version directive\n"
		return false, s.log
	}
	s.iface = si
	s.compiled = true
	s.log = ""
	return true, ""
}

// DeleteShader deletes the shader, deferred while it is attached.
func (dev *Device) DeleteShader(sh gpu.Shader) {
	s := dev.shaders[sh]
	if s == nil {
		return
	}
	if s.attached > 0 {
		s.deleted = true
		return
	}
	delete(dev.shaders, sh)
}

// LiveShaders returns the number of shader objects that have not been
// deleted, including those whose deletion waits on a program.
func (dev *Device) LiveShaders() int {
	n := 0
	for _, s := range dev.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// CreateProgram makes a new empty program object.
func (dev *Device) CreateProgram() gpu.Program {
	pr := gpu.Program(dev.newName())
	dev.programs[pr] = &program{}
	return pr
}

// AttachShader attaches the shader to the program.
func (dev *Device) AttachShader(pr gpu.Program, sh gpu.Shader) {
	p, s := dev.programs[pr], dev.shaders[sh]
	if p == nil || s == nil {
		dev.fail("AttachShader: no program %d or shader %d", pr, sh)
		return
	}
	if slices.Contains(p.stages, sh) {
		dev.fail("AttachShader: shader %d already attached to program %d", sh, pr)
		return
	}
	p.stages = append(p.stages, sh)
	s.attached++
}

// DetachShader detaches the shader, completing a deferred deletion.
func (dev *Device) DetachShader(pr gpu.Program, sh gpu.Shader) {
	p, s := dev.programs[pr], dev.shaders[sh]
	if p == nil || s == nil {
		dev.fail("DetachShader: no program %d or shader %d", pr, sh)
		return
	}
	i := slices.Index(p.stages, sh)
	if i < 0 {
		dev.fail("DetachShader: shader %d not attached to program %d", sh, pr)
		return
	}
	p.stages = slices.Delete(p.stages, i, i+1)
	dev.release(sh, s)
}

func (dev *Device) release(sh gpu.Shader, s *shader) {
	s.attached--
	if s.attached == 0 && s.deleted {
		delete(dev.shaders, sh)
	}
}

// LinkProgram checks that the attached stages form a complete program and
// resolves the kernels that execute them.
func (dev *Device) LinkProgram(pr gpu.Program) (bool, string) {
	p := dev.programs[pr]
	if p == nil {
		dev.fail("LinkProgram: no program %d", pr)
		return false, ""
	}
	p.linked = false
	err := dev.link(p)
	if err != nil {
		p.log = "error: " + err.Error() + "\n"
		return false, p.log
	}
	p.log = ""
	p.linked = true
	return true, ""
}

func (dev *Device) link(p *program) error {
	var stages [gpu.ShaderTypesN]*shader
	for _, sh := range p.stages {
		s := dev.shaders[sh]
		if !s.compiled {
			return fmt.Errorf("linking with uncompiled %s shader", s.typ)
		}
		if stages[s.typ] != nil {
			return fmt.Errorf("more than one %s shader attached", s.typ)
		}
		stages[s.typ] = s
	}
	vs, fs := stages[gpu.VertexShader], stages[gpu.FragmentShader]
	if vs == nil || fs == nil {
		return fmt.Errorf("program requires both a vertex and a fragment shader")
	}

	// fragment inputs must be written by the vertex stage
	var varyings []int
	for _, in := range fs.iface.Inputs {
		out := matchOutput(vs.iface.Outputs, in)
		if out == nil {
			return fmt.Errorf("fragment shader input `%s' has no matching vertex shader output", in.Name)
		}
		if out.Type != in.Type {
			return fmt.Errorf("vertex shader output `%s' declared as type `%s', but fragment shader input declared as type `%s'", out.Name, out.Type, in.Type)
		}
		loc := out.Location()
		if loc < 0 || loc >= MaxVaryings {
			return fmt.Errorf("varying `%s' has no location in [0, %d)", in.Name, MaxVaryings)
		}
		varyings = append(varyings, loc)
	}

	var blocks []block
	var uniforms []uniform
	for _, s := range []*shader{vs, fs} {
		for _, bl := range s.iface.Blocks {
			i := slices.IndexFunc(blocks, func(b block) bool { return b.name == bl.Name })
			bind, _ := bl.Binding()
			if i < 0 {
				blocks = append(blocks, block{name: bl.Name, binding: gpu.BindingPoint(bind), members: bl.Members})
				continue
			}
			if blocks[i].binding != gpu.BindingPoint(bind) {
				return fmt.Errorf("uniform block `%s' has mismatching bindings %d and %d between stages", bl.Name, blocks[i].binding, bind)
			}
			if !sameMembers(blocks[i].members, bl.Members) {
				return fmt.Errorf("definitions of uniform block `%s' do not match", bl.Name)
			}
		}
		for _, u := range s.iface.Uniforms {
			if slices.ContainsFunc(uniforms, func(v uniform) bool { return v.name == u.Name }) {
				continue
			}
			unit, _ := u.Layout.Get("binding")
			uniforms = append(uniforms, uniform{name: u.Name, value: unit})
		}
	}

	vk, ok := dev.vertexKernels[vs.src]
	if !ok {
		return fmt.Errorf("vertex shader is not executable by this device: no kernel registered for its source")
	}
	fk, ok := dev.fragmentKernels[fs.src]
	if !ok {
		return fmt.Errorf("fragment shader is not executable by this device: no kernel registered for its source")
	}
	p.blocks = blocks
	p.uniforms = uniforms
	p.vertex = vk
	p.fragment = fk
	p.varyings = varyings
	return nil
}

func matchOutput(outs []glsl.Var, in glsl.Var) *glsl.Var {
	for i := range outs {
		out := &outs[i]
		if in.Location() >= 0 && out.Location() == in.Location() {
			return out
		}
		if in.Location() < 0 && out.Name == in.Name {
			return out
		}
	}
	return nil
}

func sameMembers(a, b []glsl.Var) bool {
	return slices.EqualFunc(a, b, func(x, y glsl.Var) bool {
		return x.Name == y.Name && x.Type == y.Type
	})
}

// DeleteProgram deletes the program and releases its attached shaders.
func (dev *Device) DeleteProgram(pr gpu.Program) {
	p := dev.programs[pr]
	if p == nil {
		return
	}
	for _, sh := range p.stages {
		if s := dev.shaders[sh]; s != nil {
			dev.release(sh, s)
		}
	}
	if dev.current == pr {
		dev.current = 0
	}
	delete(dev.programs, pr)
}

// UniformBlockIndex returns the index of the named block in the linked
// program, or gpu.InvalidIndex.
func (dev *Device) UniformBlockIndex(pr gpu.Program, name string) gpu.BlockIndex {
	p := dev.programs[pr]
	if p == nil || !p.linked {
		dev.fail("UniformBlockIndex: program %d is not linked", pr)
		return gpu.InvalidIndex
	}
	for i, bl := range p.blocks {
		if bl.name == name {
			return gpu.BlockIndex(i)
		}
	}
	return gpu.InvalidIndex
}

// UniformBlockBinding assigns the binding point of the block at idx.
func (dev *Device) UniformBlockBinding(pr gpu.Program, idx gpu.BlockIndex, pt gpu.BindingPoint) {
	p := dev.programs[pr]
	if p == nil || !p.linked || int(idx) >= len(p.blocks) {
		dev.fail("UniformBlockBinding: invalid program %d or block index %d", pr, idx)
		return
	}
	p.blocks[idx].binding = pt
}

// BlockBinding returns the binding point currently assigned to the named
// block of the program.
func (dev *Device) BlockBinding(pr gpu.Program, name string) (gpu.BindingPoint, bool) {
	p := dev.programs[pr]
	if p == nil {
		return 0, false
	}
	for _, bl := range p.blocks {
		if bl.name == name {
			return bl.binding, true
		}
	}
	return 0, false
}

// ProgramUniformInt sets the value of the uniform at loc. Locations are
// assigned to the non-block uniforms of the program in declaration
// order, vertex stage first.
func (dev *Device) ProgramUniformInt(pr gpu.Program, loc int32, v int32) {
	p := dev.programs[pr]
	if p == nil || !p.linked || loc < 0 || int(loc) >= len(p.uniforms) {
		dev.fail("ProgramUniformInt: invalid program %d or location %d", pr, loc)
		return
	}
	p.uniforms[loc].value = int(v)
}
