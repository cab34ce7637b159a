// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"strings"

	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/gl/v4.5-core/gl"
)

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

// cString returns src with a null terminator.
func cString(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

// CreateShader makes a new shader object of the given type.
func (dev *Device) CreateShader(typ gpu.ShaderTypes) gpu.Shader {
	t, ok := glShaders[typ]
	if !ok {
		return 0
	}
	return gpu.Shader(gl.CreateShader(t))
}

// ShaderSource sets the source text of the shader.
func (dev *Device) ShaderSource(sh gpu.Shader, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(uint32(sh), 1, csources, nil)
	free()
}

// CompileShader compiles the shader and returns its info log.
func (dev *Device) CompileShader(sh gpu.Shader) (bool, string) {
	gl.CompileShader(uint32(sh))
	var status int32
	gl.GetShaderiv(uint32(sh), gl.COMPILE_STATUS, &status)
	var logLength int32
	gl.GetShaderiv(uint32(sh), gl.INFO_LOG_LENGTH, &logLength)
	log := ""
	if logLength > 0 {
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(uint32(sh), logLength, nil, gl.Str(msg))
		log = gl.GoStr(gl.Str(msg))
	}
	return status != gl.FALSE, log
}

// DeleteShader deletes the shader.
func (dev *Device) DeleteShader(sh gpu.Shader) {
	gl.DeleteShader(uint32(sh))
}

// CreateProgram makes a new program object.
func (dev *Device) CreateProgram() gpu.Program {
	return gpu.Program(gl.CreateProgram())
}

// AttachShader attaches the shader to the program.
func (dev *Device) AttachShader(pr gpu.Program, sh gpu.Shader) {
	gl.AttachShader(uint32(pr), uint32(sh))
}

// DetachShader detaches the shader from the program.
func (dev *Device) DetachShader(pr gpu.Program, sh gpu.Shader) {
	gl.DetachShader(uint32(pr), uint32(sh))
}

// LinkProgram links the program and returns its info log.
func (dev *Device) LinkProgram(pr gpu.Program) (bool, string) {
	gl.LinkProgram(uint32(pr))
	var status int32
	gl.GetProgramiv(uint32(pr), gl.LINK_STATUS, &status)
	var logLength int32
	gl.GetProgramiv(uint32(pr), gl.INFO_LOG_LENGTH, &logLength)
	log := ""
	if logLength > 0 {
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(uint32(pr), logLength, nil, gl.Str(msg))
		log = gl.GoStr(gl.Str(msg))
	}
	return status != gl.FALSE, log
}

// UseProgram makes the program current.
func (dev *Device) UseProgram(pr gpu.Program) {
	gl.UseProgram(uint32(pr))
}

// DeleteProgram deletes the program.
func (dev *Device) DeleteProgram(pr gpu.Program) {
	gl.DeleteProgram(uint32(pr))
}

// UniformBlockIndex returns the index of the named uniform block.
func (dev *Device) UniformBlockIndex(pr gpu.Program, name string) gpu.BlockIndex {
	idx := gl.GetUniformBlockIndex(uint32(pr), gl.Str(cString(name)))
	if idx == gl.INVALID_INDEX {
		return gpu.InvalidIndex
	}
	return gpu.BlockIndex(idx)
}

// UniformBlockBinding assigns the binding point of the uniform block.
func (dev *Device) UniformBlockBinding(pr gpu.Program, idx gpu.BlockIndex, pt gpu.BindingPoint) {
	gl.UniformBlockBinding(uint32(pr), uint32(idx), uint32(pt))
}

// ProgramUniformInt sets an int uniform of the program.
func (dev *Device) ProgramUniformInt(pr gpu.Program, loc int32, v int32) {
	gl.ProgramUniform1i(uint32(pr), loc, v)
}
