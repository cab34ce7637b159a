// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the capability interface through which the
// rendering pipeline talks to a graphics device, together with the
// typed object handles and enums it uses.
//
// Implementations live under driver/: glgpu drives an OpenGL 4.5 core
// context and softgpu is a software reference device.
package gpu

import "image"

// Info describes the device and the shading language it accepts.
type Info struct {
	Version         string
	ShadingLanguage string
	Renderer        string
}

// Device provides the operations of a graphics device needed for
// multi-pass rendering. All methods operate on the calling thread's
// current context. Create* methods return the null handle on failure.
type Device interface {
	// Info returns the version strings of the device.
	Info() Info

	// CreateShader makes a new shader stage object of the given type.
	CreateShader(typ ShaderTypes) Shader

	// ShaderSource sets the source text of the shader.
	ShaderSource(sh Shader, src string)

	// CompileShader compiles the shader, returning whether it succeeded
	// and the info log reported by the compiler.
	CompileShader(sh Shader) (ok bool, log string)

	// DeleteShader deletes the shader stage object.
	DeleteShader(sh Shader)

	// CreateProgram makes a new empty program object.
	CreateProgram() Program

	// AttachShader attaches a compiled stage to the program.
	AttachShader(pr Program, sh Shader)

	// DetachShader detaches a stage from the program.
	DetachShader(pr Program, sh Shader)

	// LinkProgram links the attached stages, returning whether it
	// succeeded and the info log reported by the linker.
	LinkProgram(pr Program) (ok bool, log string)

	// UseProgram makes the program current for subsequent draws.
	UseProgram(pr Program)

	// DeleteProgram deletes the program object.
	DeleteProgram(pr Program)

	// UniformBlockIndex returns the index of the named uniform block in
	// the linked program, or InvalidIndex.
	UniformBlockIndex(pr Program, name string) BlockIndex

	// UniformBlockBinding assigns the binding point of a uniform block.
	UniformBlockBinding(pr Program, idx BlockIndex, pt BindingPoint)

	// ProgramUniformInt sets an int (or sampler) uniform at the given location.
	ProgramUniformInt(pr Program, loc int32, v int32)

	// CreateBuffer makes a new buffer object.
	CreateBuffer() Buffer

	// BufferStorage allocates immutable storage of len(data) bytes
	// initialized with data.
	BufferStorage(b Buffer, data []byte, flags BufferFlags)

	// BufferSubData writes data into the buffer at the given byte offset.
	BufferSubData(b Buffer, offset int, data []byte)

	// GetBufferSubData reads len(dst) bytes from the buffer at the given offset.
	GetBufferSubData(b Buffer, offset int, dst []byte)

	// BindBufferBase binds the whole buffer to an indexed binding point.
	BindBufferBase(target BufferTargets, pt BindingPoint, b Buffer)

	// DeleteBuffer deletes the buffer object.
	DeleteBuffer(b Buffer)

	// CreateTexture makes a new 2D texture object.
	CreateTexture() Texture

	// TextureStorage allocates immutable storage for the texture.
	TextureStorage(t Texture, levels int, format TextureFormats, size image.Point)

	// TextureSubImage uploads tightly packed RGBA8 pixels into the given
	// rectangle of level 0. Row 0 of pix is the bottom row of the rectangle.
	TextureSubImage(t Texture, rect image.Rectangle, pix []byte)

	// BindTextureUnit binds the texture to the given sampling unit.
	BindTextureUnit(unit int, t Texture)

	// DeleteTexture deletes the texture object.
	DeleteTexture(t Texture)

	// CreateFramebuffer makes a new framebuffer object with no attachments.
	CreateFramebuffer() Framebuffer

	// FramebufferTexture attaches level 0 of the texture as the given
	// color attachment of the framebuffer.
	FramebufferTexture(fb Framebuffer, attachment int, t Texture)

	// CheckFramebufferStatus reports the completeness of the framebuffer.
	CheckFramebufferStatus(fb Framebuffer) FramebufferStatus

	// BindFramebuffer makes fb the draw target (DefaultFramebuffer for the surface).
	BindFramebuffer(fb Framebuffer)

	// DeleteFramebuffer deletes the framebuffer object.
	DeleteFramebuffer(fb Framebuffer)

	// CreateVertexArray makes a new vertex input descriptor.
	CreateVertexArray() VertexArray

	// VertexArrayAttrib enables attribute loc of the vertex array, sourcing
	// comps float32 components per vertex from buffer b with the given byte
	// stride and offset.
	VertexArrayAttrib(va VertexArray, loc int, b Buffer, comps, stride, offset int)

	// VertexArrayElementBuffer sets the element (index) buffer of the vertex array.
	VertexArrayElementBuffer(va VertexArray, b Buffer)

	// BindVertexArray makes the vertex array current.
	BindVertexArray(va VertexArray)

	// DeleteVertexArray deletes the vertex array object.
	DeleteVertexArray(va VertexArray)

	// Viewport sets the window transform for subsequent draws.
	Viewport(rect image.Rectangle)

	// Clear clears the color and/or depth buffers of the current draw target.
	Clear(color, depth bool)

	// DrawArrays draws count vertices starting at first, without indexes.
	DrawArrays(mode DrawModes, first, count int)

	// DrawElements draws count indexes read from the current element buffer
	// starting at the given byte offset.
	DrawElements(mode DrawModes, count int, typ IndexTypes, offset int)
}
