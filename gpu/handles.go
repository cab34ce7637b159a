// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Handles are opaque device object names. Each kind has its own type so
// that a texture can never be passed where a buffer is expected.
// The zero value of every handle type is the null handle, which
// Create* methods return when the device could not make the object.

// Shader is a handle to a single compiled (or compiling) shader stage.
type Shader uint32

// Program is a handle to a linked shader program.
type Program uint32

// Buffer is a handle to a device memory buffer.
type Buffer uint32

// Texture is a handle to a 2D texture.
type Texture uint32

// Framebuffer is a handle to a render target.
type Framebuffer uint32

// VertexArray is a handle to a vertex input descriptor
// (attribute formats, vertex buffers, element buffer).
type VertexArray uint32

// DefaultFramebuffer is the visible surface of the current context.
const DefaultFramebuffer Framebuffer = 0

// BindingPoint is the slot through which a buffer range is connected
// to a uniform block of a program.
type BindingPoint uint32

// BlockIndex is the index of a named uniform block within a linked program,
// as returned by reflection.
type BlockIndex uint32

// InvalidIndex is returned by UniformBlockIndex when the program
// has no active uniform block of the requested name.
const InvalidIndex BlockIndex = 0xFFFFFFFF

// IsNull reports whether the handle is the null handle.
func (h Shader) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
func (h Program) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
func (h Buffer) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
func (h Texture) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
func (h VertexArray) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
// For framebuffers this is the default framebuffer.
func (h Framebuffer) IsNull() bool { return h == 0 }
