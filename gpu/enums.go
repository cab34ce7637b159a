// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// ShaderTypes is a list of GPU shader stage types
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	ShaderTypesN
)

var shaderTypeNames = [...]string{"vertex", "fragment"}

func (st ShaderTypes) String() string {
	if st >= 0 && st < ShaderTypesN {
		return shaderTypeNames[st]
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

// DrawModes are the primitive topologies that can be drawn
type DrawModes int32

const (
	Triangles DrawModes = iota
	TriangleStrip
)

// IndexTypes are the element types of an element (index) buffer
type IndexTypes int32

const (
	UnsignedInt IndexTypes = iota
	UnsignedShort
)

// Bytes returns the size of one index of this type
func (it IndexTypes) Bytes() int {
	if it == UnsignedShort {
		return 2
	}
	return 4
}

// BufferTargets are the indexed binding targets for BindBufferBase
type BufferTargets int32

const (
	UniformBuffer BufferTargets = iota
)

// BufferFlags are storage flags for immutable buffer storage
type BufferFlags uint32

const (
	// StaticStorage is for data written once at creation time.
	StaticStorage BufferFlags = 0

	// DynamicStorage allows BufferSubData updates after creation.
	DynamicStorage BufferFlags = 1
)

// TextureFormats are the supported internal texture formats
type TextureFormats int32

const (
	RGBA8 TextureFormats = iota
)

// BytesPerPixel returns the size of one texel of this format
func (tf TextureFormats) BytesPerPixel() int {
	return 4
}

// FramebufferStatus is the completeness status of a framebuffer
type FramebufferStatus int32

const (
	FramebufferComplete FramebufferStatus = iota
	FramebufferUndefined
	FramebufferIncompleteAttachment
	FramebufferIncompleteMissingAttachment
	FramebufferUnsupported
	FramebufferStatusUnknown
)

var framebufferStatusNames = [...]string{
	"complete",
	"undefined",
	"incomplete attachment",
	"incomplete missing attachment",
	"unsupported",
	"unknown",
}

func (fs FramebufferStatus) String() string {
	if fs >= 0 && int(fs) < len(framebufferStatusNames) {
		return framebufferStatusNames[fs]
	}
	return fmt.Sprintf("FramebufferStatus(%d)", int32(fs))
}
