// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"unsafe"

	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/gl/v4.5-core/gl"
)

var glBufferTargets = map[gpu.BufferTargets]uint32{
	gpu.UniformBuffer: gl.UNIFORM_BUFFER,
}

// bytesPtr returns a pointer to the first byte, or nil for no bytes.
func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(&b[0])
}

// CreateBuffer makes a new buffer object.
func (dev *Device) CreateBuffer() gpu.Buffer {
	var b uint32
	gl.CreateBuffers(1, &b)
	return gpu.Buffer(b)
}

// BufferStorage allocates immutable storage initialized with data.
func (dev *Device) BufferStorage(b gpu.Buffer, data []byte, flags gpu.BufferFlags) {
	var fl uint32
	if flags&gpu.DynamicStorage != 0 {
		fl |= gl.DYNAMIC_STORAGE_BIT
	}
	gl.NamedBufferStorage(uint32(b), len(data), bytesPtr(data), fl)
}

// BufferSubData writes data at offset.
func (dev *Device) BufferSubData(b gpu.Buffer, offset int, data []byte) {
	gl.NamedBufferSubData(uint32(b), offset, len(data), bytesPtr(data))
}

// GetBufferSubData reads len(dst) bytes at offset.
func (dev *Device) GetBufferSubData(b gpu.Buffer, offset int, dst []byte) {
	gl.GetNamedBufferSubData(uint32(b), offset, len(dst), bytesPtr(dst))
}

// BindBufferBase binds the buffer to the indexed binding point.
func (dev *Device) BindBufferBase(target gpu.BufferTargets, pt gpu.BindingPoint, b gpu.Buffer) {
	gl.BindBufferBase(glBufferTargets[target], uint32(pt), uint32(b))
}

// DeleteBuffer deletes the buffer.
func (dev *Device) DeleteBuffer(b gpu.Buffer) {
	h := uint32(b)
	gl.DeleteBuffers(1, &h)
}
