// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"github.com/glskel/glskel/gpu"
)

type buffer struct {
	data    []byte
	flags   gpu.BufferFlags
	storage bool
}

// CreateBuffer makes a new buffer object without storage.
func (dev *Device) CreateBuffer() gpu.Buffer {
	b := gpu.Buffer(dev.newName())
	dev.buffers[b] = &buffer{}
	return b
}

// BufferStorage allocates the immutable storage of the buffer,
// initialized with a copy of data.
func (dev *Device) BufferStorage(b gpu.Buffer, data []byte, flags gpu.BufferFlags) {
	bf := dev.buffers[b]
	switch {
	case bf == nil:
		dev.fail("BufferStorage: no buffer %d", b)
		return
	case bf.storage:
		dev.fail("BufferStorage: buffer %d storage is immutable", b)
		return
	}
	bf.data = append([]byte(nil), data...)
	bf.flags = flags
	bf.storage = true
}

// BufferSubData updates part of a buffer created with gpu.DynamicStorage.
func (dev *Device) BufferSubData(b gpu.Buffer, offset int, data []byte) {
	bf := dev.buffers[b]
	switch {
	case bf == nil:
		dev.fail("BufferSubData: no buffer %d", b)
		return
	case bf.flags&gpu.DynamicStorage == 0:
		dev.fail("BufferSubData: buffer %d was not created with dynamic storage", b)
		return
	case offset < 0 || offset+len(data) > len(bf.data):
		dev.fail("BufferSubData: range [%d, %d) outside buffer %d of %d bytes", offset, offset+len(data), b, len(bf.data))
		return
	}
	copy(bf.data[offset:], data)
}

// GetBufferSubData copies len(dst) bytes of the buffer starting at offset.
func (dev *Device) GetBufferSubData(b gpu.Buffer, offset int, dst []byte) {
	bf := dev.buffers[b]
	switch {
	case bf == nil:
		dev.fail("GetBufferSubData: no buffer %d", b)
		return
	case offset < 0 || offset+len(dst) > len(bf.data):
		dev.fail("GetBufferSubData: range [%d, %d) outside buffer %d of %d bytes", offset, offset+len(dst), b, len(bf.data))
		return
	}
	copy(dst, bf.data[offset:])
}

// DeleteBuffer deletes the buffer, unbinding it everywhere.
func (dev *Device) DeleteBuffer(b gpu.Buffer) {
	if dev.buffers[b] == nil {
		return
	}
	delete(dev.buffers, b)
	for pt, ub := range dev.uniformBindings {
		if ub == b {
			delete(dev.uniformBindings, pt)
		}
	}
	for _, va := range dev.vertexArrays {
		va.unbind(b)
	}
}
