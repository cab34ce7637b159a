// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/gl/v4.5-core/gl"
)

var glDrawModes = map[gpu.DrawModes]uint32{
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
}

var glIndexTypes = map[gpu.IndexTypes]uint32{
	gpu.UnsignedInt:   gl.UNSIGNED_INT,
	gpu.UnsignedShort: gl.UNSIGNED_SHORT,
}

// CreateVertexArray makes a new vertex array object.
func (dev *Device) CreateVertexArray() gpu.VertexArray {
	var va uint32
	gl.CreateVertexArrays(1, &va)
	return gpu.VertexArray(va)
}

// VertexArrayAttrib enables the attribute and sources it from the buffer,
// using the attribute location as its buffer binding index.
func (dev *Device) VertexArrayAttrib(va gpu.VertexArray, loc int, b gpu.Buffer, comps, stride, offset int) {
	v, l := uint32(va), uint32(loc)
	gl.EnableVertexArrayAttrib(v, l)
	gl.VertexArrayVertexBuffer(v, l, uint32(b), offset, int32(stride))
	gl.VertexArrayAttribFormat(v, l, int32(comps), gl.FLOAT, false, 0)
	gl.VertexArrayAttribBinding(v, l, l)
}

// VertexArrayElementBuffer sets the element buffer of the vertex array.
func (dev *Device) VertexArrayElementBuffer(va gpu.VertexArray, b gpu.Buffer) {
	gl.VertexArrayElementBuffer(uint32(va), uint32(b))
}

// BindVertexArray makes the vertex array current.
func (dev *Device) BindVertexArray(va gpu.VertexArray) {
	gl.BindVertexArray(uint32(va))
}

// DeleteVertexArray deletes the vertex array.
func (dev *Device) DeleteVertexArray(va gpu.VertexArray) {
	h := uint32(va)
	gl.DeleteVertexArrays(1, &h)
}

// DrawArrays draws count vertices starting at first.
func (dev *Device) DrawArrays(mode gpu.DrawModes, first, count int) {
	gl.DrawArrays(glDrawModes[mode], int32(first), int32(count))
}

// DrawElements draws count indexes of the element buffer from the byte offset.
func (dev *Device) DrawElements(mode gpu.DrawModes, count int, typ gpu.IndexTypes, offset int) {
	gl.DrawElements(glDrawModes[mode], int32(count), glIndexTypes[typ], gl.PtrOffset(offset))
}
