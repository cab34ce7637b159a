// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"encoding/binary"
	"math"

	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// attrib sources one float vertex attribute from a buffer.
type attrib struct {
	buf    gpu.Buffer
	comps  int
	stride int
	offset int
}

type vertexArray struct {
	attribs  [MaxAttribs]*attrib
	elements gpu.Buffer
}

func (va *vertexArray) unbind(b gpu.Buffer) {
	for i, at := range va.attribs {
		if at != nil && at.buf == b {
			va.attribs[i] = nil
		}
	}
	if va.elements == b {
		va.elements = 0
	}
}

// CreateVertexArray makes a new vertex array with no enabled attributes.
func (dev *Device) CreateVertexArray() gpu.VertexArray {
	va := gpu.VertexArray(dev.newName())
	dev.vertexArrays[va] = &vertexArray{}
	return va
}

// VertexArrayAttrib enables attribute loc, sourcing comps float32 values
// per vertex from b. A zero stride means tightly packed.
func (dev *Device) VertexArrayAttrib(va gpu.VertexArray, loc int, b gpu.Buffer, comps, stride, offset int) {
	v := dev.vertexArrays[va]
	switch {
	case v == nil:
		dev.fail("VertexArrayAttrib: no vertex array %d", va)
		return
	case loc < 0 || loc >= MaxAttribs || comps < 1 || comps > 4 || stride < 0 || offset < 0:
		dev.fail("VertexArrayAttrib: invalid location %d, %d components, stride %d or offset %d", loc, comps, stride, offset)
		return
	case dev.buffers[b] == nil:
		dev.fail("VertexArrayAttrib: no buffer %d", b)
		return
	}
	if stride == 0 {
		stride = 4 * comps
	}
	v.attribs[loc] = &attrib{buf: b, comps: comps, stride: stride, offset: offset}
}

// VertexArrayElementBuffer sets the index buffer of the vertex array.
func (dev *Device) VertexArrayElementBuffer(va gpu.VertexArray, b gpu.Buffer) {
	v := dev.vertexArrays[va]
	if v == nil || (b != 0 && dev.buffers[b] == nil) {
		dev.fail("VertexArrayElementBuffer: invalid vertex array %d or buffer %d", va, b)
		return
	}
	v.elements = b
}

// DeleteVertexArray deletes the vertex array, unbinding it if current.
func (dev *Device) DeleteVertexArray(va gpu.VertexArray) {
	if dev.vertexArrays[va] == nil {
		return
	}
	delete(dev.vertexArrays, va)
	if dev.vao == va {
		dev.vao = 0
	}
}

// fetch fills the attributes of vertex index from the current vertex array.
// Attributes that are not enabled, or lie outside their buffer, read as
// (0, 0, 0, 1).
func (dev *Device) fetch(index int, in *VertexIn) {
	in.VertexID = index
	for i := range in.Attribs {
		in.Attribs[i] = mgl32.Vec4{0, 0, 0, 1}
	}
	v := dev.vertexArrays[dev.vao]
	if v == nil {
		return
	}
	for loc, at := range v.attribs {
		if at == nil {
			continue
		}
		data := dev.buffers[at.buf].data
		start := at.offset + index*at.stride
		if start < 0 || start+4*at.comps > len(data) {
			continue
		}
		for c := 0; c < at.comps; c++ {
			in.Attribs[loc][c] = math.Float32frombits(binary.NativeEndian.Uint32(data[start+4*c:]))
		}
	}
}

// indices returns the vertex indices of count elements read from the
// element buffer of the current vertex array at the byte offset.
func (dev *Device) indices(count int, typ gpu.IndexTypes, offset int) ([]int, bool) {
	v := dev.vertexArrays[dev.vao]
	if v == nil || v.elements == 0 {
		dev.fail("DrawElements: no element buffer bound")
		return nil, false
	}
	data := dev.buffers[v.elements].data
	sz := typ.Bytes()
	if offset < 0 || offset+count*sz > len(data) {
		dev.fail("DrawElements: %d indexes at offset %d exceed element buffer of %d bytes", count, offset, len(data))
		return nil, false
	}
	idx := make([]int, count)
	for i := range idx {
		p := data[offset+i*sz:]
		if typ == gpu.UnsignedShort {
			idx[i] = int(binary.NativeEndian.Uint16(p))
		} else {
			idx[i] = int(binary.NativeEndian.Uint32(p))
		}
	}
	return idx, true
}
