// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"image"
	"log/slog"

	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/shaders"
)

// Resources is the set of device objects that live for the whole frame
// loop: the shared parameter buffer, the offscreen target and its
// framebuffer, the diffuse texture and the triangle geometry.
// Only the shared parameters are written after construction.
type Resources struct {
	Device gpu.Device

	// Size is the size of the offscreen target and the surface.
	Size image.Point

	params   shaders.ViewportUniforms
	uniforms gpu.Buffer
	target   gpu.Texture
	targetFB gpu.Framebuffer
	diffuse  gpu.Texture

	vao      gpu.VertexArray
	vertices []gpu.Buffer
	elements gpu.Buffer
	nindex   int
}

// NewResources creates the shared parameter buffer, the offscreen target
// of the given size and the diffuse texture. Geometry is added by
// [Resources.BuildGeometry]. On failure, everything created so far is
// released.
func NewResources(dev gpu.Device, size image.Point) (*Resources, error) {
	rs := &Resources{Device: dev, Size: size}
	if err := rs.create(); err != nil {
		rs.Release()
		return nil, err
	}
	return rs, nil
}

func (rs *Resources) create() error {
	dev := rs.Device
	rs.params.Viewport[2] = float32(rs.Size.X)
	rs.params.Viewport[3] = float32(rs.Size.Y)
	rs.uniforms = dev.CreateBuffer()
	if rs.uniforms.IsNull() {
		return &ResourceError{Kind: "uniform buffer"}
	}
	dev.BufferStorage(rs.uniforms, rs.params.Bytes(), gpu.DynamicStorage)

	rs.target = dev.CreateTexture()
	if rs.target.IsNull() {
		return &ResourceError{Kind: "texture"}
	}
	dev.TextureStorage(rs.target, 1, gpu.RGBA8, rs.Size)
	rs.targetFB = dev.CreateFramebuffer()
	if rs.targetFB.IsNull() {
		return &ResourceError{Kind: "framebuffer"}
	}
	dev.FramebufferTexture(rs.targetFB, 0, rs.target)
	if st := dev.CheckFramebufferStatus(rs.targetFB); st != gpu.FramebufferComplete {
		return &FramebufferError{Status: st}
	}

	rs.diffuse = dev.CreateTexture()
	if rs.diffuse.IsNull() {
		return &ResourceError{Kind: "texture"}
	}
	dev.TextureStorage(rs.diffuse, 1, gpu.RGBA8, CheckerboardSize)
	dev.TextureSubImage(rs.diffuse, image.Rectangle{Max: CheckerboardSize}, Checkerboard())
	slog.Debug("created frame resources", "size", rs.Size)
	return nil
}

// BuildGeometry uploads the mesh into vertex and element buffers and
// describes them with a vertex array: attribute 0 is the position and
// attribute 1 the texture coordinate. The attributes come from one
// interleaved buffer, or from one buffer each.
func (rs *Resources) BuildGeometry(ms *Mesh, interleaved bool) error {
	if err := ms.validate(); err != nil {
		return err
	}
	dev := rs.Device
	rs.vao = dev.CreateVertexArray()
	if rs.vao.IsNull() {
		return &ResourceError{Kind: "vertex array"}
	}
	newBuffer := func(data []byte) (gpu.Buffer, error) {
		b := dev.CreateBuffer()
		if b.IsNull() {
			return 0, &ResourceError{Kind: "vertex buffer"}
		}
		dev.BufferStorage(b, data, gpu.StaticStorage)
		return b, nil
	}
	if interleaved {
		slog.Info("using interleaved vertex attributes")
		vb, err := newBuffer(gpu.Float32Bytes(ms.Interleave()...))
		if err != nil {
			return err
		}
		rs.vertices = append(rs.vertices, vb)
		dev.VertexArrayAttrib(rs.vao, 0, vb, 2, 16, 0)
		dev.VertexArrayAttrib(rs.vao, 1, vb, 2, 16, 8)
	} else {
		slog.Info("using non-interleaved vertex attributes")
		for loc, vs := range [][]float32{flatten(ms.Positions), flatten(ms.UVs)} {
			vb, err := newBuffer(gpu.Float32Bytes(vs...))
			if err != nil {
				return err
			}
			rs.vertices = append(rs.vertices, vb)
			dev.VertexArrayAttrib(rs.vao, loc, vb, 2, 8, 0)
		}
	}
	eb := dev.CreateBuffer()
	if eb.IsNull() {
		return &ResourceError{Kind: "element buffer"}
	}
	rs.elements = eb
	dev.BufferStorage(eb, gpu.Uint32Bytes(ms.Indices...), gpu.StaticStorage)
	dev.VertexArrayElementBuffer(rs.vao, eb)
	rs.nindex = len(ms.Indices)
	return nil
}

// UpdateSharedParameters writes the whole parameter block with time t
// into the uniform buffer. The viewport keeps its construction size.
func (rs *Resources) UpdateSharedParameters(t float32) {
	rs.params.ViewMatrix[0] = 1
	rs.params.Time = t
	rs.Device.BufferSubData(rs.uniforms, 0, rs.params.Bytes())
}

// SharedParameters reads the parameter block back from the uniform buffer.
func (rs *Resources) SharedParameters() (shaders.ViewportUniforms, error) {
	var vu shaders.ViewportUniforms
	b := make([]byte, shaders.ViewportUniformsSize())
	rs.Device.GetBufferSubData(rs.uniforms, 0, b)
	err := vu.SetBytes(b)
	return vu, err
}

// UniformBuffer returns the shared parameter buffer.
func (rs *Resources) UniformBuffer() gpu.Buffer { return rs.uniforms }

// TargetTexture returns the color texture of the offscreen target.
func (rs *Resources) TargetTexture() gpu.Texture { return rs.target }

// TargetFramebuffer returns the framebuffer of the offscreen target.
func (rs *Resources) TargetFramebuffer() gpu.Framebuffer { return rs.targetFB }

// Diffuse returns the checkerboard texture.
func (rs *Resources) Diffuse() gpu.Texture { return rs.diffuse }

// VertexArray returns the vertex array of the triangle geometry.
func (rs *Resources) VertexArray() gpu.VertexArray { return rs.vao }

// IndexCount returns the number of indexes of the triangle geometry.
func (rs *Resources) IndexCount() int { return rs.nindex }

// Release deletes all objects, vertex array first and uniform buffer last.
// It is safe to call more than once.
func (rs *Resources) Release() {
	dev := rs.Device
	if !rs.vao.IsNull() {
		dev.DeleteVertexArray(rs.vao)
		rs.vao = 0
	}
	if !rs.elements.IsNull() {
		dev.DeleteBuffer(rs.elements)
		rs.elements = 0
	}
	for _, vb := range rs.vertices {
		dev.DeleteBuffer(vb)
	}
	rs.vertices = nil
	rs.nindex = 0
	if !rs.diffuse.IsNull() {
		dev.DeleteTexture(rs.diffuse)
		rs.diffuse = 0
	}
	if !rs.targetFB.IsNull() {
		dev.DeleteFramebuffer(rs.targetFB)
		rs.targetFB = 0
	}
	if !rs.target.IsNull() {
		dev.DeleteTexture(rs.target)
		rs.target = 0
	}
	if !rs.uniforms.IsNull() {
		dev.DeleteBuffer(rs.uniforms)
		rs.uniforms = 0
	}
}
