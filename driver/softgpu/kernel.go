// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxAttribs is the number of vertex attribute locations.
const MaxAttribs = 8

// MaxVaryings is the number of locations passed from the vertex to the
// fragment stage.
const MaxVaryings = 8

// VertexIn is the input of one vertex shader invocation.
type VertexIn struct {
	// VertexID is gl_VertexID: the index of the vertex being processed.
	VertexID int

	// Attribs are the vertex attributes by location. Components that the
	// vertex array does not source default to (0, 0, 0, 1).
	Attribs [MaxAttribs]mgl32.Vec4
}

// VertexOut is the result of one vertex shader invocation.
type VertexOut struct {
	// Position is gl_Position, in clip coordinates.
	Position mgl32.Vec4

	// Varyings are the outputs by location.
	Varyings [MaxVaryings]mgl32.Vec4
}

// FragmentIn is the input of one fragment shader invocation.
type FragmentIn struct {
	// FragCoord is gl_FragCoord: window x, y of the pixel centre,
	// window z and 1/w.
	FragCoord mgl32.Vec4

	// Varyings are the interpolated vertex outputs by location.
	Varyings [MaxVaryings]mgl32.Vec4
}

// VertexKernel executes a vertex stage for one vertex.
type VertexKernel func(env *Env, in *VertexIn, out *VertexOut)

// FragmentKernel executes a fragment stage for one fragment and returns
// the color written to output location 0.
type FragmentKernel func(env *Env, in *FragmentIn) mgl32.Vec4

// Env gives kernels access to the uniform state of the program
// being drawn with.
type Env struct {
	dev  *Device
	prog *program
}

// UniformBlock returns the contents of the buffer bound to the binding
// point of the named uniform block, or nil when the program has no
// such block or nothing is bound there.
func (env *Env) UniformBlock(name string) []byte {
	for _, bl := range env.prog.blocks {
		if bl.name != name {
			continue
		}
		b := env.dev.buffers[env.dev.uniformBindings[bl.binding]]
		if b == nil {
			return nil
		}
		return b.data
	}
	return nil
}

// Texture samples the texture bound to the unit of the named sampler
// uniform at uv. A sampler with no complete texture returns (0, 0, 0, 1).
func (env *Env) Texture(sampler string, uv mgl32.Vec2) mgl32.Vec4 {
	for _, u := range env.prog.uniforms {
		if u.name != sampler {
			continue
		}
		tx := env.dev.textures[env.dev.units[u.value]]
		if tx == nil || tx.pix == nil {
			break
		}
		return tx.sample(uv)
	}
	return mgl32.Vec4{0, 0, 0, 1}
}

// RegisterVertex makes k the executable form of vertex shaders whose
// source is exactly src. Programs link only when every attached stage
// has a registered kernel.
func (dev *Device) RegisterVertex(src string, k VertexKernel) {
	dev.vertexKernels[src] = k
}

// RegisterFragment makes k the executable form of fragment shaders whose
// source is exactly src.
func (dev *Device) RegisterFragment(src string, k FragmentKernel) {
	dev.fragmentKernels[src] = k
}
