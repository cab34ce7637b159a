// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reference provides Go kernels that compute what the shader
// stages of package shaders compute, so that the software device can
// execute them.
package reference

import (
	"github.com/chewxy/math32"
	"github.com/glskel/glskel/driver/softgpu"
	"github.com/glskel/glskel/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// Install registers the kernels of all the stages of package shaders
// with the device.
func Install(dev *softgpu.Device) {
	dev.RegisterVertex(shaders.RenderVertex.Text, RenderVertex)
	dev.RegisterFragment(shaders.RenderFragment.Text, RenderFragment)
	dev.RegisterVertex(shaders.PostProcessVertex.Text, PostProcessVertex)
	dev.RegisterFragment(shaders.PostProcessFragment.Text, PostProcessFragment)
}

// RenderVertex passes the 2D position at location 0 through as clip
// coordinates and the uv at location 1 to varying 0.
func RenderVertex(env *softgpu.Env, in *softgpu.VertexIn, out *softgpu.VertexOut) {
	pos, uv := in.Attribs[0], in.Attribs[1]
	out.Position = mgl32.Vec4{pos[0], pos[1], 0, 1}
	out.Varyings[0] = mgl32.Vec4{uv[0], uv[1], 0, 0}
}

// RenderFragment samples the diffuse texture at the interpolated uv.
func RenderFragment(env *softgpu.Env, in *softgpu.FragmentIn) mgl32.Vec4 {
	return env.Texture("diffuse", in.Varyings[0].Vec2())
}

// fullScreen is a triangle covering all of clip space.
var fullScreen = [3]mgl32.Vec2{{-1, -3}, {3, 1}, {-1, 1}}

// PostProcessVertex emits the full screen triangle vertex of the
// vertex index. Indexes past 2 repeat the last vertex.
func PostProcessVertex(env *softgpu.Env, in *softgpu.VertexIn, out *softgpu.VertexOut) {
	v := fullScreen[min(max(in.VertexID, 0), 2)]
	out.Position = mgl32.Vec4{v[0], v[1], 0, 1}
}

// PostProcessFragment samples the previous pass with the displacement of
// Wobble and forces alpha to 1.
func PostProcessFragment(env *softgpu.Env, in *softgpu.FragmentIn) mgl32.Vec4 {
	var vu shaders.ViewportUniforms
	if err := vu.SetBytes(env.UniformBlock(shaders.BlockName)); err != nil {
		vu = shaders.ViewportUniforms{}
	}
	uv := Wobble(in.FragCoord.Vec2(), vu.Viewport, vu.Time)
	c := env.Texture("previouspass", uv)
	return mgl32.Vec4{c[0], c[1], c[2], 1}
}

// Wobble returns the texture coordinate sampled for the fragment at
// window position fc: pixels in odd rows shift horizontally by
// sin(2t)*50 and pixels in odd columns shift vertically by cos(1.5t)*50,
// and the result is normalized by the viewport width and height.
func Wobble(fc mgl32.Vec2, viewport mgl32.Vec4, t float32) mgl32.Vec2 {
	oddx := float32(int(fc[0]) % 2)
	oddy := float32(int(fc[1]) % 2)
	fc[0] += oddy * math32.Sin(t*2) * 50
	fc[1] += oddx * math32.Cos(t*1.5) * 50
	return mgl32.Vec2{fc[0] / viewport[2], fc[1] / viewport[3]}
}
