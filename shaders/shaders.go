// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders provides the fixed shader stage sources of the two
// rendering passes and the CPU side layout of the ViewportUniforms
// block that they share.
package shaders

import (
	_ "embed"

	"github.com/glskel/glskel/gpu"
)

//go:embed glsl/render.vert
var renderVert string

//go:embed glsl/render.frag
var renderFrag string

//go:embed glsl/postprocess.vert
var postProcessVert string

//go:embed glsl/postprocess.frag
var postProcessFrag string

// Source is the immutable source text of one shader stage.
type Source struct {
	// Name identifies the stage in diagnostics.
	Name  string
	Stage gpu.ShaderTypes
	Text  string
}

// Pair is the vertex and fragment stage of one program.
type Pair struct {
	Vertex   Source
	Fragment Source
}

var (
	// RenderVertex transforms the textured triangle of the offscreen pass.
	RenderVertex = Source{Name: "render.vert", Stage: gpu.VertexShader, Text: renderVert}

	// RenderFragment samples the diffuse texture on unit 0.
	RenderFragment = Source{Name: "render.frag", Stage: gpu.FragmentShader, Text: renderFrag}

	// PostProcessVertex generates a full-screen triangle from gl_VertexID.
	PostProcessVertex = Source{Name: "postprocess.vert", Stage: gpu.VertexShader, Text: postProcessVert}

	// PostProcessFragment applies the checker-phased wobble to the previous pass.
	PostProcessFragment = Source{Name: "postprocess.frag", Stage: gpu.FragmentShader, Text: postProcessFrag}
)

// Render returns the stages of the offscreen render program.
func Render() Pair {
	return Pair{Vertex: RenderVertex, Fragment: RenderFragment}
}

// PostProcess returns the stages of the composite program.
func PostProcess() Pair {
	return Pair{Vertex: PostProcessVertex, Fragment: PostProcessFragment}
}

// All returns every stage source.
func All() []Source {
	return []Source{RenderVertex, RenderFragment, PostProcessVertex, PostProcessFragment}
}
