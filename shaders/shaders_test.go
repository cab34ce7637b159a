// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"strings"
	"testing"

	"github.com/glskel/glskel/glsl"
	"github.com/glskel/glskel/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesDeclareBlock(t *testing.T) {
	bindings := map[string]int{
		"render.vert":      1,
		"render.frag":      1,
		"postprocess.vert": 2,
		"postprocess.frag": 2,
	}
	for _, src := range All() {
		assert.True(t, strings.HasPrefix(src.Text, "#version 450 core\n"), src.Name)
		si, err := glsl.Reflect(src.Text)
		require.NoError(t, err, src.Name)
		bl := si.BlockByName(BlockName)
		require.NotNil(t, bl, src.Name)
		bind, ok := bl.Binding()
		assert.True(t, ok, src.Name)
		assert.Equal(t, bindings[src.Name], bind, src.Name)
		require.Len(t, bl.Members, 3)
		assert.Equal(t, []string{"mat4", "vec4", "float"}, []string{bl.Members[0].Type, bl.Members[1].Type, bl.Members[2].Type})
	}
}

func TestStageInterfaces(t *testing.T) {
	assert.Equal(t, gpu.VertexShader, Render().Vertex.Stage)
	assert.Equal(t, gpu.FragmentShader, PostProcess().Fragment.Stage)

	vs, err := glsl.Reflect(RenderVertex.Text)
	require.NoError(t, err)
	require.Len(t, vs.Inputs, 2)
	assert.Equal(t, "pos", vs.Inputs[0].Name)
	assert.Equal(t, 1, vs.Inputs[1].Location())

	fs, err := glsl.Reflect(PostProcessFragment.Text)
	require.NoError(t, err)
	assert.Empty(t, fs.Inputs)
	require.Len(t, fs.Samplers(), 1)
	assert.Equal(t, "previouspass", fs.Samplers()[0].Name)
}

func TestViewportUniforms(t *testing.T) {
	assert.Equal(t, 84, ViewportUniformsSize())

	vu := ViewportUniforms{}
	vu.ViewMatrix[0] = 1
	vu.Viewport[2] = 1024
	vu.Viewport[3] = 768
	vu.Time = 2.5
	b := vu.Bytes()
	require.Len(t, b, 84)

	var rt ViewportUniforms
	require.NoError(t, rt.SetBytes(b))
	assert.Equal(t, vu, rt)

	assert.Error(t, rt.SetBytes(b[:80]))
}
