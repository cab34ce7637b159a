// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniTypeNames(t *testing.T) {
	assert.Equal(t, "float", FUniType.Name())
	assert.Equal(t, "vec4", Vec4fUniType.Name())
	assert.Equal(t, "mat4", Mat4fUniType.Name())
	assert.Equal(t, "ivec2", UniType{Type: Int, Vec: 2}.Name())
}

func TestStd140Layout(t *testing.T) {
	offs, size := Std140Layout(Mat4fUniType, Vec4fUniType, FUniType)
	assert.Equal(t, []int{0, 64, 80}, offs)
	assert.Equal(t, 84, size)

	// a scalar before a vec4 is padded up to the vec4 alignment
	offs, size = Std140Layout(FUniType, Vec4fUniType)
	assert.Equal(t, []int{0, 16}, offs)
	assert.Equal(t, 32, size)

	// vec2 aligns on 8 bytes
	offs, size = Std140Layout(FUniType, Vec2fUniType, FUniType)
	assert.Equal(t, []int{0, 8, 16}, offs)
	assert.Equal(t, 20, size)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "vertex", VertexShader.String())
	assert.Equal(t, "fragment", FragmentShader.String())
	assert.Equal(t, "complete", FramebufferComplete.String())
	assert.Equal(t, "incomplete missing attachment", FramebufferIncompleteMissingAttachment.String())
	assert.True(t, Texture(0).IsNull())
	assert.False(t, Buffer(3).IsNull())
}

func TestFloat32Bytes(t *testing.T) {
	b := Float32Bytes(1, -2.5, 0)
	assert.Len(t, b, 12)
	fs := make([]float32, 3)
	BytesToFloat32s(b, fs)
	assert.Equal(t, []float32{1, -2.5, 0}, fs)
	assert.Len(t, Uint32Bytes(0, 1, 2), 12)
}
