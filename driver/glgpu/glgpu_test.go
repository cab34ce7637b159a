// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"testing"

	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/stretchr/testify/assert"
)

// These tests only cover the enum tables: drawing needs a context,
// which CI machines do not have.

func TestTables(t *testing.T) {
	for st := gpu.VertexShader; st < gpu.ShaderTypesN; st++ {
		assert.Contains(t, glShaders, st)
	}
	assert.Equal(t, uint32(gl.TRIANGLES), glDrawModes[gpu.Triangles])
	assert.Equal(t, uint32(gl.UNSIGNED_INT), glIndexTypes[gpu.UnsignedInt])
	assert.Equal(t, uint32(gl.RGBA8), glTextureFormats[gpu.RGBA8])
	assert.Equal(t, uint32(gl.UNIFORM_BUFFER), glBufferTargets[gpu.UniformBuffer])
}

func TestFramebufferStatus(t *testing.T) {
	assert.Equal(t, gpu.FramebufferComplete, framebufferStatus(gl.FRAMEBUFFER_COMPLETE))
	assert.Equal(t, gpu.FramebufferIncompleteMissingAttachment, framebufferStatus(gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT))
	assert.Equal(t, gpu.FramebufferStatusUnknown, framebufferStatus(0))
}

func TestCString(t *testing.T) {
	assert.Equal(t, "a\x00", cString("a"))
	assert.Equal(t, "a\x00", cString("a\x00"))
	assert.Equal(t, "invalid operation", errorName(gl.INVALID_OPERATION))
}
