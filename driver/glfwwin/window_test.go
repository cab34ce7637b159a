// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwwin

import (
	"testing"

	"github.com/glskel/glskel/pipeline"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

var _ pipeline.Surface = (*Window)(nil)

func TestCloseRequested(t *testing.T) {
	assert.True(t, closeRequested(glfw.KeyEscape, glfw.Press))
	assert.False(t, closeRequested(glfw.KeyEscape, glfw.Release))
	assert.False(t, closeRequested(glfw.KeyEscape, glfw.Repeat))
	assert.False(t, closeRequested(glfw.KeyQ, glfw.Press))
}
