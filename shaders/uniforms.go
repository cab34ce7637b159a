// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/glskel/glskel/gpu"
)

// BlockName is the name of the uniform block declared by every stage.
const BlockName = "ViewportUniforms"

// ViewportUniforms is the CPU copy of the shared parameter block:
//
//	layout(std140) uniform ViewportUniforms {
//		mat4 u_viewMatrix;
//		vec4 u_viewport;
//		float u_time;
//	};
type ViewportUniforms struct {
	// ViewMatrix is column major, as mat4 is.
	ViewMatrix mgl32.Mat4

	// Viewport is x, y, width, height in pixels.
	Viewport mgl32.Vec4

	// Time is seconds since the frame loop started.
	Time float32
}

var (
	viewportOffsets, viewportSize = gpu.Std140Layout(gpu.Mat4fUniType, gpu.Vec4fUniType, gpu.FUniType)
)

// ViewportUniformsSize is the std140 size of the block in bytes.
func ViewportUniformsSize() int {
	return viewportSize
}

// Bytes returns the std140 encoding of the block in device byte order.
func (vu *ViewportUniforms) Bytes() []byte {
	b := make([]byte, viewportSize)
	copy(b[viewportOffsets[0]:], gpu.Float32Bytes(vu.ViewMatrix[:]...))
	copy(b[viewportOffsets[1]:], gpu.Float32Bytes(vu.Viewport[:]...))
	copy(b[viewportOffsets[2]:], gpu.Float32Bytes(vu.Time))
	return b
}

// SetBytes decodes the std140 encoding b into the block.
func (vu *ViewportUniforms) SetBytes(b []byte) error {
	if len(b) < viewportSize {
		return fmt.Errorf("shaders.ViewportUniforms: need %d bytes, have %d", viewportSize, len(b))
	}
	gpu.BytesToFloat32s(b[viewportOffsets[0]:], vu.ViewMatrix[:])
	gpu.BytesToFloat32s(b[viewportOffsets[1]:], vu.Viewport[:])
	tm := []float32{0}
	gpu.BytesToFloat32s(b[viewportOffsets[2]:], tm)
	vu.Time = tm[0]
	return nil
}
