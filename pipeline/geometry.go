// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is indexed triangle geometry with a texture coordinate per vertex.
type Mesh struct {
	Positions []mgl32.Vec2
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// TriangleMesh returns the textured triangle drawn by the render pass,
// with separate position and texture coordinate streams.
func TriangleMesh() *Mesh {
	return &Mesh{
		Positions: []mgl32.Vec2{{-0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}},
		UVs:       []mgl32.Vec2{{0, 0}, {1, 1}, {0.1, 1}},
		Indices:   []uint32{0, 1, 2},
	}
}

// InterleavedTriangleMesh returns the triangle as drawn with interleaved
// vertex attributes. Its last texture coordinate differs from [TriangleMesh].
func InterleavedTriangleMesh() *Mesh {
	ms := TriangleMesh()
	ms.UVs[2] = mgl32.Vec2{0, 1}
	return ms
}

// validate checks that the mesh is drawable.
func (ms *Mesh) validate() error {
	if len(ms.Positions) == 0 || len(ms.Indices) == 0 {
		return fmt.Errorf("pipeline.Mesh: empty mesh")
	}
	if len(ms.UVs) != len(ms.Positions) {
		return fmt.Errorf("pipeline.Mesh: %d positions but %d texture coordinates", len(ms.Positions), len(ms.UVs))
	}
	for _, ix := range ms.Indices {
		if int(ix) >= len(ms.Positions) {
			return fmt.Errorf("pipeline.Mesh: index %d out of range of %d vertices", ix, len(ms.Positions))
		}
	}
	return nil
}

// Interleave returns the vertices as x, y, u, v per vertex.
func (ms *Mesh) Interleave() []float32 {
	fs := make([]float32, 0, 4*len(ms.Positions))
	for i, p := range ms.Positions {
		uv := ms.UVs[i]
		fs = append(fs, p[0], p[1], uv[0], uv[1])
	}
	return fs
}

func flatten(vs []mgl32.Vec2) []float32 {
	fs := make([]float32, 0, 2*len(vs))
	for _, v := range vs {
		fs = append(fs, v[0], v[1])
	}
	return fs
}

// CheckerboardSize is the size of the diffuse texture.
var CheckerboardSize = image.Point{2, 2}

// Checkerboard returns the RGBA8 pixels of the diffuse texture,
// bottom row first.
func Checkerboard() []byte {
	return []byte{
		0x00, 0x00, 0x00, 0xff, 0xa0, 0xa0, 0x00, 0xff,
		0x00, 0xa0, 0xa0, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
}
