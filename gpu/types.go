// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Types is a list of GPU scalar data types
type Types int32

const (
	UndefType Types = iota
	Bool
	Int
	UInt
	Float32
	Float64
	TypesN
)

// TypeNames are the GLSL type names
var TypeNames = map[Types]string{
	UndefType: "none",
	Bool:      "bool",
	Int:       "int",
	UInt:      "uint",
	Float32:   "float",
	Float64:   "double",
}

func (tp Types) String() string {
	if nm, ok := TypeNames[tp]; ok {
		return nm
	}
	return fmt.Sprintf("Types(%d)", int32(tp))
}

// TypeBytes returns number of bytes for given type -- 4 except Float64 = 8
func TypeBytes(tp Types) int {
	if tp == Float64 {
		return 8
	}
	return 4
}

// UniType represents a fully-specified GPU uniform type, including vectors and matricies
type UniType struct {
	// data type
	Type Types

	// if a vector, this is the length of the vector, 0 for scalar (valid values are 2,3,4)
	Vec int

	// square matrix dimensions, if a matrix (valid values are 3,4)
	Mat int
}

// Commonly-used types:

// FUniType is a single float32
var FUniType = UniType{Type: Float32}

// IUniType is a single int32
var IUniType = UniType{Type: Int}

// Vec2fUniType is a 2-vector of float32
var Vec2fUniType = UniType{Type: Float32, Vec: 2}

// Vec4fUniType is a 4-vector of float32
var Vec4fUniType = UniType{Type: Float32, Vec: 4}

// Mat4fUniType is a 4x4 matrix of float32
var Mat4fUniType = UniType{Type: Float32, Mat: 4}

// Name returns the full GLSL type name for the type
func (ty UniType) Name() string {
	if ty.Vec == 0 && ty.Mat == 0 {
		return TypeNames[ty.Type]
	}
	pfx := TypeNames[ty.Type][0:1]
	if ty.Type == Float32 {
		pfx = ""
	}
	if ty.Vec > 0 {
		return fmt.Sprintf("%svec%d", pfx, ty.Vec)
	}
	return fmt.Sprintf("%smat%d", pfx, ty.Mat)
}

// Bytes returns actual size of this element in bytes
func (ty UniType) Bytes() int {
	n := TypeBytes(ty.Type)
	if ty.Vec == 0 && ty.Mat == 0 {
		return n
	}
	if ty.Vec > 0 {
		return ty.Vec * n
	}
	return ty.Mat * ty.Mat * n
}

// StdBytes returns number of bytes taken up by this element, in std140 format (including padding)
// https://learnopengl.com/Advanced-OpenGL/Advanced-GLSL
func (ty UniType) StdBytes() int {
	n := TypeBytes(ty.Type)
	if ty.Vec == 0 && ty.Mat == 0 {
		return n
	}
	if ty.Vec > 0 {
		if ty.Vec <= 2 {
			return 2 * n
		}
		return 4 * n
	}
	return ty.Mat * 4 * n
}

// StdAlign returns the std140 base alignment of this element.
// Matrices are aligned as arrays of vec4 columns.
func (ty UniType) StdAlign() int {
	n := TypeBytes(ty.Type)
	switch {
	case ty.Mat > 0:
		return 4 * n
	case ty.Vec > 2:
		return 4 * n
	case ty.Vec > 0:
		return 2 * n
	}
	return n
}

// Std140Layout returns the byte offsets of the given block members laid out
// in declaration order under std140 rules, and the packed size of the block
// (the end of the last member, without trailing struct padding).
func Std140Layout(members ...UniType) (offsets []int, size int) {
	offsets = make([]int, len(members))
	for i, m := range members {
		al := m.StdAlign()
		if rem := size % al; rem != 0 {
			size += al - rem
		}
		offsets[i] = size
		if m.Mat > 0 {
			size += m.StdBytes()
		} else {
			size += m.Bytes()
		}
	}
	return
}
