// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"math"
)

// Float32Bytes returns the values in device (native) byte order,
// for upload into a buffer.
func Float32Bytes(fs ...float32) []byte {
	b := make([]byte, 4*len(fs))
	for i, f := range fs {
		binary.NativeEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}

// Uint32Bytes returns the values in device (native) byte order,
// for upload into an element buffer of UnsignedInt indexes.
func Uint32Bytes(us ...uint32) []byte {
	b := make([]byte, 4*len(us))
	for i, u := range us {
		binary.NativeEndian.PutUint32(b[4*i:], u)
	}
	return b
}

// BytesToFloat32s decodes len(fs) values in device byte order from b
// into fs, the inverse of [Float32Bytes].
func BytesToFloat32s(b []byte, fs []float32) {
	for i := range fs {
		fs[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[4*i:]))
	}
}
