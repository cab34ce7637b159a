// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/gl/v4.5-core/gl"
)

var glTextureFormats = map[gpu.TextureFormats]uint32{
	gpu.RGBA8: gl.RGBA8,
}

// CreateTexture makes a new 2D texture object.
func (dev *Device) CreateTexture() gpu.Texture {
	var t uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &t)
	return gpu.Texture(t)
}

// TextureStorage allocates immutable storage for the texture.
func (dev *Device) TextureStorage(t gpu.Texture, levels int, format gpu.TextureFormats, size image.Point) {
	gl.TextureStorage2D(uint32(t), int32(levels), glTextureFormats[format], int32(size.X), int32(size.Y))
}

// TextureSubImage uploads RGBA8 pixels into rect of level 0.
func (dev *Device) TextureSubImage(t gpu.Texture, rect image.Rectangle, pix []byte) {
	gl.TextureSubImage2D(uint32(t), 0, int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()), gl.RGBA, gl.UNSIGNED_BYTE, bytesPtr(pix))
}

// BindTextureUnit binds the texture to the sampling unit.
func (dev *Device) BindTextureUnit(unit int, t gpu.Texture) {
	gl.BindTextureUnit(uint32(unit), uint32(t))
}

// DeleteTexture deletes the texture.
func (dev *Device) DeleteTexture(t gpu.Texture) {
	h := uint32(t)
	gl.DeleteTextures(1, &h)
}
