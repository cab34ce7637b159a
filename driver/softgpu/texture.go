// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// texture is a single level RGBA8 image. Row 0 of pix is the bottom row.
type texture struct {
	size image.Point
	pix  []byte
}

func newTexture() *texture {
	return &texture{}
}

func (tx *texture) allocate(size image.Point) {
	tx.size = size
	tx.pix = make([]byte, 4*size.X*size.Y)
}

func (tx *texture) offset(x, y int) int {
	return 4 * (y*tx.size.X + x)
}

// texel returns the normalized color at integer coordinates, wrapped
// with the repeat rule.
func (tx *texture) texel(x, y int) mgl32.Vec4 {
	x = wrap(x, tx.size.X)
	y = wrap(y, tx.size.Y)
	i := tx.offset(x, y)
	p := tx.pix[i : i+4 : i+4]
	return mgl32.Vec4{float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, float32(p[3]) / 255}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// sample returns the bilinearly filtered color at normalized coordinates
// uv, with repeat wrapping on both axes. These are the GL defaults for
// magnification of a single level texture.
func (tx *texture) sample(uv mgl32.Vec2) mgl32.Vec4 {
	u := uv[0]*float32(tx.size.X) - 0.5
	v := uv[1]*float32(tx.size.Y) - 0.5
	fu, fv := math32.Floor(u), math32.Floor(v)
	a, b := u-fu, v-fv
	x, y := int(fu), int(fv)
	c00 := tx.texel(x, y)
	c10 := tx.texel(x+1, y)
	c01 := tx.texel(x, y+1)
	c11 := tx.texel(x+1, y+1)
	var c mgl32.Vec4
	for i := 0; i < 4; i++ {
		bottom := c00[i]*(1-a) + c10[i]*a
		top := c01[i]*(1-a) + c11[i]*a
		c[i] = bottom*(1-b) + top*b
	}
	return c
}

// set stores a normalized color at integer coordinates, clamping and
// rounding to 8 bits per channel.
func (tx *texture) set(x, y int, c mgl32.Vec4) {
	i := tx.offset(x, y)
	for k := 0; k < 4; k++ {
		tx.pix[i+k] = unorm8(c[k])
	}
}

func unorm8(f float32) uint8 {
	f = math32.Max(0, math32.Min(1, f))
	return uint8(math32.Floor(f*255 + 0.5))
}

// CreateTexture makes a new texture object without storage.
func (dev *Device) CreateTexture() gpu.Texture {
	t := gpu.Texture(dev.newName())
	dev.textures[t] = newTexture()
	return t
}

// TextureStorage allocates level 0 of the texture, cleared to zero.
// Only a single level is stored.
func (dev *Device) TextureStorage(t gpu.Texture, levels int, format gpu.TextureFormats, size image.Point) {
	tx := dev.textures[t]
	switch {
	case tx == nil:
		dev.fail("TextureStorage: no texture %d", t)
		return
	case tx.pix != nil:
		dev.fail("TextureStorage: texture %d storage is immutable", t)
		return
	case levels < 1 || format != gpu.RGBA8:
		dev.fail("TextureStorage: invalid levels %d or format %d", levels, format)
		return
	case size.X < 1 || size.Y < 1 || size.X > dev.MaxTextureSize || size.Y > dev.MaxTextureSize:
		dev.fail("TextureStorage: invalid size %v (max %d)", size, dev.MaxTextureSize)
		return
	}
	tx.allocate(size)
}

// TextureSubImage copies tightly packed RGBA8 pixels into rect of level 0.
// Row 0 of pix is the bottom row of rect.
func (dev *Device) TextureSubImage(t gpu.Texture, rect image.Rectangle, pix []byte) {
	tx := dev.textures[t]
	switch {
	case tx == nil || tx.pix == nil:
		dev.fail("TextureSubImage: texture %d has no storage", t)
		return
	case !rect.In(image.Rectangle{Max: tx.size}):
		dev.fail("TextureSubImage: %v outside texture %d of size %v", rect, t, tx.size)
		return
	case len(pix) < 4*rect.Dx()*rect.Dy():
		dev.fail("TextureSubImage: %d bytes for %v", len(pix), rect)
		return
	}
	row := 4 * rect.Dx()
	for y := 0; y < rect.Dy(); y++ {
		copy(tx.pix[tx.offset(rect.Min.X, rect.Min.Y+y):], pix[y*row:(y+1)*row])
	}
}

// DeleteTexture deletes the texture, unbinding it from all units.
func (dev *Device) DeleteTexture(t gpu.Texture) {
	if dev.textures[t] == nil {
		return
	}
	delete(dev.textures, t)
	for u, bt := range dev.units {
		if bt == t {
			delete(dev.units, u)
		}
	}
}
