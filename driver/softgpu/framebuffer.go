// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"image"
	"image/color"

	"github.com/glskel/glskel/gpu"
)

type framebuffer struct {
	// name of the color attachment texture, 0 for the default framebuffer
	// and for no attachment
	name  gpu.Texture
	color *texture
}

// CreateFramebuffer makes a new framebuffer without attachments.
func (dev *Device) CreateFramebuffer() gpu.Framebuffer {
	fb := gpu.Framebuffer(dev.newName())
	dev.framebuffers[fb] = &framebuffer{}
	return fb
}

// FramebufferTexture attaches the texture as color attachment 0.
// Attaching the null texture detaches.
func (dev *Device) FramebufferTexture(fb gpu.Framebuffer, attachment int, t gpu.Texture) {
	f := dev.framebuffers[fb]
	switch {
	case f == nil || fb == gpu.DefaultFramebuffer:
		dev.fail("FramebufferTexture: invalid framebuffer %d", fb)
		return
	case attachment != 0:
		dev.fail("FramebufferTexture: only color attachment 0 is supported, got %d", attachment)
		return
	case t == 0:
		f.name, f.color = 0, nil
		return
	}
	tx := dev.textures[t]
	if tx == nil {
		dev.fail("FramebufferTexture: no texture %d", t)
		return
	}
	f.name, f.color = t, tx
}

// CheckFramebufferStatus reports whether the framebuffer can be drawn to.
func (dev *Device) CheckFramebufferStatus(fb gpu.Framebuffer) gpu.FramebufferStatus {
	f := dev.framebuffers[fb]
	switch {
	case f == nil:
		return gpu.FramebufferUndefined
	case fb == gpu.DefaultFramebuffer:
		return gpu.FramebufferComplete
	case f.color == nil:
		return gpu.FramebufferIncompleteMissingAttachment
	case dev.textures[f.name] != f.color || f.color.pix == nil:
		return gpu.FramebufferIncompleteAttachment
	}
	return gpu.FramebufferComplete
}

// DeleteFramebuffer deletes the framebuffer. The default framebuffer
// cannot be deleted, and a bound framebuffer reverts to the default.
func (dev *Device) DeleteFramebuffer(fb gpu.Framebuffer) {
	if fb == gpu.DefaultFramebuffer || dev.framebuffers[fb] == nil {
		return
	}
	delete(dev.framebuffers, fb)
	if dev.drawFB == fb {
		dev.drawFB = gpu.DefaultFramebuffer
	}
}

// Pixel returns the color of the pixel of the color attachment of fb at
// window coordinates x, y, where y = 0 is the bottom row.
func (dev *Device) Pixel(fb gpu.Framebuffer, x, y int) color.RGBA {
	f := dev.framebuffers[fb]
	if f == nil || f.color == nil || f.color.pix == nil {
		return color.RGBA{}
	}
	if !image.Pt(x, y).In(image.Rectangle{Max: f.color.size}) {
		return color.RGBA{}
	}
	i := f.color.offset(x, y)
	p := f.color.pix[i : i+4 : i+4]
	return color.RGBA{p[0], p[1], p[2], p[3]}
}

// Snapshot returns a copy of the color attachment of fb as an image,
// flipped so that the top row of the image is the top of the target.
// It returns nil when fb has no color storage.
func (dev *Device) Snapshot(fb gpu.Framebuffer) *image.RGBA {
	f := dev.framebuffers[fb]
	if f == nil || f.color == nil || f.color.pix == nil {
		return nil
	}
	tx := f.color
	img := image.NewRGBA(image.Rectangle{Max: tx.size})
	row := 4 * tx.size.X
	for y := 0; y < tx.size.Y; y++ {
		src := tx.offset(0, tx.size.Y-1-y)
		copy(img.Pix[y*img.Stride:y*img.Stride+row], tx.pix[src:src+row])
	}
	return img
}
