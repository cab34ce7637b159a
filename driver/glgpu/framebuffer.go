// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/gl/v4.5-core/gl"
)

// CreateFramebuffer makes a new framebuffer object.
func (dev *Device) CreateFramebuffer() gpu.Framebuffer {
	var fb uint32
	gl.CreateFramebuffers(1, &fb)
	return gpu.Framebuffer(fb)
}

// FramebufferTexture attaches level 0 of the texture as a color attachment.
func (dev *Device) FramebufferTexture(fb gpu.Framebuffer, attachment int, t gpu.Texture) {
	gl.NamedFramebufferTexture(uint32(fb), gl.COLOR_ATTACHMENT0+uint32(attachment), uint32(t), 0)
}

// CheckFramebufferStatus returns the completeness of the framebuffer
// as a draw target.
func (dev *Device) CheckFramebufferStatus(fb gpu.Framebuffer) gpu.FramebufferStatus {
	return framebufferStatus(gl.CheckNamedFramebufferStatus(uint32(fb), gl.DRAW_FRAMEBUFFER))
}

func framebufferStatus(st uint32) gpu.FramebufferStatus {
	switch st {
	case gl.FRAMEBUFFER_COMPLETE:
		return gpu.FramebufferComplete
	case gl.FRAMEBUFFER_UNDEFINED:
		return gpu.FramebufferUndefined
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return gpu.FramebufferIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return gpu.FramebufferIncompleteMissingAttachment
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return gpu.FramebufferUnsupported
	}
	return gpu.FramebufferStatusUnknown
}

// BindFramebuffer makes fb the draw and read framebuffer.
func (dev *Device) BindFramebuffer(fb gpu.Framebuffer) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
}

// DeleteFramebuffer deletes the framebuffer.
func (dev *Device) DeleteFramebuffer(fb gpu.Framebuffer) {
	h := uint32(fb)
	gl.DeleteFramebuffers(1, &h)
}
