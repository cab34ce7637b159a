// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements gpu.Device on an OpenGL 4.5 core context,
// using direct state access so that objects are edited without being
// bound. All methods must be called on the thread that owns the
// current context.
package glgpu

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/gl/v4.5-core/gl"
)

// Device is a gpu.Device for the current OpenGL context.
type Device struct {
	info gpu.Info
}

var _ gpu.Device = (*Device)(nil)

// New loads the GL functions for the current context and returns
// a device for it. A context must be current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glgpu: loading OpenGL functions: %w", err)
	}
	dev := &Device{}
	dev.info = gpu.Info{
		Version:         gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguage: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	slog.Debug("glgpu: context", "version", dev.info.Version, "renderer", dev.info.Renderer)
	return dev, nil
}

// Info returns the version strings reported by the context.
func (dev *Device) Info() gpu.Info {
	return dev.info
}

// ErrCheck returns an error listing the pending GL errors, if any,
// clearing them. ctxt describes the caller.
func (dev *Device) ErrCheck(ctxt string) error {
	var errs []string
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		errs = append(errs, errorName(code))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("glgpu %s: %s", ctxt, strings.Join(errs, ", "))
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	}
	return fmt.Sprintf("error 0x%x", code)
}

// Viewport sets the window transform.
func (dev *Device) Viewport(rect image.Rectangle) {
	gl.Viewport(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()))
}

// Clear clears the buffers of the bound draw framebuffer.
func (dev *Device) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

// SetClearColor sets the color used by Clear.
func (dev *Device) SetClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}
