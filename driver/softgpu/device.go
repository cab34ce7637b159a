// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softgpu is a software implementation of gpu.Device.
//
// Shader sources are compiled by scanning and reflecting their GLSL
// interface with package glsl, and are executed by Go kernels that are
// registered for each exact source text (see RegisterVertex and
// RegisterFragment). Triangles are rasterized at pixel centres into
// RGBA8 targets that are stored bottom row first, as in GL.
//
// It exists so that the rendering pipeline can be run and checked
// pixel by pixel without a GPU or a display.
package softgpu

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/glskel/glskel/gpu"
)

// Device is a software gpu.Device. It is not safe for concurrent use,
// matching the single context thread of a real device.
type Device struct {
	// MaxTextureSize is the largest width or height accepted by TextureStorage.
	MaxTextureSize int

	// Draws counts draw calls that executed.
	Draws int

	// Fragments counts fragment shader invocations.
	Fragments int

	size  image.Point
	next  uint32
	errs  []error
	clear [4]uint8

	shaders      map[gpu.Shader]*shader
	programs     map[gpu.Program]*program
	buffers      map[gpu.Buffer]*buffer
	textures     map[gpu.Texture]*texture
	framebuffers map[gpu.Framebuffer]*framebuffer
	vertexArrays map[gpu.VertexArray]*vertexArray

	vertexKernels   map[string]VertexKernel
	fragmentKernels map[string]FragmentKernel

	// bound state
	current         gpu.Program
	drawFB          gpu.Framebuffer
	vao             gpu.VertexArray
	viewport        image.Rectangle
	uniformBindings map[gpu.BindingPoint]gpu.Buffer
	units           map[int]gpu.Texture
}

var _ gpu.Device = (*Device)(nil)

// NewDevice returns a new device whose default framebuffer has the
// given size.
func NewDevice(size image.Point) *Device {
	dev := &Device{
		MaxTextureSize:  16384,
		size:            size,
		shaders:         map[gpu.Shader]*shader{},
		programs:        map[gpu.Program]*program{},
		buffers:         map[gpu.Buffer]*buffer{},
		textures:        map[gpu.Texture]*texture{},
		framebuffers:    map[gpu.Framebuffer]*framebuffer{},
		vertexArrays:    map[gpu.VertexArray]*vertexArray{},
		vertexKernels:   map[string]VertexKernel{},
		fragmentKernels: map[string]FragmentKernel{},
		uniformBindings: map[gpu.BindingPoint]gpu.Buffer{},
		units:           map[int]gpu.Texture{},
		viewport:        image.Rectangle{Max: size},
	}
	surf := newTexture()
	surf.allocate(size)
	dev.framebuffers[gpu.DefaultFramebuffer] = &framebuffer{color: surf}
	return dev
}

// Info returns the version strings of the device.
func (dev *Device) Info() gpu.Info {
	return gpu.Info{
		Version:         "4.5 (Core Profile) softgpu",
		ShadingLanguage: "4.50",
		Renderer:        "glskel software rasterizer",
	}
}

// Size returns the size of the default framebuffer.
func (dev *Device) Size() image.Point {
	return dev.size
}

// ErrCheck returns the errors recorded since the last call, joined,
// and clears them, like glGetError. ctxt describes the caller.
func (dev *Device) ErrCheck(ctxt string) error {
	if len(dev.errs) == 0 {
		return nil
	}
	err := fmt.Errorf("softgpu %s: %w", ctxt, errors.Join(dev.errs...))
	dev.errs = nil
	return err
}

// fail records an invalid call. The call itself has no effect.
func (dev *Device) fail(format string, args ...any) {
	err := fmt.Errorf(format, args...)
	slog.Debug("softgpu", "err", err)
	dev.errs = append(dev.errs, err)
}

func (dev *Device) newName() uint32 {
	dev.next++
	return dev.next
}

// Viewport sets the window rectangle that normalized device
// coordinates map onto.
func (dev *Device) Viewport(rect image.Rectangle) {
	if rect.Dx() < 0 || rect.Dy() < 0 {
		dev.fail("Viewport: negative size %v", rect)
		return
	}
	dev.viewport = rect
}

// SetClearColor sets the color used by Clear, in 8 bit RGBA.
// It is (0, 0, 0, 0) initially.
func (dev *Device) SetClearColor(r, g, b, a uint8) {
	dev.clear = [4]uint8{r, g, b, a}
}

// Clear fills the color attachment of the current draw framebuffer with
// the clear color. Targets have no depth attachment, so depth is a no-op.
func (dev *Device) Clear(color, depth bool) {
	if !color {
		return
	}
	fb := dev.framebuffers[dev.drawFB]
	if fb == nil || fb.color == nil || fb.color.pix == nil {
		return
	}
	pix := fb.color.pix
	for i := 0; i < len(pix); i += 4 {
		copy(pix[i:i+4], dev.clear[:])
	}
}

// UseProgram makes the program current. The null program unbinds.
func (dev *Device) UseProgram(pr gpu.Program) {
	if pr != 0 {
		p := dev.programs[pr]
		if p == nil || !p.linked {
			dev.fail("UseProgram: program %d is not linked", pr)
			return
		}
	}
	dev.current = pr
}

// BindBufferBase binds the buffer to the indexed uniform binding point.
func (dev *Device) BindBufferBase(target gpu.BufferTargets, pt gpu.BindingPoint, b gpu.Buffer) {
	if b != 0 && dev.buffers[b] == nil {
		dev.fail("BindBufferBase: no buffer %d", b)
		return
	}
	dev.uniformBindings[pt] = b
}

// BindTextureUnit binds the texture to the sampling unit.
func (dev *Device) BindTextureUnit(unit int, t gpu.Texture) {
	if t != 0 && dev.textures[t] == nil {
		dev.fail("BindTextureUnit: no texture %d", t)
		return
	}
	dev.units[unit] = t
}

// BindFramebuffer makes fb the draw target.
func (dev *Device) BindFramebuffer(fb gpu.Framebuffer) {
	if dev.framebuffers[fb] == nil {
		dev.fail("BindFramebuffer: no framebuffer %d", fb)
		return
	}
	dev.drawFB = fb
}

// BindVertexArray makes the vertex array current.
func (dev *Device) BindVertexArray(va gpu.VertexArray) {
	if va != 0 && dev.vertexArrays[va] == nil {
		dev.fail("BindVertexArray: no vertex array %d", va)
		return
	}
	dev.vao = va
}
