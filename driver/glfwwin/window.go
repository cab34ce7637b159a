// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwwin opens a glfw window with an OpenGL 4.5 core context
// and serves as the presentation surface of the frame loop.
// IMPORTANT: all functions must be called on the main initial thread!
package glfwwin

import (
	"image"
	"log/slog"

	"github.com/glskel/glskel/driver/glgpu"
	"github.com/glskel/glskel/pipeline"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options configure the window.
type Options struct {
	Title string
	Size  image.Point

	// SwapInterval is the number of screen refreshes to wait between
	// buffer swaps.
	SwapInterval int
}

// Window is a glfw window whose context is current on the calling thread.
type Window struct {
	Window *glfw.Window
}

// Open initializes glfw and opens a window with a current OpenGL 4.5
// core context. Failures are *pipeline.InitError for the stage that
// failed, with glfw terminated.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &pipeline.InitError{Stage: pipeline.InitWindowSystem, Err: err}
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	gw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &pipeline.InitError{Stage: pipeline.InitWindow, Err: err}
	}
	gw.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)
	gw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if closeRequested(key, action) {
			w.SetShouldClose(true)
		}
	})
	gw.SetInputMode(glfw.StickyKeysMode, glfw.True)
	slog.Debug("glfwwin: opened window", "size", opts.Size, "swap interval", opts.SwapInterval)
	return &Window{Window: gw}, nil
}

// closeRequested reports whether the key event asks to close the window.
func closeRequested(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}

// Device loads the OpenGL functions of the window context.
func (w *Window) Device() (*glgpu.Device, error) {
	dev, err := glgpu.New()
	if err != nil {
		return nil, &pipeline.InitError{Stage: pipeline.InitFunctions, Err: err}
	}
	return dev, nil
}

// Time returns the glfw clock in seconds.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.Window.ShouldClose()
}

// Present swaps the buffers and processes pending events.
func (w *Window) Present() {
	w.Window.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	if w.Window != nil {
		w.Window.Destroy()
		w.Window = nil
	}
	glfw.Terminate()
}
