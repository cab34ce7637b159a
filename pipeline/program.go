// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"log/slog"
	"strings"

	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/shaders"
)

// Manager compiles shader stages and links them into programs.
// Stage handles are single use: linking consumes them whether or not
// it succeeds.
type Manager struct {
	Device gpu.Device

	// DetachAfterLink detaches the stages from the program after linking,
	// before deleting them. Debug builds leave them attached so that
	// debugging tools can show their sources.
	DetachAfterLink bool
}

// NewManager returns a new manager for the device.
func NewManager(dev gpu.Device) *Manager {
	return &Manager{Device: dev, DetachAfterLink: DetachAfterLink}
}

// CompileStage compiles the source into a stage handle. On failure the
// handle is deleted and a *CompileError carries the compiler log and
// the source. A stage object that cannot be created is also a
// *CompileError.
func (mg *Manager) CompileStage(src shaders.Source) (gpu.Shader, error) {
	if strings.TrimSpace(strings.TrimRight(src.Text, "\x00")) == "" {
		return 0, &CompileError{Name: src.Name, Stage: src.Stage, Log: "empty shader source", Source: src.Text}
	}
	dev := mg.Device
	sh := dev.CreateShader(src.Stage)
	if sh.IsNull() {
		return 0, &CompileError{Name: src.Name, Stage: src.Stage, Log: "Failed to create shader object", Source: src.Text}
	}
	dev.ShaderSource(sh, src.Text)
	ok, log := dev.CompileShader(sh)
	if !ok {
		dev.DeleteShader(sh)
		return 0, &CompileError{Name: src.Name, Stage: src.Stage, Log: log, Source: src.Text}
	}
	slog.Debug("compiled shader", "name", src.Name, "stage", src.Stage)
	return sh, nil
}

// Link attaches the stages to a new program and links it. The stages
// are always deleted. On failure the program is deleted and a *LinkError
// carries the linker log. A program object that cannot be created is
// also a *LinkError.
func (mg *Manager) Link(name string, stages [2]gpu.Shader) (gpu.Program, error) {
	dev := mg.Device
	pr := dev.CreateProgram()
	if pr.IsNull() {
		for _, sh := range stages {
			dev.DeleteShader(sh)
		}
		return 0, &LinkError{Name: name, Log: "Failed to create program object"}
	}
	for _, sh := range stages {
		dev.AttachShader(pr, sh)
	}
	ok, log := dev.LinkProgram(pr)
	for _, sh := range stages {
		if mg.DetachAfterLink {
			dev.DetachShader(pr, sh)
		}
		dev.DeleteShader(sh)
	}
	if !ok {
		dev.DeleteProgram(pr)
		return 0, &LinkError{Name: name, Log: log}
	}
	slog.Debug("linked program", "name", name)
	return pr, nil
}

// Build compiles both stages of the pair and links them into the
// program of the given role. Binding resolution is left to a [Binder].
func (mg *Manager) Build(role Role, pair shaders.Pair) (*Program, error) {
	vs, err := mg.CompileStage(pair.Vertex)
	if err != nil {
		return nil, err
	}
	fs, err := mg.CompileStage(pair.Fragment)
	if err != nil {
		mg.Device.DeleteShader(vs)
		return nil, err
	}
	pr, err := mg.Link(role.String(), [2]gpu.Shader{vs, fs})
	if err != nil {
		return nil, err
	}
	return &Program{Role: role, Handle: pr, Sources: pair}, nil
}
