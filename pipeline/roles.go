// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"strconv"

	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/shaders"
)

// Role is the part a program plays in the frame.
type Role int32

const (
	// RenderRole draws the textured triangle into the offscreen target.
	RenderRole Role = iota

	// PostProcessRole composites the offscreen target onto the surface.
	PostProcessRole

	RolesN
)

var roleNames = [...]string{"render", "postprocess"}

func (rl Role) String() string {
	if rl >= 0 && rl < RolesN {
		return roleNames[rl]
	}
	return "Role(" + strconv.Itoa(int(rl)) + ")"
}

// Program is a linked program and the binding point resolved for its
// shared parameter block.
type Program struct {
	Role   Role
	Handle gpu.Program

	// Binding is where the shared parameter buffer must be bound
	// when drawing with the program. Valid once the program is bound.
	Binding gpu.BindingPoint

	// Strategy is how Binding was resolved.
	Strategy BindingStrategy

	// Sources are the stage sources the program was built from.
	Sources shaders.Pair

	bound bool
}

// Usable reports whether the program linked and had its block binding
// resolved, so that it can be drawn with.
func (pr *Program) Usable() bool {
	return pr != nil && !pr.Handle.IsNull() && pr.bound
}

// Programs holds one program per role.
type Programs struct {
	Render      *Program
	PostProcess *Program
}

// Get returns the program of the role, or nil.
func (ps *Programs) Get(role Role) *Program {
	switch role {
	case RenderRole:
		return ps.Render
	case PostProcessRole:
		return ps.PostProcess
	}
	return nil
}

// set stores the program under its role.
func (ps *Programs) set(pr *Program) {
	switch pr.Role {
	case RenderRole:
		ps.Render = pr
	case PostProcessRole:
		ps.PostProcess = pr
	}
}

// Release deletes the programs.
func (ps *Programs) Release(dev gpu.Device) {
	for _, pr := range []*Program{ps.Render, ps.PostProcess} {
		if pr != nil && !pr.Handle.IsNull() {
			dev.DeleteProgram(pr.Handle)
			pr.Handle = 0
			pr.bound = false
		}
	}
}
