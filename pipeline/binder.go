// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/glskel/glskel/glsl"
	"github.com/glskel/glskel/gpu"
)

// BindingStrategy is how the binding point of a program's uniform block
// is resolved.
type BindingStrategy int32

const (
	// Reflect queries the linked program for the block index and assigns
	// it the desired binding point.
	Reflect BindingStrategy = iota

	// Fixed uses the binding point declared on the block in the shader
	// source with layout(binding = N), without querying the device.
	Fixed
)

var strategyNames = [...]string{"reflect", "fixed"}

func (bs BindingStrategy) String() string {
	if bs >= 0 && int(bs) < len(strategyNames) {
		return strategyNames[bs]
	}
	return fmt.Sprintf("BindingStrategy(%d)", int32(bs))
}

// Set sets the strategy from its name.
func (bs *BindingStrategy) Set(s string) error {
	for i, nm := range strategyNames {
		if strings.EqualFold(s, nm) {
			*bs = BindingStrategy(i)
			return nil
		}
	}
	return fmt.Errorf("invalid binding strategy %q: must be one of %s", s, strings.Join(strategyNames[:], ", "))
}

// Type returns the type name shown in flag usage.
func (bs *BindingStrategy) Type() string {
	return "strategy"
}

// MarshalText encodes the strategy as its name.
func (bs BindingStrategy) MarshalText() ([]byte, error) {
	return []byte(bs.String()), nil
}

// UnmarshalText decodes the strategy from its name.
func (bs *BindingStrategy) UnmarshalText(text []byte) error {
	return bs.Set(string(text))
}

// Binder resolves the binding point of the shared parameter block of
// linked programs.
type Binder struct {
	Device gpu.Device
}

// Bind resolves the binding point of the named block of the program with
// the program's strategy, records it in the program and returns it.
// desired is the binding point assigned by the Reflect strategy; Fixed
// ignores it. A missing block is a *BlockNotFoundError.
func (bd *Binder) Bind(prog *Program, block string, desired gpu.BindingPoint) (gpu.BindingPoint, error) {
	var pt gpu.BindingPoint
	var err error
	switch prog.Strategy {
	case Reflect:
		slog.Info("using reflection to get uniform block index and binding point", "program", prog.Role, "block", block)
		pt, err = bd.reflect(prog, block, desired)
	case Fixed:
		slog.Info("using shader layout for uniform block binding point", "program", prog.Role, "block", block)
		pt, err = fixedBinding(prog, block)
	default:
		err = fmt.Errorf("pipeline.Binder: invalid strategy %v", prog.Strategy)
	}
	if err != nil {
		return 0, err
	}
	prog.Binding = pt
	prog.bound = true
	slog.Debug("bound uniform block", "program", prog.Role, "block", block, "binding", pt)
	return pt, nil
}

func (bd *Binder) reflect(prog *Program, block string, desired gpu.BindingPoint) (gpu.BindingPoint, error) {
	idx := bd.Device.UniformBlockIndex(prog.Handle, block)
	if idx == gpu.InvalidIndex {
		return 0, &BlockNotFoundError{Program: prog.Role.String(), Block: block}
	}
	bd.Device.UniformBlockBinding(prog.Handle, idx, desired)
	return desired, nil
}

// fixedBinding returns the binding declared on the block in the sources
// of the program: the first stage that declares the block decides.
func fixedBinding(prog *Program, block string) (gpu.BindingPoint, error) {
	for _, src := range []string{prog.Sources.Vertex.Text, prog.Sources.Fragment.Text} {
		si, err := glsl.Reflect(src)
		if err != nil {
			return 0, &BlockNotFoundError{Program: prog.Role.String(), Block: block, Reason: err.Error()}
		}
		bl := si.BlockByName(block)
		if bl == nil {
			continue
		}
		bind, ok := bl.Binding()
		if !ok {
			return 0, &BlockNotFoundError{Program: prog.Role.String(), Block: block, Reason: "no binding declared in its layout"}
		}
		return gpu.BindingPoint(bind), nil
	}
	return 0, &BlockNotFoundError{Program: prog.Role.String(), Block: block}
}
