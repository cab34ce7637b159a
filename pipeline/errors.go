// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glskel/glskel/base/errors"
	"github.com/glskel/glskel/gpu"
)

// InitStages are the steps of bringing up a device, each with its own
// failure exit code.
type InitStages int32

const (
	// InitWindowSystem is initializing the window system library.
	InitWindowSystem InitStages = iota

	// InitWindow is creating the window and its context.
	InitWindow

	// InitFunctions is loading the device functions for the context.
	InitFunctions

	// InitConfig is reading the configuration.
	InitConfig
)

var initStageNames = [...]string{"window system", "window", "device functions", "configuration"}

func (is InitStages) String() string {
	if is >= 0 && int(is) < len(initStageNames) {
		return initStageNames[is]
	}
	return "InitStages(" + strconv.Itoa(int(is)) + ")"
}

// InitError is a failure to make the device or surface available.
type InitError struct {
	Stage InitStages
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("Failed to initialize %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// CompileError is a failure to compile one shader stage.
type CompileError struct {
	// Name is the name of the stage source.
	Name  string
	Stage gpu.ShaderTypes

	// Log is the compiler info log.
	Log string

	// Source is the text that failed to compile.
	Source string
}

// Error returns the numbered source followed by the compiler log.
func (e *CompileError) Error() string {
	return fmt.Sprintf("Compile error in %s shader %s:\n%s\n%s", e.Stage, e.Name, NumberSource(e.Source), strings.TrimRight(e.Log, "\n"))
}

// NumberSource returns src with each line prefixed by its 0-based line
// number and ": ". Carriage returns are dropped, and the text ends at a
// NUL terminator if there is one.
//
//	NumberSource("a\nb\n") == "0: a\n1: b\n2: "
func NumberSource(src string) string {
	var sb strings.Builder
	sb.WriteString("0: ")
	line := 0
	for i := 0; i < len(src) && src[i] != 0; i++ {
		switch c := src[i]; c {
		case '\r':
		case '\n':
			line++
			sb.WriteString("\n" + strconv.Itoa(line) + ": ")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// LinkError is a failure to link a program.
type LinkError struct {
	Name string

	// Log is the linker info log.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("Link error in %s program:\n%s", e.Name, strings.TrimRight(e.Log, "\n"))
}

// BlockNotFoundError is a required uniform block that a program does not have.
type BlockNotFoundError struct {
	Program string
	Block   string

	// Reason qualifies how the block was missing, if not simply absent.
	Reason string
}

func (e *BlockNotFoundError) Error() string {
	msg := fmt.Sprintf("Failed to find %s in %s shader program", e.Block, e.Program)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ResourceError is a device object whose creation returned the null handle.
type ResourceError struct {
	// Kind is the kind of object, such as "texture" or "buffer".
	Kind string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("Failed to create %s object", e.Kind)
}

// FramebufferError is an offscreen framebuffer that is not complete.
type FramebufferError struct {
	Status gpu.FramebufferStatus
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("Framebuffer is not complete: %s", e.Status)
}

// Exit codes, one per failure class.
const (
	ExitSuccess       = 0
	ExitWindowSystem  = 1
	ExitWindow        = 2
	ExitFunctions     = 3
	ExitCompile       = 4
	ExitLink          = 5
	ExitBlockNotFound = 6
	ExitConfig        = 7
	ExitFramebuffer   = 10
	ExitResource      = 11
	ExitUnknown       = 12
)

// ExitCode returns the process exit code for err, which may wrap one of
// the errors of this package. A nil error is success.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ie *InitError
	var ce *CompileError
	var le *LinkError
	var be *BlockNotFoundError
	var fe *FramebufferError
	var re *ResourceError
	switch {
	case errors.As(err, &ie):
		switch ie.Stage {
		case InitWindowSystem:
			return ExitWindowSystem
		case InitWindow:
			return ExitWindow
		case InitFunctions:
			return ExitFunctions
		case InitConfig:
			return ExitConfig
		}
	case errors.As(err, &ce):
		return ExitCompile
	case errors.As(err, &le):
		return ExitLink
	case errors.As(err, &be):
		return ExitBlockNotFound
	case errors.As(err, &fe):
		return ExitFramebuffer
	case errors.As(err, &re):
		return ExitResource
	}
	return ExitUnknown
}
