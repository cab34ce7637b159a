// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/shaders"
)

// States are the states of a [Scheduler].
type States int32

const (
	// Initializing builds the programs and resources.
	Initializing States = iota

	// Running draws frames until the surface asks to close.
	Running

	// Terminating releases the device objects.
	Terminating
)

var stateNames = [...]string{"initializing", "running", "terminating"}

func (st States) String() string {
	if st >= 0 && int(st) < len(stateNames) {
		return stateNames[st]
	}
	return fmt.Sprintf("States(%d)", int32(st))
}

// Surface is the presentation surface that the frame loop draws to.
// It is owned by the caller.
type Surface interface {
	// Time returns a monotonic clock in seconds.
	Time() float64

	// ShouldClose reports whether a close has been requested.
	ShouldClose() bool

	// Present shows the frame and polls for input.
	Present()
}

// ProgramOptions configure the uniform block binding of one program.
type ProgramOptions struct {
	// Strategy is how the binding point is resolved.
	Strategy BindingStrategy

	// Binding is the binding point assigned by the Reflect strategy.
	// It is ignored by the Fixed strategy, which uses the binding
	// declared in the program's layout.
	Binding gpu.BindingPoint
}

// Options configure a [Scheduler].
type Options struct {
	// Size is the size of the surface and of the offscreen target.
	Size image.Point

	Render      ProgramOptions
	PostProcess ProgramOptions

	// Interleaved uploads the triangle with interleaved vertex attributes.
	Interleaved bool

	// Mesh replaces the triangle drawn by the render pass, if set.
	Mesh *Mesh
}

// DefaultOptions returns the options for a surface of the given size:
// the render program is bound by reflection and the post-process program
// by its fixed layout.
func DefaultOptions(size image.Point) Options {
	return Options{
		Size:        size,
		Render:      ProgramOptions{Strategy: Reflect, Binding: 3},
		PostProcess: ProgramOptions{Strategy: Fixed, Binding: 4},
	}
}

// Program returns the options of the program of the role.
func (op *Options) Program(role Role) ProgramOptions {
	if role == PostProcessRole {
		return op.PostProcess
	}
	return op.Render
}

// Scheduler runs the two pass frame: the textured triangle is drawn into
// the offscreen target, which is then composited onto the surface by the
// post-process program.
type Scheduler struct {
	Device  gpu.Device
	Surface Surface
	Options Options

	// State is the current state.
	State States

	// Programs are the render and post-process programs.
	Programs Programs

	// Resources are the frame resources.
	Resources *Resources

	// Frames is the number of frames drawn by Run.
	Frames int

	manager *Manager
	binder  *Binder
}

// NewScheduler returns a new scheduler in the Initializing state.
func NewScheduler(dev gpu.Device, sf Surface, opts Options) *Scheduler {
	return &Scheduler{
		Device:  dev,
		Surface: sf,
		Options: opts,
		State:   Initializing,
		manager: NewManager(dev),
		binder:  &Binder{Device: dev},
	}
}

// Manager returns the shader program manager.
func (sc *Scheduler) Manager() *Manager {
	return sc.manager
}

// Init builds the render program and binds its block, then the
// post-process program, then the frame resources and geometry. On
// failure the scheduler is Terminating and the error is one of the
// errors of this package.
func (sc *Scheduler) Init() error {
	if sc.State != Initializing {
		return fmt.Errorf("pipeline.Scheduler: Init called while %s", sc.State)
	}
	err := sc.init()
	if err != nil {
		sc.State = Terminating
		return err
	}
	sc.State = Running
	return nil
}

func (sc *Scheduler) init() error {
	pairs := [RolesN]shaders.Pair{RenderRole: shaders.Render(), PostProcessRole: shaders.PostProcess()}
	for role := RenderRole; role < RolesN; role++ {
		pr, err := sc.manager.Build(role, pairs[role])
		if err != nil {
			return err
		}
		po := sc.Options.Program(role)
		pr.Strategy = po.Strategy
		sc.Programs.set(pr)
		if _, err := sc.binder.Bind(pr, shaders.BlockName, po.Binding); err != nil {
			return err
		}
	}
	rs, err := NewResources(sc.Device, sc.Options.Size)
	if err != nil {
		return err
	}
	sc.Resources = rs
	mesh := sc.Options.Mesh
	switch {
	case mesh != nil:
	case sc.Options.Interleaved:
		mesh = InterleavedTriangleMesh()
	default:
		mesh = TriangleMesh()
	}
	if err := rs.BuildGeometry(mesh, sc.Options.Interleaved); err != nil {
		return err
	}
	dev := sc.Device
	// sampler uniforms read texture unit 0
	dev.ProgramUniformInt(sc.Programs.Render.Handle, 0, 0)
	dev.ProgramUniformInt(sc.Programs.PostProcess.Handle, 0, 0)
	dev.BindVertexArray(rs.VertexArray())
	dev.Viewport(image.Rectangle{Max: sc.Options.Size})
	slog.Debug("pipeline initialized", "render binding", sc.Programs.Render.Binding, "postprocess binding", sc.Programs.PostProcess.Binding)
	return nil
}

// Frame updates the shared parameters with time t and issues both passes.
func (sc *Scheduler) Frame(t float32) {
	dev := sc.Device
	rs := sc.Resources
	rs.UpdateSharedParameters(t)

	render := sc.Programs.Render
	dev.BindFramebuffer(rs.TargetFramebuffer())
	dev.Clear(true, true)
	dev.BindBufferBase(gpu.UniformBuffer, render.Binding, rs.UniformBuffer())
	dev.UseProgram(render.Handle)
	dev.BindTextureUnit(0, rs.Diffuse())
	dev.DrawElements(gpu.Triangles, rs.IndexCount(), gpu.UnsignedInt, 0)

	post := sc.Programs.PostProcess
	dev.BindFramebuffer(gpu.DefaultFramebuffer)
	dev.Clear(true, true)
	dev.BindBufferBase(gpu.UniformBuffer, post.Binding, rs.UniformBuffer())
	dev.UseProgram(post.Handle)
	dev.BindTextureUnit(0, rs.TargetTexture())
	dev.DrawArrays(gpu.Triangles, 0, 3)
}

// Run initializes the scheduler if needed, then draws and presents
// frames until the surface asks to close. Close is only checked between
// frames. It returns the number of frames drawn.
func (sc *Scheduler) Run() (int, error) {
	if sc.State == Initializing {
		if err := sc.Init(); err != nil {
			return 0, err
		}
	}
	if sc.State != Running {
		return 0, fmt.Errorf("pipeline.Scheduler: Run called while %s", sc.State)
	}
	if !sc.Programs.Render.Usable() || !sc.Programs.PostProcess.Usable() {
		return 0, fmt.Errorf("pipeline.Scheduler: programs are not usable")
	}
	start := sc.Surface.Time()
	for !sc.Surface.ShouldClose() {
		t := float32(sc.Surface.Time() - start)
		sc.Frame(t)
		sc.Surface.Present()
		sc.Frames++
	}
	slog.Debug("frame loop ended", "frames", sc.Frames)
	return sc.Frames, nil
}

// Release deletes the resources and then the programs, leaving the
// scheduler Terminating. The surface is left to its owner.
func (sc *Scheduler) Release() {
	sc.State = Terminating
	dev := sc.Device
	if dev == nil {
		return
	}
	dev.BindVertexArray(0)
	if sc.Resources != nil {
		sc.Resources.Release()
		sc.Resources = nil
	}
	sc.Programs.Release(dev)
}
