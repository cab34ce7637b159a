// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glskel renders a textured triangle into an offscreen target
// every frame and composites it onto the window through a time-varying
// post-process pass. Press Escape to quit.
//
// With --backend=soft it runs headless on the software device for
// --frames frames and can save the last frame with --snapshot.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/glskel/glskel/base/errors"
	"github.com/glskel/glskel/base/imagex"
	"github.com/glskel/glskel/config"
	"github.com/glskel/glskel/driver/glfwwin"
	"github.com/glskel/glskel/driver/softgpu"
	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/logx"
	"github.com/glskel/glskel/pipeline"
	"github.com/glskel/glskel/shaders/reference"
	"github.com/spf13/pflag"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load("glskel", args)
	if errors.Is(err, pflag.ErrHelp) {
		return pipeline.ExitSuccess
	}
	if err != nil {
		return fail(&pipeline.InitError{Stage: pipeline.InitConfig, Err: err})
	}
	if cfg.VeryVerbose || cfg.Verbose || cfg.Quiet {
		logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	}
	logx.SetDefaultLogger()

	switch cfg.Backend {
	case config.BackendSoft:
		err = runSoft(cfg)
	default:
		err = runGL(cfg)
	}
	if err != nil {
		return fail(err)
	}
	return pipeline.ExitSuccess
}

func fail(err error) int {
	logx.PrintlnError(err)
	return pipeline.ExitCode(err)
}

func printInfo(info gpu.Info) {
	fmt.Printf("OpenGL %s, GLSL %s\n", info.Version, info.ShadingLanguage)
}

// runFrames runs the frame loop on the surface and releases the
// device objects.
func runFrames(dev gpu.Device, sf pipeline.Surface, cfg *config.Config) error {
	sc := pipeline.NewScheduler(dev, sf, cfg.Options())
	defer sc.Release()
	frames, err := sc.Run()
	if err != nil {
		return err
	}
	slog.Info("done", "frames", frames)
	return nil
}

func runGL(cfg *config.Config) error {
	win, err := glfwwin.Open(glfwwin.Options{Title: cfg.Title, Size: cfg.Size(), SwapInterval: cfg.SwapInterval})
	if err != nil {
		return err
	}
	defer win.Close()
	dev, err := win.Device()
	if err != nil {
		return err
	}
	printInfo(dev.Info())
	err = runFrames(dev, win, cfg)
	errors.Log(dev.ErrCheck("frame loop"))
	return err
}

func runSoft(cfg *config.Config) error {
	dev := softgpu.NewDevice(cfg.Size())
	reference.Install(dev)
	printInfo(dev.Info())
	sf := softgpu.NewSurface(cfg.Frames, cfg.Step)
	if cfg.Snapshot != "" {
		// without a frame limit every frame is saved
		sf.OnPresent = func(frame int) {
			if cfg.Frames == 0 || frame == cfg.Frames {
				errors.Log(imagex.Save(dev.Snapshot(gpu.DefaultFramebuffer), cfg.Snapshot))
			}
		}
	}
	err := runFrames(dev, sf, cfg)
	errors.Log(dev.ErrCheck("frame loop"))
	return err
}
