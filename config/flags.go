// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/glskel/glskel/base/errors"
	"github.com/spf13/pflag"
)

// FlagSet returns a flag set that writes into the config, with the
// current values of the config as the flag defaults.
func (cfg *Config) FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&cfg.File, "config", "c", cfg.File, "the TOML or YAML `file` to read the configuration from")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "the width of the window and of the offscreen target")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "the height of the window and of the offscreen target")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "the title of the window")
	fs.IntVar(&cfg.SwapInterval, "swap-interval", cfg.SwapInterval, "the number of screen refreshes to wait for between frames")
	fs.Var(&cfg.Backend, "backend", "the device to render with: gl or soft")
	fs.Var(&cfg.Render.Strategy, "render-strategy", "how the render program block binding is resolved: reflect or fixed")
	fs.Uint32Var((*uint32)(&cfg.Render.Binding), "render-binding", uint32(cfg.Render.Binding), "the render program binding point for the reflect strategy")
	fs.Var(&cfg.PostProcess.Strategy, "postprocess-strategy", "how the post-process program block binding is resolved: reflect or fixed")
	fs.Uint32Var((*uint32)(&cfg.PostProcess.Binding), "postprocess-binding", uint32(cfg.PostProcess.Binding), "the post-process program binding point for the reflect strategy")
	fs.BoolVar(&cfg.Interleaved, "interleaved", cfg.Interleaved, "upload the triangle with interleaved vertex attributes")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "soft backend: the number of frames to draw; 0 runs until interrupted")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "soft backend: fixed seconds per frame; 0 uses the wall clock")
	fs.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "soft backend: the image `file` to save the last frame to")
	fs.BoolVar(&cfg.VeryVerbose, "vv", cfg.VeryVerbose, "print debug messages")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print verbose messages")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "only print errors")
	return fs
}

// Load returns the config made from the defaults, then the config file
// named by the --config flag if any, then the other flags in args.
// It returns pflag.ErrHelp when help was requested.
func Load(name string, args []string) (*Config, error) {
	cfg, err := New()
	if err != nil {
		return nil, err
	}
	fs := cfg.FlagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		// the file overrides the defaults, and the flags override the file
		set := map[string]string{}
		fs.Visit(func(f *pflag.Flag) {
			set[f.Name] = f.Value.String()
		})
		if err := cfg.Open(cfg.File); err != nil {
			return nil, err
		}
		fs.Visit(func(f *pflag.Flag) {
			errors.Log(f.Value.Set(set[f.Name]))
		})
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
