// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the glskel command:
// defaults from struct tags, an optional TOML or YAML file, and
// command-line flags, in increasing order of precedence.
package config

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/pipeline"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Backends are the devices that can run the pipeline.
type Backends int32

const (
	// BackendGL is an OpenGL 4.5 core context in a glfw window.
	BackendGL Backends = iota

	// BackendSoft is the headless software device.
	BackendSoft
)

var backendNames = [...]string{"gl", "soft"}

func (bk Backends) String() string {
	if bk >= 0 && int(bk) < len(backendNames) {
		return backendNames[bk]
	}
	return fmt.Sprintf("Backends(%d)", int32(bk))
}

// Set sets the backend from its name.
func (bk *Backends) Set(s string) error {
	for i, nm := range backendNames {
		if strings.EqualFold(s, nm) {
			*bk = Backends(i)
			return nil
		}
	}
	return fmt.Errorf("invalid backend %q: must be one of %s", s, strings.Join(backendNames[:], ", "))
}

// Type returns the type name shown in flag usage.
func (bk *Backends) Type() string { return "backend" }

func (bk Backends) MarshalText() ([]byte, error) { return []byte(bk.String()), nil }

func (bk *Backends) UnmarshalText(text []byte) error { return bk.Set(string(text)) }

// Program is the uniform block binding configuration of one program.
type Program struct {

	// how the binding point of the shared parameter block is resolved
	Strategy pipeline.BindingStrategy `toml:"strategy" yaml:"strategy"`

	// the binding point assigned by the reflect strategy; the fixed
	// strategy uses the binding in the shader layout instead
	Binding gpu.BindingPoint `toml:"binding" yaml:"binding"`
}

// Config is the configuration of the glskel command.
type Config struct {

	// the TOML or YAML file to read the configuration from
	File string `toml:"-" yaml:"-"`

	// the width of the window and of the offscreen target
	Width int `default:"1024" toml:"width" yaml:"width"`

	// the height of the window and of the offscreen target
	Height int `default:"1024" toml:"height" yaml:"height"`

	// the title of the window
	Title string `default:"glskel" toml:"title" yaml:"title"`

	// the number of screen refreshes to wait for between frames
	SwapInterval int `default:"1" toml:"swap_interval" yaml:"swap_interval"`

	// the device to render with
	Backend Backends `default:"gl" toml:"backend" yaml:"backend"`

	// the binding of the render program
	Render Program `default:"{'Strategy':'reflect','Binding':3}" toml:"render" yaml:"render"`

	// the binding of the post-process program
	PostProcess Program `default:"{'Strategy':'fixed','Binding':4}" toml:"postprocess" yaml:"postprocess"`

	// whether to upload the triangle with interleaved vertex attributes
	Interleaved bool `toml:"interleaved" yaml:"interleaved"`

	// soft backend: the number of frames to draw before closing; 0 runs until interrupted
	Frames int `default:"1" toml:"frames" yaml:"frames"`

	// soft backend: fixed seconds per frame; 0 uses the wall clock
	Step float64 `toml:"step" yaml:"step"`

	// soft backend: the image file to save the last frame to
	Snapshot string `toml:"snapshot" yaml:"snapshot"`

	// print debug messages
	VeryVerbose bool `toml:"-" yaml:"-"`

	// print verbose messages
	Verbose bool `toml:"-" yaml:"-"`

	// only print errors
	Quiet bool `toml:"-" yaml:"-"`
}

// New returns a new config with the default values.
func New() (*Config, error) {
	cfg := &Config{}
	if err := SetFromDefaultTags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Open reads the config file, with the format given by its extension:
// .toml, or .yaml / .yml. Fields absent from the file are left as they
// are, and unknown fields are an error.
func (cfg *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if err != nil && len(bytes.TrimSpace(b)) == 0 {
			err = nil
		}
	default:
		return fmt.Errorf("config.Open: %s: unsupported file extension %q", filename, ext)
	}
	if err != nil {
		return fmt.Errorf("config.Open: %s: %w", filename, err)
	}
	return nil
}

// Validate checks that the values are usable.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	case cfg.Frames < 0:
		return fmt.Errorf("invalid frame count %d", cfg.Frames)
	case cfg.Step < 0:
		return fmt.Errorf("invalid step %g", cfg.Step)
	case cfg.Backend < BackendGL || cfg.Backend > BackendSoft:
		return fmt.Errorf("invalid backend %v", cfg.Backend)
	}
	return nil
}

// Size returns the surface size.
func (cfg *Config) Size() image.Point {
	return image.Pt(cfg.Width, cfg.Height)
}

// Options returns the frame scheduler options.
func (cfg *Config) Options() pipeline.Options {
	return pipeline.Options{
		Size:        cfg.Size(),
		Render:      pipeline.ProgramOptions{Strategy: cfg.Render.Strategy, Binding: cfg.Render.Binding},
		PostProcess: pipeline.ProgramOptions{Strategy: cfg.PostProcess.Strategy, Binding: cfg.PostProcess.Binding},
		Interleaved: cfg.Interleaved,
	}
}
