// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/pipeline"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 1024, cfg.Height)
	assert.Equal(t, "glskel", cfg.Title)
	assert.Equal(t, 1, cfg.SwapInterval)
	assert.Equal(t, BackendGL, cfg.Backend)
	assert.Equal(t, Program{Strategy: pipeline.Reflect, Binding: 3}, cfg.Render)
	assert.Equal(t, Program{Strategy: pipeline.Fixed, Binding: 4}, cfg.PostProcess)
	assert.Equal(t, 1, cfg.Frames)
	assert.False(t, cfg.Interleaved)
	assert.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, pipeline.DefaultOptions(image.Pt(1024, 1024)), opts)
}

func TestSetFromDefaultTags(t *testing.T) {
	type inner struct {
		F float32 `default:"0.5"`
	}
	type obj struct {
		S  string  `default:"x"`
		I  int8    `default:"-3"`
		U  uint16  `default:"0x10"`
		B  bool    `default:"true"`
		In inner
		L  []int   `default:"[1, 2]"`
		N  int
	}
	var o obj
	require.NoError(t, SetFromDefaultTags(&o))
	assert.Equal(t, obj{S: "x", I: -3, U: 16, B: true, In: inner{F: 0.5}, L: []int{1, 2}}, o)

	type bad struct {
		I int `default:"one"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
	assert.Error(t, SetFromDefaultTags(bad{}))
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load("glskel", []string{"--width", "64", "--height=32", "--backend", "soft",
		"--render-strategy", "fixed", "--postprocess-strategy", "reflect", "--postprocess-binding", "7",
		"--interleaved", "--frames", "3", "--step", "0.25", "-v"})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(64, 32), cfg.Size())
	assert.Equal(t, BackendSoft, cfg.Backend)
	assert.Equal(t, pipeline.Fixed, cfg.Render.Strategy)
	assert.Equal(t, gpu.BindingPoint(3), cfg.Render.Binding)
	assert.Equal(t, Program{Strategy: pipeline.Reflect, Binding: 7}, cfg.PostProcess)
	assert.True(t, cfg.Interleaved)
	assert.Equal(t, 3, cfg.Frames)
	assert.Equal(t, 0.25, cfg.Step)
	assert.True(t, cfg.Verbose)

	_, err = Load("glskel", []string{"--backend", "vulkan"})
	assert.Error(t, err)
	_, err = Load("glskel", []string{"--width", "0"})
	assert.Error(t, err)
	_, err = Load("glskel", []string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestLoadTOML(t *testing.T) {
	fn := writeFile(t, "glskel.toml", `
width = 128
title = "from file"
backend = "soft"
interleaved = true

[postprocess]
strategy = "reflect"
binding = 9
`)
	cfg, err := Load("glskel", []string{"--config", fn, "--width", "256"})
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 1024, cfg.Height)
	assert.Equal(t, "from file", cfg.Title)
	assert.Equal(t, BackendSoft, cfg.Backend)
	assert.True(t, cfg.Interleaved)
	assert.Equal(t, Program{Strategy: pipeline.Reflect, Binding: 9}, cfg.PostProcess)
	assert.Equal(t, Program{Strategy: pipeline.Reflect, Binding: 3}, cfg.Render)

	fn = writeFile(t, "bad.toml", "widht = 3\n")
	_, err = Load("glskel", []string{"-c", fn})
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	fn := writeFile(t, "glskel.yaml", `
height: 48
swap_interval: 0
render:
  strategy: fixed
`)
	cfg, err := Load("glskel", []string{"-c", fn, "--swap-interval", "2"})
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, 2, cfg.SwapInterval)
	assert.Equal(t, pipeline.Fixed, cfg.Render.Strategy)
	assert.Equal(t, gpu.BindingPoint(3), cfg.Render.Binding)

	fn = writeFile(t, "bad.yml", "backend: metal\n")
	_, err = Load("glskel", []string{"-c", fn})
	assert.Error(t, err)

	fn = writeFile(t, "empty.yml", "")
	_, err = Load("glskel", []string{"-c", fn})
	assert.NoError(t, err)

	fn = writeFile(t, "glskel.json", "{}")
	_, err = Load("glskel", []string{"-c", fn})
	assert.Error(t, err)
}
