// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/glskel/glskel/base/imagex"
	"github.com/glskel/glskel/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSoft(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "frame.png")
	code := run([]string{"--backend=soft", "--width=32", "--height=32", "--frames=2", "--step=0.1", "--snapshot", fn, "-q"})
	require.Equal(t, pipeline.ExitSuccess, code)
	img, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

	code = run([]string{"--backend=soft", "--width=16", "--height=16", "--interleaved", "--render-strategy=fixed", "-q"})
	assert.Equal(t, pipeline.ExitSuccess, code)
}

func TestRunExitCodes(t *testing.T) {
	assert.Equal(t, pipeline.ExitConfig, run([]string{"--backend", "vulkan"}))
	assert.Equal(t, pipeline.ExitConfig, run([]string{"--frames=-1"}))
	assert.Equal(t, pipeline.ExitConfig, run([]string{"--config", "missing.toml"}))
	assert.Equal(t, pipeline.ExitSuccess, run([]string{"--help"}))
}
