// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	level := slog.LevelInfo
	lg := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: &level}))

	lg.Debug("hidden")
	lg.Info("compiled", "stage", "render.vert", "binding", 3)
	lg.With("program", "render").WithGroup("block").Warn("missing", "name", "ViewportUniforms")
	lg.Error("failed", "log", "0:4(16): error: x")

	// a buffer is not a terminal, so there are no color sequences
	assert.Equal(t, "INFO compiled stage=render.vert binding=3\n"+
		"WARN missing program=render block.name=ViewportUniforms\n"+
		"ERROR failed log=\"0:4(16): error: x\"\n", buf.String())

	buf.Reset()
	level = slog.LevelDebug
	lg.Debug("shown")
	assert.Equal(t, "DEBUG shown\n", buf.String())
}

func TestPrintln(t *testing.T) {
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	defer func() { stderr = old }()

	PrintlnError("link failed: ", 5)
	PrintlnSuccess("done")
	assert.Equal(t, "link failed: 5\ndone\n", buf.String())
	assert.Equal(t, "x", CmdColor("x"))
}

func TestDefaultLogger(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	UserLevel = slog.LevelError
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}
