// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reference

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWobbleAtZero(t *testing.T) {
	vp := mgl32.Vec4{0, 0, 64, 64}

	// even column, even row: no displacement
	assert.Equal(t, mgl32.Vec2{4.5 / 64, 6.5 / 64}, Wobble(mgl32.Vec2{4.5, 6.5}, vp, 0))

	// odd row only gates x, and sin(0) is 0
	assert.Equal(t, mgl32.Vec2{4.5 / 64, 7.5 / 64}, Wobble(mgl32.Vec2{4.5, 7.5}, vp, 0))

	// odd column moves 50 pixels up, since cos(0) is 1
	assert.Equal(t, mgl32.Vec2{5.5 / 64, 56.5 / 64}, Wobble(mgl32.Vec2{5.5, 6.5}, vp, 0))
}

func TestWobbleMoving(t *testing.T) {
	vp := mgl32.Vec4{0, 0, 100, 100}
	tm := float32(0.7)
	uv := Wobble(mgl32.Vec2{3.5, 9.5}, vp, tm)
	assert.InDelta(t, (3.5+math32.Sin(2*tm)*50)/100, uv[0], 1e-5)
	assert.InDelta(t, (9.5+math32.Cos(1.5*tm)*50)/100, uv[1], 1e-5)
}
