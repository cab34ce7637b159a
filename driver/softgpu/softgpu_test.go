// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu_test

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/glskel/glskel/driver/softgpu"
	"github.com/glskel/glskel/gpu"
	"github.com/glskel/glskel/shaders"
	"github.com/glskel/glskel/shaders/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatBytes(fs ...float32) []byte {
	b := make([]byte, 4*len(fs))
	for i, f := range fs {
		binary.NativeEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}

func compile(t *testing.T, dev *softgpu.Device, src shaders.Source) gpu.Shader {
	sh := dev.CreateShader(src.Stage)
	dev.ShaderSource(sh, src.Text)
	ok, log := dev.CompileShader(sh)
	require.True(t, ok, log)
	return sh
}

func link(t *testing.T, dev *softgpu.Device, pair shaders.Pair) (gpu.Program, bool, string) {
	vs := compile(t, dev, pair.Vertex)
	fs := compile(t, dev, pair.Fragment)
	pr := dev.CreateProgram()
	dev.AttachShader(pr, vs)
	dev.AttachShader(pr, fs)
	ok, log := dev.LinkProgram(pr)
	dev.DetachShader(pr, vs)
	dev.DetachShader(pr, fs)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)
	return pr, ok, log
}

func TestCompileError(t *testing.T) {
	dev := softgpu.NewDevice(image.Pt(4, 4))
	src := strings.Replace(shaders.RenderFragment.Text, "fCol = texture2D", "fCol = @texture2D", 1)
	sh := dev.CreateShader(gpu.FragmentShader)
	dev.ShaderSource(sh, src)
	ok, log := dev.CompileShader(sh)
	assert.False(t, ok)

	line := strings.Count(src[:strings.Index(src, "@")], "\n")
	assert.True(t, strings.HasPrefix(log, "0:"+strconv.Itoa(line)+"("), log)

	sh = dev.CreateShader(gpu.VertexShader)
	dev.ShaderSource(sh, "void main() {}\n")
	ok, log = dev.CompileShader(sh)
	assert.False(t, ok)
	assert.Contains(t, log, "#version")
}

func TestLinkNeedsKernels(t *testing.T) {
	dev := softgpu.NewDevice(image.Pt(4, 4))
	_, ok, log := link(t, dev, shaders.Render())
	assert.False(t, ok)
	assert.Contains(t, log, "no kernel registered")

	reference.Install(dev)
	pr, ok, log := link(t, dev, shaders.Render())
	require.True(t, ok, log)
	assert.Equal(t, 0, dev.LiveShaders())

	assert.Equal(t, gpu.BlockIndex(0), dev.UniformBlockIndex(pr, shaders.BlockName))
	assert.Equal(t, gpu.InvalidIndex, dev.UniformBlockIndex(pr, "Missing"))
	bind, ok := dev.BlockBinding(pr, shaders.BlockName)
	assert.True(t, ok)
	assert.Equal(t, gpu.BindingPoint(1), bind)
	dev.UniformBlockBinding(pr, 0, 3)
	bind, _ = dev.BlockBinding(pr, shaders.BlockName)
	assert.Equal(t, gpu.BindingPoint(3), bind)
	assert.NoError(t, dev.ErrCheck("link"))
}

func TestLinkMismatch(t *testing.T) {
	dev := softgpu.NewDevice(image.Pt(4, 4))
	reference.Install(dev)

	// render vertex stage with post-process fragment stage: bindings 1 and 2
	_, ok, log := link(t, dev, shaders.Pair{Vertex: shaders.RenderVertex, Fragment: shaders.PostProcessFragment})
	assert.False(t, ok)
	assert.Contains(t, log, "mismatching bindings")

	// post-process vertex stage writes no v_uv for the render fragment stage
	_, ok, log = link(t, dev, shaders.Pair{Vertex: shaders.PostProcessVertex, Fragment: shaders.RenderFragment})
	assert.False(t, ok)
	assert.Contains(t, log, "v_uv")
}

// drawChecker draws the checkerboard through the render program. With
// the full target triangle, uv = window position / 2 puts every pixel
// centre on a texel centre, so bilinear sampling returns exact texels.
func drawChecker(t *testing.T, dev *softgpu.Device, pos []float32) {
	reference.Install(dev)
	pr, ok, log := link(t, dev, shaders.Render())
	require.True(t, ok, log)

	tex := dev.CreateTexture()
	dev.TextureStorage(tex, 1, gpu.RGBA8, image.Pt(2, 2))
	dev.TextureSubImage(tex, image.Rect(0, 0, 2, 2), []byte{
		0x00, 0x00, 0x00, 0xff,
		0xa0, 0xa0, 0x00, 0xff,
		0x00, 0xa0, 0xa0, 0xff,
		0xff, 0xff, 0xff, 0xff,
	})

	vb := dev.CreateBuffer()
	dev.BufferStorage(vb, floatBytes(pos...), gpu.StaticStorage)
	ub := dev.CreateBuffer()
	dev.BufferStorage(ub, floatBytes(0, 0, 4, 0, 0, 4), gpu.StaticStorage)
	eb := dev.CreateBuffer()
	dev.BufferStorage(eb, []byte{0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0}, gpu.StaticStorage)
	va := dev.CreateVertexArray()
	dev.VertexArrayAttrib(va, 0, vb, 2, 0, 0)
	dev.VertexArrayAttrib(va, 1, ub, 2, 0, 0)
	dev.VertexArrayElementBuffer(va, eb)

	dev.BindFramebuffer(gpu.DefaultFramebuffer)
	dev.Clear(true, true)
	dev.UseProgram(pr)
	dev.ProgramUniformInt(pr, 0, 0)
	dev.BindTextureUnit(0, tex)
	dev.BindVertexArray(va)
	dev.DrawElements(gpu.Triangles, 3, gpu.UnsignedInt, 0)
	require.NoError(t, dev.ErrCheck("draw"))
}

func TestDrawChecker(t *testing.T) {
	dev := softgpu.NewDevice(image.Pt(4, 4))
	drawChecker(t, dev, []float32{-1, -1, 3, -1, -1, 3})
	assert.Equal(t, 1, dev.Draws)
	assert.Equal(t, 16, dev.Fragments)

	fb := gpu.DefaultFramebuffer
	black := color.RGBA{0x00, 0x00, 0x00, 0xff}
	yellow := color.RGBA{0xa0, 0xa0, 0x00, 0xff}
	cyan := color.RGBA{0x00, 0xa0, 0xa0, 0xff}
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	assert.Equal(t, black, dev.Pixel(fb, 0, 0))
	assert.Equal(t, yellow, dev.Pixel(fb, 1, 0))
	assert.Equal(t, cyan, dev.Pixel(fb, 0, 1))
	assert.Equal(t, white, dev.Pixel(fb, 1, 1))
	// repeat wrapping
	assert.Equal(t, black, dev.Pixel(fb, 2, 2))
	assert.Equal(t, yellow, dev.Pixel(fb, 3, 2))
	assert.Equal(t, white, dev.Pixel(fb, 3, 3))

	// snapshots are top row first
	img := dev.Snapshot(fb)
	require.NotNil(t, img)
	assert.Equal(t, cyan, img.RGBAAt(0, 2))
	assert.Equal(t, white, img.RGBAAt(1, 2))
	assert.Equal(t, black, img.RGBAAt(0, 3))
}

func TestDegenerateTriangle(t *testing.T) {
	dev := softgpu.NewDevice(image.Pt(4, 4))
	drawChecker(t, dev, []float32{-0.5, -0.5, 0.5, 0.5, 0, 0})
	assert.Equal(t, 1, dev.Draws)
	assert.Equal(t, 0, dev.Fragments)
	assert.Equal(t, color.RGBA{}, dev.Pixel(gpu.DefaultFramebuffer, 1, 1))
}

func TestBufferRules(t *testing.T) {
	dev := softgpu.NewDevice(image.Pt(4, 4))
	b := dev.CreateBuffer()
	dev.BufferStorage(b, make([]byte, 8), gpu.StaticStorage)
	dev.BufferSubData(b, 0, []byte{1})
	assert.Error(t, dev.ErrCheck("static"))

	d := dev.CreateBuffer()
	dev.BufferStorage(d, make([]byte, 8), gpu.DynamicStorage)
	dev.BufferSubData(d, 4, []byte{1, 2, 3, 4})
	require.NoError(t, dev.ErrCheck("dynamic"))
	got := make([]byte, 4)
	dev.GetBufferSubData(d, 4, got)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	dev.BufferSubData(d, 6, []byte{1, 2, 3, 4})
	assert.Error(t, dev.ErrCheck("overflow"))
}

func TestFramebufferStatus(t *testing.T) {
	dev := softgpu.NewDevice(image.Pt(4, 4))
	fb := dev.CreateFramebuffer()
	assert.Equal(t, gpu.FramebufferIncompleteMissingAttachment, dev.CheckFramebufferStatus(fb))

	tex := dev.CreateTexture()
	dev.FramebufferTexture(fb, 0, tex)
	assert.Equal(t, gpu.FramebufferIncompleteAttachment, dev.CheckFramebufferStatus(fb))

	dev.TextureStorage(tex, 1, gpu.RGBA8, image.Pt(4, 4))
	assert.Equal(t, gpu.FramebufferComplete, dev.CheckFramebufferStatus(fb))
	assert.Equal(t, gpu.FramebufferComplete, dev.CheckFramebufferStatus(gpu.DefaultFramebuffer))
	assert.Equal(t, gpu.FramebufferUndefined, dev.CheckFramebufferStatus(999))

	big := dev.CreateTexture()
	dev.MaxTextureSize = 8
	dev.TextureStorage(big, 1, gpu.RGBA8, image.Pt(16, 16))
	assert.Error(t, dev.ErrCheck("storage"))
}

func TestSurface(t *testing.T) {
	sf := softgpu.NewSurface(3, 0.5)
	var seen []int
	sf.OnPresent = func(frame int) { seen = append(seen, frame) }
	for !sf.ShouldClose() {
		sf.Present()
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 1.5, sf.Time())

	sf = softgpu.NewSurface(0, 0)
	assert.False(t, sf.ShouldClose())
	sf.Close()
	assert.True(t, sf.ShouldClose())
}
