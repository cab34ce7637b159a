// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/glskel/glskel/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawArrays draws count consecutive vertices starting at first.
func (dev *Device) DrawArrays(mode gpu.DrawModes, first, count int) {
	if first < 0 || count < 0 {
		dev.fail("DrawArrays: invalid first %d or count %d", first, count)
		return
	}
	idx := make([]int, count)
	for i := range idx {
		idx[i] = first + i
	}
	dev.draw(mode, idx)
}

// DrawElements draws count vertices whose indexes are read from the
// element buffer of the current vertex array.
func (dev *Device) DrawElements(mode gpu.DrawModes, count int, typ gpu.IndexTypes, offset int) {
	if count < 0 {
		dev.fail("DrawElements: invalid count %d", count)
		return
	}
	idx, ok := dev.indices(count, typ, offset)
	if !ok {
		return
	}
	dev.draw(mode, idx)
}

// winVertex is a vertex after the viewport transform.
type winVertex struct {
	x, y, z float32
	invW    float32
	out     *VertexOut
}

func (dev *Device) draw(mode gpu.DrawModes, idx []int) {
	p := dev.programs[dev.current]
	if p == nil || !p.linked {
		dev.fail("draw: no linked program in use")
		return
	}
	fb := dev.framebuffers[dev.drawFB]
	if dev.CheckFramebufferStatus(dev.drawFB) != gpu.FramebufferComplete {
		dev.fail("draw: framebuffer %d is not complete", dev.drawFB)
		return
	}
	dev.Draws++
	env := &Env{dev: dev, prog: p}

	outs := map[int]*VertexOut{}
	shade := func(index int) *VertexOut {
		if out, ok := outs[index]; ok {
			return out
		}
		var in VertexIn
		out := &VertexOut{}
		dev.fetch(index, &in)
		p.vertex(env, &in, out)
		outs[index] = out
		return out
	}

	var tris [][3]int
	switch mode {
	case gpu.Triangles:
		for i := 0; i+2 < len(idx); i += 3 {
			tris = append(tris, [3]int{idx[i], idx[i+1], idx[i+2]})
		}
	case gpu.TriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				tris = append(tris, [3]int{idx[i], idx[i+1], idx[i+2]})
			} else {
				tris = append(tris, [3]int{idx[i+1], idx[i], idx[i+2]})
			}
		}
	default:
		dev.fail("draw: invalid mode %d", mode)
		return
	}

	clip := dev.viewport.Intersect(image.Rectangle{Max: fb.color.size})
	for _, tri := range tris {
		var wv [3]winVertex
		visible := true
		for k, index := range tri {
			out := shade(index)
			w := out.Position[3]
			if w <= 0 {
				// no clipping against the w = 0 plane
				visible = false
				break
			}
			wv[k] = dev.toWindow(out, w)
		}
		if visible {
			dev.rasterize(env, p, fb.color, clip, wv)
		}
	}
}

func (dev *Device) toWindow(out *VertexOut, w float32) winVertex {
	vp := dev.viewport
	ndc := out.Position.Vec3().Mul(1 / w)
	return winVertex{
		x:    float32(vp.Min.X) + (ndc[0]+1)*float32(vp.Dx())/2,
		y:    float32(vp.Min.Y) + (ndc[1]+1)*float32(vp.Dy())/2,
		z:    (ndc[2] + 1) / 2,
		invW: 1 / w,
		out:  out,
	}
}

// edge is twice the signed area of a, b, p: positive when p is to the
// left of a->b with y up.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeft reports whether the edge a->b of a counter-clockwise triangle
// owns the pixels centred exactly on it.
func topLeft(a, b winVertex) bool {
	return (a.y == b.y && b.x < a.x) || b.y < a.y
}

// rasterize shades the pixels of clip whose centres are covered by the
// triangle. Zero area triangles cover nothing.
func (dev *Device) rasterize(env *Env, p *program, dst *texture, clip image.Rectangle, v [3]winVertex) {
	area := edge(v[0].x, v[0].y, v[1].x, v[1].y, v[2].x, v[2].y)
	if area == 0 {
		return
	}
	if area < 0 {
		v[1], v[2] = v[2], v[1]
		area = -area
	}
	minX := math32.Min(v[0].x, math32.Min(v[1].x, v[2].x))
	maxX := math32.Max(v[0].x, math32.Max(v[1].x, v[2].x))
	minY := math32.Min(v[0].y, math32.Min(v[1].y, v[2].y))
	maxY := math32.Max(v[0].y, math32.Max(v[1].y, v[2].y))
	bb := image.Rect(int(math32.Floor(minX)), int(math32.Floor(minY)), int(math32.Ceil(maxX))+1, int(math32.Ceil(maxY))+1).Intersect(clip)

	owns := [3]bool{topLeft(v[1], v[2]), topLeft(v[2], v[0]), topLeft(v[0], v[1])}
	var in FragmentIn
	for py := bb.Min.Y; py < bb.Max.Y; py++ {
		cy := float32(py) + 0.5
		for px := bb.Min.X; px < bb.Max.X; px++ {
			cx := float32(px) + 0.5
			w := [3]float32{
				edge(v[1].x, v[1].y, v[2].x, v[2].y, cx, cy),
				edge(v[2].x, v[2].y, v[0].x, v[0].y, cx, cy),
				edge(v[0].x, v[0].y, v[1].x, v[1].y, cx, cy),
			}
			inside := true
			for k := 0; k < 3; k++ {
				if w[k] < 0 || (w[k] == 0 && !owns[k]) {
					inside = false
					break
				}
			}
			if !inside {
				continue
			}
			var l [3]float32
			var ps float32
			for k := 0; k < 3; k++ {
				l[k] = w[k] / area
				ps += l[k] * v[k].invW
			}
			z := l[0]*v[0].z + l[1]*v[1].z + l[2]*v[2].z
			in.FragCoord = mgl32.Vec4{cx, cy, z, ps}
			for _, loc := range p.varyings {
				var vy mgl32.Vec4
				for k := 0; k < 3; k++ {
					vy = vy.Add(v[k].out.Varyings[loc].Mul(l[k] * v[k].invW / ps))
				}
				in.Varyings[loc] = vy
			}
			dst.set(px, py, p.fragment(env, &in))
			dev.Fragments++
		}
	}
}
