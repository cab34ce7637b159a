// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import "time"

// Surface is a headless presentation surface for a Device. It requests
// close after a fixed number of presented frames.
type Surface struct {
	// Frames is the number of frames presented before ShouldClose
	// reports true. Zero means only Close ends the loop.
	Frames int

	// Step is the fixed clock advance per presented frame, in seconds.
	// Zero uses the monotonic wall clock instead.
	Step float64

	// OnPresent, if set, is called after each frame is presented with
	// the number of frames presented so far.
	OnPresent func(frame int)

	presented int
	closed    bool
	start     time.Time
}

// NewSurface returns a surface that closes after frames presents,
// with a clock advancing step seconds per frame (0 for wall clock).
func NewSurface(frames int, step float64) *Surface {
	return &Surface{Frames: frames, Step: step, start: time.Now()}
}

// Time returns the surface clock in seconds.
func (sf *Surface) Time() float64 {
	if sf.Step > 0 {
		return float64(sf.presented) * sf.Step
	}
	return time.Since(sf.start).Seconds()
}

// ShouldClose reports whether the frame loop should stop.
func (sf *Surface) ShouldClose() bool {
	return sf.closed || (sf.Frames > 0 && sf.presented >= sf.Frames)
}

// Present ends the current frame.
func (sf *Surface) Present() {
	sf.presented++
	if sf.OnPresent != nil {
		sf.OnPresent(sf.presented)
	}
}

// Presented returns the number of frames presented.
func (sf *Surface) Presented() int {
	return sf.presented
}

// Close requests that the frame loop stop at the next frame boundary.
func (sf *Surface) Close() {
	sf.closed = true
}
