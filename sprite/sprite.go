// Package sprite drives the frame-by-frame logo animation.
package sprite

import (
	"image"
	"time"
)

const (
	// NumFrames is the number of frames in the logo animation.
	NumFrames = 15
	// Delay between two ticks.
	Delay = 8 * time.Millisecond
)

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		panic("invalid direction")
	}
}

// Driver is the animation state. The caller owns the timer: it schedules
// a tick Delay after a successful Start and after every Tick that returns
// true.
type Driver struct {
	Frame   int
	Dir     Direction
	Running bool
}

// Start starts the animation away from the boundary frame it rests on.
// It returns false if the animation is already running.
func (d *Driver) Start() bool {
	if d.Running {
		return false
	}
	if d.Frame >= NumFrames-1 {
		d.Dir = Backward
	}
	if d.Frame == 0 {
		d.Dir = Forward
	}
	d.Running = true
	return true
}

// Tick advances the animation by one frame. It returns true if the new
// frame should be displayed and another tick scheduled, false when the
// animation ran past either end and stopped.
func (d *Driver) Tick() bool {
	if d.Dir == Backward {
		d.Frame--
	} else {
		d.Frame++
	}
	if d.Frame < 0 || d.Frame >= NumFrames {
		d.Frame = min(max(d.Frame, 0), NumFrames-1)
		d.Running = false
		return false
	}
	return true
}

// Origin returns the position of frame in the face. Frames after the
// ninth are shifted down.
func Origin(frame int) image.Point {
	if frame > 8 {
		return image.Pt(17, 8)
	}
	return image.Pt(17, 0)
}
