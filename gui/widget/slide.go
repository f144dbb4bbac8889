package widget

import (
	"image"
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"

	"flipface.dev/gui/op"
	"flipface.dev/gui/text"
)

const (
	// SlideFPS is the rate at which Step must be called during a
	// transition.
	SlideFPS = 30
	// slideFrequency settles a critically damped spring within
	// about 400ms.
	slideFrequency = 20.0
)

// Slide is a line of text that changes by sliding the old text out
// to the left while the new text follows it in from the right.
type Slide struct {
	// Distance is the width traveled by a transition.
	Distance int

	cur, next string
	active    bool
	pos, vel  float64
	spring    harmonica.Spring
}

func NewSlide(distance int) *Slide {
	return &Slide{
		Distance: distance,
		spring:   harmonica.NewSpring(harmonica.FPS(SlideFPS), slideFrequency, 1.0),
	}
}

// Text returns the text the line shows or is sliding towards.
func (s *Slide) Text() string {
	if s.active {
		return s.next
	}
	return s.cur
}

// Set starts a transition to txt and reports whether it did. A running
// transition is completed first.
func (s *Slide) Set(txt string) bool {
	if txt == s.Text() {
		return false
	}
	s.finish()
	s.next = txt
	s.active = true
	return true
}

// Animating reports whether a transition is running.
func (s *Slide) Animating() bool {
	return s.active
}

// Step advances a running transition by one frame and reports whether
// it is still running.
func (s *Slide) Step() bool {
	if !s.active {
		return false
	}
	target := float64(s.Distance)
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	if math.Abs(target-s.pos) < 0.5 {
		s.finish()
	}
	return s.active
}

func (s *Slide) finish() {
	if s.active {
		s.cur = s.next
	}
	s.next = ""
	s.active = false
	s.pos, s.vel = 0, 0
}

// Offset returns the horizontal offset of the current text. The next
// text is Distance to the right of it.
func (s *Slide) Offset() int {
	return -int(math.Round(s.pos))
}

// Layout draws the line clipped to r.
func (s *Slide) Layout(ops op.Ctx, st text.Style, col color.NRGBA, r image.Rectangle) {
	line := func(txt string, x int) {
		if txt == "" {
			return
		}
		m := ops.Begin()
		Label(m, st, r.Dx(), col, txt)
		c := m.End()
		op.ClipOp(r).Add(ops)
		op.Position(ops, c, r.Min.Add(image.Pt(x, 0)))
	}
	off := s.Offset()
	line(s.cur, off)
	if s.active {
		line(s.next, off+s.Distance)
	}
}
