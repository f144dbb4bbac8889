package gui

import (
	"image"
	"time"

	"flipface.dev/accel"
	"flipface.dev/gesture"
	"flipface.dev/gui/assets"
	"flipface.dev/gui/layout"
	"flipface.dev/gui/op"
	"flipface.dev/gui/widget"
	"flipface.dev/sprite"
	"flipface.dev/words"
)

// FaceSize is the size of the watch face. Larger displays show it
// centered.
var FaceSize = image.Pt(144, 168)

const (
	hoursY        = 114
	hoursHeight   = 40
	minutesY      = 148
	minutesHeight = 30
)

// Face is the state of the watch face: the time as two lines of words
// and the animated logo.
type Face struct {
	Logo sprite.Driver

	hours   *widget.Slide
	minutes *widget.Slide
	last    time.Time
}

func NewFace() *Face {
	return &Face{
		hours:   widget.NewSlide(FaceSize.X),
		minutes: widget.NewSlide(FaceSize.X),
	}
}

// Clock updates the lines that changed since the previous call. The
// first call updates both.
func (f *Face) Clock(t time.Time) {
	first := f.last.IsZero()
	if first || t.Hour() != f.last.Hour() {
		f.hours.Set(words.Hour(t.Hour()))
	}
	if first || t.Minute() != f.last.Minute() {
		f.minutes.Set(words.Minute(t.Minute()))
	}
	f.last = t
}

// Flip starts the logo animation if samples contain a flip gesture and
// the animation is idle.
func (f *Face) Flip(samples []accel.Sample) bool {
	if f.Logo.Running || !gesture.Detect(samples) {
		return false
	}
	return f.Logo.Start()
}

// Tick advances the logo animation and reports whether another tick is
// due.
func (f *Face) Tick() bool {
	return f.Logo.Tick()
}

// Step advances the text transitions and reports whether any is still
// running.
func (f *Face) Step() bool {
	h := f.hours.Step()
	m := f.minutes.Step()
	return h || m
}

// Animating reports whether a text transition is running.
func (f *Face) Animating() bool {
	return f.hours.Animating() || f.minutes.Animating()
}

func (f *Face) Layout(ops op.Ctx, st *Styles, bounds image.Rectangle) bool {
	op.ColorOp(ops, faceTheme.Background)

	pos := layout.Rectangle(bounds).Center(FaceSize)
	r := layout.Rectangle{Min: pos, Max: pos.Add(FaceSize)}

	frame := min(max(f.Logo.Frame, 0), sprite.NumFrames-1)
	op.ClipOp(image.Rectangle(r)).Add(ops)
	op.Offset(ops, pos.Add(sprite.Origin(frame)))
	op.ImageOp(ops, assets.Logo[frame])

	f.hours.Layout(ops, st.hours, faceTheme.Text, image.Rectangle(r.Band(hoursY, hoursHeight)))
	f.minutes.Layout(ops, st.minutes, faceTheme.Text, image.Rectangle(r.Band(minutesY, minutesHeight)))
	return f.Animating()
}
