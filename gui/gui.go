// Package gui implements the watch face user interface.
package gui

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"flipface.dev/accel"
	"flipface.dev/gui/op"
	"flipface.dev/gui/widget"
	"flipface.dev/sprite"
)

type Platform interface {
	Now() time.Time
	// Subscribe starts delivering batches of n accelerometer samples
	// to ch.
	Subscribe(n int, ch chan<- []accel.Sample) error
	Unsubscribe()
	// Vibrate gives haptic feedback without blocking.
	Vibrate()
}

type LCD interface {
	Framebuffer() draw.RGBA64Image
	Dirty(sr image.Rectangle) error
}

// App runs the watch face. All events are handled by the goroutine
// calling Frame.
type App struct {
	Debug bool

	pl      Platform
	lcd     LCD
	root    op.Ops
	styles  Styles
	face    *Face
	samples chan []accel.Sample

	minute *time.Timer
	tick   <-chan time.Time
	redraw <-chan time.Time
}

const redrawDelay = time.Second / widget.SlideFPS

func NewApp(pl Platform, lcd LCD) *App {
	a := &App{
		pl:      pl,
		lcd:     lcd,
		styles:  NewStyles(),
		face:    NewFace(),
		samples: make(chan []accel.Sample, 1),
	}
	now := pl.Now()
	a.face.Clock(now)
	a.minute = time.NewTimer(untilNextMinute(now))
	a.subscribe()
	a.draw()
	return a
}

func untilNextMinute(t time.Time) time.Duration {
	return t.Truncate(time.Minute).Add(time.Minute).Sub(t)
}

func (a *App) subscribe() {
	if err := a.pl.Subscribe(accel.DefaultBatch, a.samples); err != nil {
		log.Printf("accel: %v", err)
	}
}

// Run calls Frame until ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.pl.Unsubscribe()
	defer a.minute.Stop()
	for {
		if err := a.Frame(ctx); err != nil {
			return err
		}
	}
}

// Frame waits for the next event, handles it and draws the result.
func (a *App) Frame(ctx context.Context) error {
	var e Event
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.minute.C:
		now := a.pl.Now()
		a.minute.Reset(untilNextMinute(now))
		e = ClockEvent{Time: now}.Event()
	case s := <-a.samples:
		e = AccelEvent{Samples: s}.Event()
	case <-a.tick:
		a.tick = nil
		e = TickEvent{}.Event()
	case <-a.redraw:
		a.redraw = nil
		e = RedrawEvent{}.Event()
	}
	start := time.Now()
	if !a.handle(e) {
		return nil
	}
	a.draw()
	if a.Debug {
		log.Printf("frame: %v %v", time.Since(start), e)
	}
	return nil
}

// handle dispatches an event and reports whether the face changed.
func (a *App) handle(e Event) bool {
	if e, ok := e.AsClock(); ok {
		a.face.Clock(e.Time)
		return true
	}
	if e, ok := e.AsAccel(); ok {
		if !a.face.Flip(e.Samples) {
			return false
		}
		log.Printf("flip: animating")
		a.pl.Unsubscribe()
		// Drop a batch delivered before the sampler stopped.
		select {
		case <-a.samples:
		default:
		}
		a.pl.Vibrate()
		a.tick = time.After(sprite.Delay)
		return false
	}
	if _, ok := e.AsTick(); ok {
		if !a.face.Tick() {
			a.subscribe()
			return false
		}
		a.tick = time.After(sprite.Delay)
		return true
	}
	if _, ok := e.AsRedraw(); ok {
		a.face.Step()
		return true
	}
	return false
}

func (a *App) draw() {
	ops := a.root.Reset()
	frame := a.lcd.Framebuffer()
	if a.face.Layout(ops, &a.styles, frame.Bounds()) && a.redraw == nil {
		a.redraw = time.After(redrawDelay)
	}
	dirty := a.root.Draw(frame)
	if dirty.Empty() {
		return
	}
	if err := a.lcd.Dirty(dirty); err != nil {
		log.Printf("lcd: %v", err)
		// The panel may hold a partial frame.
		a.root.Invalidate()
	}
}

func mustFace(fnt *sfnt.Font, ppem int) font.Face {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(ppem),
		DPI:     72, // Size is in pixels.
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}

func rgb(c uint32) color.NRGBA {
	return color.NRGBA{A: 0xff, R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
