//go:build !tinygo

package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"flipface.dev/accel"
	"flipface.dev/accel/adxl345"
	"flipface.dev/accel/capture"
	"flipface.dev/accel/stream"
	"flipface.dev/config"
	"flipface.dev/gui"
	"flipface.dev/lcd"
	"flipface.dev/vibe"
)

type Platform struct {
	svc     *accel.Service
	motor   *vibe.Motor
	loc     *time.Location
	closers []func() error
}

func Init(cfg *config.Config) (*Platform, gui.LCD, error) {
	loc, err := cfg.Zone()
	if err != nil {
		return nil, nil, err
	}
	p := &Platform{loc: loc}
	src, err := p.openAccel(cfg)
	if err != nil {
		p.Close()
		return nil, nil, err
	}
	p.svc = accel.NewService(src)
	display, err := p.openDisplay(cfg)
	if err != nil {
		p.Close()
		return nil, nil, err
	}
	// A missing motor is not fatal; the desktop has none.
	motor, err := vibe.Open(cfg.Vibe.Pin)
	if err != nil {
		log.Printf("%v", err)
	} else if motor != nil {
		p.motor = motor
		p.closers = append(p.closers, motor.Halt)
	}
	return p, display, nil
}

func (p *Platform) openAccel(cfg *config.Config) (accel.Source, error) {
	var src accel.Source
	switch d := cfg.Accel.Driver; d {
	case "adxl345":
		dev, err := adxl345.Open(cfg.Accel.Bus, cfg.Accel.Addr)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, dev.Halt)
		src = dev
	case "serial":
		s, err := stream.Open(cfg.Accel.Port, cfg.Accel.Baud)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, s.Close)
		src = s
	case "replay":
		f, err := os.Open(cfg.Accel.Replay)
		if err != nil {
			return nil, fmt.Errorf("accel: %w", err)
		}
		p.closers = append(p.closers, f.Close)
		src = capture.NewReplay(f)
	default:
		return nil, fmt.Errorf("accel: unknown driver %q", d)
	}
	if cfg.Accel.Record == "" {
		return src, nil
	}
	f, err := os.Create(cfg.Accel.Record)
	if err != nil {
		return nil, fmt.Errorf("accel: %w", err)
	}
	rec := capture.NewRecorder(src, f)
	p.closers = append(p.closers, f.Close, rec.Flush)
	return rec, nil
}

func (p *Platform) openDisplay(cfg *config.Config) (gui.LCD, error) {
	dims := image.Pt(cfg.Display.Width, cfg.Display.Height)
	switch d := cfg.Display.Driver; d {
	case "st7789":
		pins := lcd.Pins{
			DC:        cfg.Display.DC,
			Reset:     cfg.Display.Reset,
			Backlight: cfg.Display.Backlight,
		}
		l, err := lcd.OpenST7789(cfg.Display.SPI, pins, dims)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, l.Close)
		return l, nil
	case "fbdev":
		l, err := lcd.OpenFBDev(cfg.Display.Device)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, l.Close)
		return l, nil
	case "png":
		return lcd.NewPNG(cfg.Display.Dump, dims)
	default:
		return nil, fmt.Errorf("lcd: unknown driver %q", d)
	}
}

// Close releases the devices in reverse order of opening.
func (p *Platform) Close() error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

func (p *Platform) Now() time.Time {
	return time.Now().In(p.loc)
}

func (p *Platform) Subscribe(n int, ch chan<- []accel.Sample) error {
	return p.svc.Subscribe(n, ch)
}

func (p *Platform) Unsubscribe() {
	p.svc.Unsubscribe()
}

func (p *Platform) Vibrate() {
	p.motor.LongPulse()
}
