//go:build tinygo

package main

import (
	"image"
	"image/color"
	"image/draw"
	"machine"
	"time"

	"flipface.dev/accel"
	"flipface.dev/gui"
	"flipface.dev/image/rgb565"
	"tinygo.org/x/drivers/adxl345"
	"tinygo.org/x/drivers/sharpmem"
)

var (
	lcdSPI  = machine.SPI0
	lcdCS   = machine.D10
	vibePin = machine.D9
)

const vibeDuration = 500 * time.Millisecond

type Platform struct {
	svc   *accel.Service
	vibe  machine.Pin
	timer *time.Timer
}

func Init() (*Platform, gui.LCD, error) {
	err := lcdSPI.Configure(machine.SPIConfig{
		Frequency: 2000000,
		SCK:       machine.SPI0_SCK_PIN,
		SDO:       machine.SPI0_SDO_PIN,
		SDI:       machine.SPI0_SDI_PIN,
		Mode:      0,
		LSBFirst:  true,
	})
	if err != nil {
		return nil, nil, err
	}
	lcdCS.Configure(machine.PinConfig{Mode: machine.PinOutput})
	disp := sharpmem.New(lcdSPI, lcdCS)
	cfg := sharpmem.ConfigLS013B7DH05
	disp.Configure(cfg)
	if err := disp.Clear(); err != nil {
		return nil, nil, err
	}
	l := &memLCD{
		dev: &disp,
		fb:  rgb565.New(image.Rect(0, 0, int(cfg.Width), int(cfg.Height))),
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{}); err != nil {
		return nil, nil, err
	}
	sensor := adxl345.New(machine.I2C0)
	sensor.Configure()
	sensor.SetRate(adxl345.RATE_25HZ)

	vibePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	vibePin.Low()
	p := &Platform{
		svc:  accel.NewService(&sensorSource{dev: &sensor}),
		vibe: vibePin,
	}
	return p, l, nil
}

func (p *Platform) Now() time.Time {
	return time.Now()
}

func (p *Platform) Subscribe(n int, ch chan<- []accel.Sample) error {
	return p.svc.Subscribe(n, ch)
}

func (p *Platform) Unsubscribe() {
	p.svc.Unsubscribe()
}

func (p *Platform) Vibrate() {
	if p.timer != nil {
		p.timer.Stop()
	}
	p.vibe.High()
	p.timer = time.AfterFunc(vibeDuration, p.vibe.Low)
}

// sensorSource adapts the ADXL345 driver to accel.Source.
type sensorSource struct {
	dev *adxl345.Device
}

func (s *sensorSource) Read() (accel.Sample, error) {
	x, y, z, err := s.dev.ReadAcceleration()
	if err != nil {
		return accel.Sample{}, err
	}
	// The driver reports micro-g.
	return accel.Sample{
		X: int16(x / 1000),
		Y: int16(y / 1000),
		Z: int16(z / 1000),
	}, nil
}

// memLCD renders the rgb565 framebuffer onto the 1-bit memory display.
type memLCD struct {
	dev *sharpmem.Device
	fb  *rgb565.Image
}

func (l *memLCD) Framebuffer() draw.RGBA64Image {
	return l.fb
}

// The driver treats opaque black as a reflective (light) pixel.
var (
	light = color.RGBA{A: 255}
	dark  = color.RGBA{R: 255, A: 255}
)

func (l *memLCD) Dirty(sr image.Rectangle) error {
	sr = sr.Intersect(l.fb.Rect)
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			c := dark
			if rgb565.Luma(l.fb.Pix[l.fb.PixOffset(x, y)]) >= 0x80 {
				c = light
			}
			l.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	return l.dev.Display()
}
