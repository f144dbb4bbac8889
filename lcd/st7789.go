// Package lcd implements the displays the watch face can draw to.
package lcd

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"flipface.dev/image/rgb565"
)

// ST7789 drives a Sitronix ST7789 display, such as the Waveshare 1.3"
// 240x240 HAT, over SPI.
type ST7789 struct {
	fb        *rgb565.Image
	spi       spi.PortCloser
	conn      spi.Conn
	dc        gpio.PinOut
	rst       gpio.PinOut
	bl        gpio.PinOut
	window    image.Rectangle
	txBuf     []byte
	backlight bool
}

// Pins names the control pins of an ST7789.
type Pins struct {
	DC        string
	Reset     string
	Backlight string
}

var sleep = time.Sleep

// OpenST7789 opens the display on the named SPI port. An empty port
// selects the first available.
func OpenST7789(port string, pins Pins, dims image.Point) (*ST7789, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("lcd: %w", err)
	}
	var gpios [3]gpio.PinOut
	for i, name := range []string{pins.DC, pins.Reset, pins.Backlight} {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("lcd: no pin %q", name)
		}
		gpios[i] = p
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("lcd: %w", err)
	}
	l, err := NewST7789(p, gpios[0], gpios[1], gpios[2], dims)
	if err != nil {
		p.Close()
		return nil, err
	}
	return l, nil
}

func NewST7789(p spi.PortCloser, dc, rst, bl gpio.PinOut, dims image.Point) (*ST7789, error) {
	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("lcd: %w", err)
	}
	l := &ST7789{
		fb:   rgb565.New(image.Rectangle{Max: dims}),
		spi:  p,
		conn: c,
		dc:   dc,
		rst:  rst,
		bl:   bl,
	}
	maxTx := 4096
	if lim, ok := c.(conn.Limits); ok {
		maxTx = lim.MaxTxSize()
	}
	l.txBuf = make([]byte, maxTx&^1)
	if err := l.setup(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *ST7789) Close() error {
	if l.spi == nil {
		return nil
	}
	l.bl.Out(gpio.Low)
	err := l.spi.Close()
	l.spi = nil
	l.conn = nil
	return err
}

func (l *ST7789) sendCommand(cmd byte, data ...byte) error {
	if err := l.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := l.conn.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(data) > 0 {
		if err := l.dc.Out(gpio.High); err != nil {
			return err
		}
		if err := l.conn.Tx(data, nil); err != nil {
			return err
		}
	}
	return nil
}

func (l *ST7789) setup() error {
	for _, p := range []gpio.PinOut{l.rst, l.dc} {
		if err := p.Out(gpio.High); err != nil {
			return fmt.Errorf("lcd: %w", err)
		}
	}

	// Turn off backlight during setup.
	l.bl.Out(gpio.Low)

	// Reset LCD.
	l.rst.Out(gpio.High)
	sleep(100 * time.Millisecond)
	l.rst.Out(gpio.Low)
	sleep(100 * time.Millisecond)
	l.rst.Out(gpio.High)
	sleep(100 * time.Millisecond)

	var cmdErr error
	sendCommand := func(cmd byte, data ...byte) {
		if cmdErr != nil {
			return
		}
		cmdErr = l.sendCommand(cmd, data...)
	}
	sendCommand(0x36 /*MADCTL*/, 0x70 /* MX, MY, RGB mode */)

	sendCommand(0x11 /*SLPOUT*/)
	sleep(120 * time.Millisecond)
	sendCommand(0x3a /*COLMOD*/, 0x05)
	sendCommand(0xb2 /*PORCTRL*/, 0x0c, 0x0c, 0x00, 0x33, 0x33)
	sendCommand(0xb7 /*GCTRL*/, 0x35)
	sendCommand(0xbb /*VCOMS*/, 0x37)
	sendCommand(0xc0 /*LCMCTRL*/, 0x2c)
	sendCommand(0xc2 /*VDVVRHEN*/, 0x01)
	sendCommand(0xc3 /*VRHS*/, 0x12)
	sendCommand(0xc4 /*VDVS*/, 0x20)
	sendCommand(0xc6 /*FRCTRL2*/, 0x0f)
	sendCommand(0xd0 /*PWCTRL1*/, 0xa4, 0xa1)
	sendCommand(0xba /*DGMEN: Enable Gamma*/, 0x04)
	sendCommand(0x21 /*INVON*/)
	sendCommand(0x29 /*DISPON*/)
	if cmdErr != nil {
		return fmt.Errorf("lcd: SPI command: %w", cmdErr)
	}
	return nil
}

func (l *ST7789) Framebuffer() draw.RGBA64Image {
	return l.fb
}

// Dirty transfers the framebuffer content in sr to the display.
func (l *ST7789) Dirty(sr image.Rectangle) error {
	sr = sr.Intersect(l.fb.Bounds())
	if sr.Empty() {
		return nil
	}
	if err := l.setWindow(sr); err != nil {
		return fmt.Errorf("lcd: %w", err)
	}
	if err := l.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("lcd: %w", err)
	}
	// The display expects big endian pixels.
	n := 0
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		off := l.fb.PixOffset(sr.Min.X, y)
		for _, c := range l.fb.Pix[off : off+sr.Dx()] {
			l.txBuf[n], l.txBuf[n+1] = c[1], c[0]
			n += 2
			if n == len(l.txBuf) {
				if err := l.conn.Tx(l.txBuf, nil); err != nil {
					return fmt.Errorf("lcd: blit: %w", err)
				}
				n = 0
			}
		}
	}
	if n > 0 {
		if err := l.conn.Tx(l.txBuf[:n], nil); err != nil {
			return fmt.Errorf("lcd: blit: %w", err)
		}
	}

	// Turn on backlight if necessary.
	if !l.backlight {
		l.bl.Out(gpio.High)
		l.backlight = true
	}
	return nil
}

func (l *ST7789) setWindow(r image.Rectangle) error {
	if l.window == r {
		// RAMWR restarts at the window origin.
		return l.sendCommand(0x2c /* RAMWR */)
	}
	l.window = r

	var cmdErr error
	sendCommand := func(cmd byte, data ...byte) {
		if cmdErr != nil {
			return
		}
		cmdErr = l.sendCommand(cmd, data...)
	}
	sendCommand(0x2a /* CASET */, byte(r.Min.X>>8), byte(r.Min.X), byte((r.Max.X-1)>>8), byte(r.Max.X-1))
	sendCommand(0x2b /* RASET */, byte(r.Min.Y>>8), byte(r.Min.Y), byte((r.Max.Y-1)>>8), byte(r.Max.Y-1))
	sendCommand(0x2c /* RAMWR */)
	return cmdErr
}
