package lcd

import (
	"bytes"
	"image"
	"image/color"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestST7789Dirty(t *testing.T) {
	sleep = func(time.Duration) {}
	defer func() { sleep = time.Sleep }()

	port := new(spitest.Record)
	dc, rst, bl := &gpiotest.Pin{N: "DC"}, &gpiotest.Pin{N: "RST"}, &gpiotest.Pin{N: "BL"}
	l, err := NewST7789(port, dc, rst, bl, image.Pt(240, 240))
	if err != nil {
		t.Fatal(err)
	}
	if bl.Read() != gpio.Low {
		t.Error("backlight on before first frame")
	}
	setup := len(port.Ops)
	l.Framebuffer().Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	if err := l.Dirty(image.Rect(0, 0, 2, 1)); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{
		{0x2a}, {0, 0, 0, 1},
		{0x2b}, {0, 0, 0, 0},
		{0x2c},
		{0xf8, 0x00, 0x00, 0x00},
	}
	got := port.Ops[setup:]
	if len(got) != len(want) {
		t.Fatalf("got %d transfers, want %d", len(got), len(want))
	}
	for i, w := range want {
		if !bytes.Equal(got[i].W, w) {
			t.Errorf("transfer %d: got %x, want %x", i, got[i].W, w)
		}
	}
	if bl.Read() != gpio.High {
		t.Error("backlight off after first frame")
	}

	// Same window, only RAMWR and pixels.
	n := len(port.Ops)
	if err := l.Dirty(image.Rect(0, 0, 2, 1)); err != nil {
		t.Fatal(err)
	}
	if got := len(port.Ops) - n; got != 2 {
		t.Errorf("redraw of same window took %d transfers", got)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestST7789LargeBlit(t *testing.T) {
	sleep = func(time.Duration) {}
	defer func() { sleep = time.Sleep }()

	port := new(spitest.Record)
	l, err := NewST7789(port, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, image.Pt(240, 240))
	if err != nil {
		t.Fatal(err)
	}
	n := len(port.Ops)
	if err := l.Dirty(l.Framebuffer().Bounds()); err != nil {
		t.Fatal(err)
	}
	total := 0
	// Skip window commands.
	for _, op := range port.Ops[n+5:] {
		if len(op.W) > 4096 {
			t.Errorf("transfer of %d bytes exceeds the buffer", len(op.W))
		}
		total += len(op.W)
	}
	if want := 240 * 240 * 2; total != want {
		t.Errorf("transferred %d bytes, want %d", total, want)
	}
}
