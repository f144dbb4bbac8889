package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	const doc = `
debug: true
display:
  driver: png
  dump: /tmp/frames
accel:
  driver: replay
  addr: 0x1d
vibe:
  pin: ""
`
	c, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if !c.Debug || c.Display.Driver != "png" || c.Display.Dump != "/tmp/frames" {
		t.Errorf("display settings not decoded: %+v", c)
	}
	if c.Accel.Driver != "replay" || c.Accel.Addr != 0x1d {
		t.Errorf("accel settings not decoded: %+v", c.Accel)
	}
	if c.Display.Width != 240 || c.Accel.Baud != 115200 {
		t.Errorf("defaults lost: %+v", c)
	}
	if c.Vibe.Pin != "" {
		t.Errorf("vibe pin = %q, want disabled", c.Vibe.Pin)
	}
}

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if c.Display.Driver != "st7789" {
		t.Errorf("empty document did not yield defaults: %+v", c)
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name, doc string
	}{
		{"display driver", "display:\n  driver: vga\n"},
		{"accel driver", "accel:\n  driver: gyro\n"},
		{"size", "display:\n  width: 0\n"},
		{"baud", "accel:\n  baud: -1\n"},
		{"location", "location: Nowhere/Special\n"},
		{"unknown field", "colour: red\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(test.doc)); err == nil {
				t.Errorf("%q decoded without error", test.doc)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Accel.Addr != 0x53 {
		t.Errorf("missing file did not yield defaults: %+v", c.Accel)
	}
}
