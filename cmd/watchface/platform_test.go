//go:build !tinygo

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"flipface.dev/accel"
	"flipface.dev/config"
	"flipface.dev/lcd"
)

func TestInitSimulated(t *testing.T) {
	dir := t.TempDir()
	replay := filepath.Join(dir, "flips.cbor")
	if err := os.WriteFile(replay, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Location = "UTC"
	cfg.Display.Driver = "png"
	cfg.Display.Dump = filepath.Join(dir, "frames")
	cfg.Accel.Driver = "replay"
	cfg.Accel.Replay = replay
	cfg.Accel.Record = filepath.Join(dir, "rec.cbor")
	cfg.Vibe.Pin = ""
	p, display, err := Init(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := display.(*lcd.PNG); !ok {
		t.Errorf("display is %T, want *lcd.PNG", display)
	}
	if loc := p.Now().Location(); loc != time.UTC {
		t.Errorf("clock location %v, want UTC", loc)
	}
	ch := make(chan []accel.Sample, 1)
	if err := p.Subscribe(accel.DefaultBatch, ch); err != nil {
		t.Fatal(err)
	}
	p.Unsubscribe()
	p.Vibrate()
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.Accel.Record); err != nil {
		t.Errorf("capture file: %v", err)
	}
}

func TestInitUnknownReplay(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Driver = "png"
	cfg.Accel.Driver = "replay"
	cfg.Accel.Replay = filepath.Join(t.TempDir(), "missing.cbor")
	if _, _, err := Init(cfg); err == nil {
		t.Fatal("Init succeeded with a missing replay file")
	}
}
