//go:build tinygo

// Command watchface shows the time in words and flips the logo when the
// wrist is turned.
package main

import (
	"context"
	"log"
	"runtime"
	"time"

	"flipface.dev/gui"
)

// Version is set by the Go linker with -ldflags='-X main.Version=...'.
var Version string

// Epoch is the wall clock at boot in Unix seconds, set with
// -ldflags='-X main.Epoch=...'. The board has no real time clock, so
// without it the face starts at 1970.
var Epoch string

func main() {
	// Give a serial console time to attach.
	time.Sleep(time.Second)
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	if Version != "" {
		log.Printf("watchface %s", Version)
	}
	if Epoch != "" {
		off, err := clockOffset(Epoch, time.Now())
		if err != nil {
			log.Fatalf("watchface: %v", err)
		}
		runtime.AdjustTimeOffset(int64(off))
	} else {
		log.Printf("watchface: clock not set")
	}
	p, lcd, err := Init()
	if err != nil {
		log.Fatalf("watchface: %v", err)
	}
	app := gui.NewApp(p, lcd)
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("watchface: %v", err)
	}
}
