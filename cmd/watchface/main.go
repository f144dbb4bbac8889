//go:build !tinygo

// Command watchface shows the time in words and flips the logo when the
// wrist is turned.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"flipface.dev/config"
	"flipface.dev/gui"
)

// Version is set by the Go linker with -ldflags='-X main.Version=...'.
var Version string

var (
	cfgPath = flag.String("config", "flipface.yaml", "configuration file")
	debug   = flag.Bool("debug", false, "log frame timings")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "watchface: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if Version != "" {
		log.Printf("watchface %s", Version)
	}
	p, lcd, err := Init(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("watchface: %v", err)
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	app := gui.NewApp(p, lcd)
	app.Debug = cfg.Debug || *debug
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
