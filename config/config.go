// Package config loads the watch face configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Location string `yaml:"location"`
	Debug    bool   `yaml:"debug"`
	Display  struct {
		Driver    string `yaml:"driver"`
		SPI       string `yaml:"spi"`
		DC        string `yaml:"dc"`
		Reset     string `yaml:"reset"`
		Backlight string `yaml:"backlight"`
		Device    string `yaml:"device"`
		Dump      string `yaml:"dump"`
		Width     int    `yaml:"width"`
		Height    int    `yaml:"height"`
	} `yaml:"display"`
	Accel struct {
		Driver string `yaml:"driver"`
		Bus    string `yaml:"bus"`
		Addr   uint16 `yaml:"addr"`
		Port   string `yaml:"port"`
		Baud   int    `yaml:"baud"`
		Replay string `yaml:"replay"`
		Record string `yaml:"record"`
	} `yaml:"accel"`
	Vibe struct {
		Pin string `yaml:"pin"`
	} `yaml:"vibe"`
}

func Default() *Config {
	c := new(Config)
	c.Location = "Local"
	c.Display.Driver = "st7789"
	c.Display.DC = "GPIO25"
	c.Display.Reset = "GPIO27"
	c.Display.Backlight = "GPIO24"
	c.Display.Device = "/dev/fb0"
	c.Display.Dump = "frames"
	c.Display.Width = 240
	c.Display.Height = 240
	c.Accel.Driver = "adxl345"
	c.Accel.Addr = 0x53
	c.Accel.Port = "/dev/ttyUSB0"
	c.Accel.Baud = 115200
	c.Accel.Replay = "flips.cbor"
	c.Vibe.Pin = "GPIO18"
	return c
}

// Load reads the file at path over the defaults. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML document over the defaults and validates the
// result. Unknown fields are rejected.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.Display.Driver {
	case "st7789", "fbdev", "png":
	default:
		return fmt.Errorf("unknown display driver %q", c.Display.Driver)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", c.Display.Width, c.Display.Height)
	}
	switch c.Accel.Driver {
	case "adxl345", "serial", "replay":
	default:
		return fmt.Errorf("unknown accelerometer driver %q", c.Accel.Driver)
	}
	if c.Accel.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Accel.Baud)
	}
	if _, err := c.Zone(); err != nil {
		return err
	}
	return nil
}

// Zone returns the clock location.
func (c *Config) Zone() (*time.Location, error) {
	return time.LoadLocation(c.Location)
}
