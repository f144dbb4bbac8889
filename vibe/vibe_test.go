package vibe

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestPulse(t *testing.T) {
	c := qt.New(t)
	pin := &gpiotest.Pin{N: "GPIO18", L: gpio.High}
	m, err := New(pin)
	c.Assert(err, qt.IsNil)
	c.Assert(pin.Read(), qt.Equals, gpio.Low)

	m.Pulse(10 * time.Millisecond)
	c.Assert(pin.Read(), qt.Equals, gpio.High)
	deadline := time.Now().Add(5 * time.Second)
	for pin.Read() == gpio.High {
		if time.Now().After(deadline) {
			c.Fatal("motor still running")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHalt(t *testing.T) {
	c := qt.New(t)
	pin := &gpiotest.Pin{N: "GPIO18"}
	m, err := New(pin)
	c.Assert(err, qt.IsNil)
	m.LongPulse()
	c.Assert(pin.Read(), qt.Equals, gpio.High)
	c.Assert(m.Halt(), qt.IsNil)
	c.Assert(pin.Read(), qt.Equals, gpio.Low)
}

func TestNil(t *testing.T) {
	c := qt.New(t)
	m, err := Open("")
	c.Assert(err, qt.IsNil)
	c.Assert(m, qt.IsNil)
	m.Pulse(time.Second)
	c.Assert(m.Halt(), qt.IsNil)
}
