// Package vibe drives a vibration motor through a GPIO pin.
package vibe

import (
	"fmt"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// LongDuration is the length of a long pulse.
const LongDuration = 500 * time.Millisecond

// Motor is a vibration motor switched by an output pin. A nil Motor
// ignores all pulses.
type Motor struct {
	pin gpio.PinOut

	mu    sync.Mutex
	timer *time.Timer
}

func New(pin gpio.PinOut) (*Motor, error) {
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("vibe: %w", err)
	}
	return &Motor{pin: pin}, nil
}

// Open resolves the pin by name. An empty name returns a nil Motor.
func Open(name string) (*Motor, error) {
	if name == "" {
		return nil, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("vibe: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("vibe: no pin %q", name)
	}
	return New(p)
}

// Pulse runs the motor for d without blocking. A pulse in progress is
// extended.
func (m *Motor) Pulse(d time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
	}
	if err := m.pin.Out(gpio.High); err != nil {
		log.Printf("vibe: %v", err)
		return
	}
	m.timer = time.AfterFunc(d, m.off)
}

func (m *Motor) LongPulse() {
	m.Pulse(LongDuration)
}

func (m *Motor) off() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.pin.Out(gpio.Low); err != nil {
		log.Printf("vibe: %v", err)
	}
}

// Halt stops the motor.
func (m *Motor) Halt() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
	}
	return m.pin.Out(gpio.Low)
}
