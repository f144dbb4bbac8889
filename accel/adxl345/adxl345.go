// Package adxl345 reads an Analog Devices ADXL345 3-axis accelerometer
// over I²C.
package adxl345

import (
	"encoding/binary"
	"fmt"

	"flipface.dev/accel"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// DefaultAddr is the address with the ALT ADDRESS pin grounded.
const DefaultAddr = 0x53

const (
	regDevID      = 0x00
	regBWRate     = 0x2c
	regPowerCtl   = 0x2d
	regDataFormat = 0x31
	regDataX0     = 0x32

	devID = 0xe5

	rate25Hz   = 0x08
	fullRes    = 0x08
	measureBit = 0x08
)

// Dev is an ADXL345 configured for 25 Hz, full resolution ±2g.
type Dev struct {
	dev    *i2c.Dev
	closer func() error
}

// Open initializes the host drivers and opens the device on the named
// bus. An empty name selects the first bus.
func Open(bus string, addr uint16) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("adxl345: %w", err)
	}
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("adxl345: %w", err)
	}
	d, err := New(b, addr)
	if err != nil {
		b.Close()
		return nil, err
	}
	d.closer = b.Close
	return d, nil
}

func New(b i2c.Bus, addr uint16) (*Dev, error) {
	d := &Dev{dev: &i2c.Dev{Bus: b, Addr: addr}}
	var id [1]byte
	if err := d.dev.Tx([]byte{regDevID}, id[:]); err != nil {
		return nil, fmt.Errorf("adxl345: %w", err)
	}
	if id[0] != devID {
		return nil, fmt.Errorf("adxl345: unexpected device id %#x", id[0])
	}
	for _, w := range [][2]byte{
		{regBWRate, rate25Hz},
		{regDataFormat, fullRes},
		{regPowerCtl, measureBit},
	} {
		if err := d.dev.Tx(w[:], nil); err != nil {
			return nil, fmt.Errorf("adxl345: %w", err)
		}
	}
	return d, nil
}

// Read returns the current acceleration in milli-g.
func (d *Dev) Read() (accel.Sample, error) {
	var buf [6]byte
	if err := d.dev.Tx([]byte{regDataX0}, buf[:]); err != nil {
		return accel.Sample{}, fmt.Errorf("adxl345: %w", err)
	}
	return accel.Sample{
		X: toMilliG(buf[0:2]),
		Y: toMilliG(buf[2:4]),
		Z: toMilliG(buf[4:6]),
	}, nil
}

// toMilliG converts a full resolution reading at 3.9 mg/LSB.
func toMilliG(b []byte) int16 {
	raw := int32(int16(binary.LittleEndian.Uint16(b)))
	return int16(raw * 39 / 10)
}

// Halt puts the device in standby and releases the bus if Open
// acquired it.
func (d *Dev) Halt() error {
	err := d.dev.Tx([]byte{regPowerCtl, 0}, nil)
	if d.closer != nil {
		if cerr := d.closer(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("adxl345: %w", err)
	}
	return nil
}
