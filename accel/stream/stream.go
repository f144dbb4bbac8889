// Package stream reads accelerometer samples from a line oriented text
// stream, typically a microcontroller forwarding a sensor over a serial
// port. Each line holds one sample as comma separated milli-g values:
//
//	12,-803,40
package stream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/tarm/serial"

	"flipface.dev/accel"
)

// Source is an accel.Source over an io.Reader.
type Source struct {
	r *bufio.Reader
	c io.Closer
	// live sources report a read without data as accel.ErrNoSample
	// instead of the end of the stream.
	live bool
	line []byte
}

func NewSource(r io.Reader) *Source {
	return newSource(r, false)
}

func newSource(r io.Reader, live bool) *Source {
	src := &Source{r: bufio.NewReader(r), live: live}
	if c, ok := r.(io.Closer); ok {
		src.c = c
	}
	return src
}

// Read returns the next sample. Malformed lines are reported as errors
// and skipped by the next call.
func (s *Source) Read() (accel.Sample, error) {
	for {
		frag, err := s.r.ReadSlice('\n')
		s.line = append(s.line, frag...)
		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && s.live:
			// A partial line is completed by the next read.
			return accel.Sample{}, accel.ErrNoSample
		case errors.Is(err, io.EOF):
			if len(bytes.TrimSpace(s.line)) == 0 {
				return accel.Sample{}, io.EOF
			}
		default:
			return accel.Sample{}, fmt.Errorf("stream: %w", err)
		}
		line := strings.TrimSpace(string(s.line))
		s.line = s.line[:0]
		if line == "" {
			continue
		}
		return ParseSample(line)
	}
}

func (s *Source) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}

// ParseSample parses a single "x,y,z" line.
func ParseSample(line string) (accel.Sample, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return accel.Sample{}, fmt.Errorf("stream: %q: expected 3 fields", line)
	}
	var v [3]int16
	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 16)
		if err != nil {
			return accel.Sample{}, fmt.Errorf("stream: %q: %w", line, err)
		}
		v[i] = int16(n)
	}
	return accel.Sample{X: v[0], Y: v[1], Z: v[2]}, nil
}

// readTimeout bounds a blocked read so that sampling can be stopped
// while the port is silent.
const readTimeout = 100 * time.Millisecond

// Open opens a serial port. If dev is empty, the usual USB serial
// devices for the platform are tried in order. A read that times out
// returns accel.ErrNoSample.
func Open(dev string, baud int) (*Source, error) {
	var devices []string
	if dev != "" {
		devices = append(devices, dev)
	} else {
		switch runtime.GOOS {
		case "windows":
			devices = append(devices, "COM3")
		case "darwin":
			devices = append(devices, "/dev/tty.usbserial")
		case "linux":
			devices = append(devices, "/dev/ttyUSB0", "/dev/ttyACM0")
		}
	}
	if len(devices) == 0 {
		return nil, errors.New("stream: no device specified")
	}
	var firstErr error
	for _, dev := range devices {
		c := &serial.Config{Name: dev, Baud: baud, ReadTimeout: readTimeout}
		p, err := serial.OpenPort(c)
		if err == nil {
			return newSource(p, true), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, fmt.Errorf("stream: %w", firstErr)
}
