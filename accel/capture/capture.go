// Package capture records accelerometer samples to a CBOR stream and
// replays them, for reproducing gestures without hardware.
package capture

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"flipface.dev/accel"
)

// RecordSize is the number of samples per record.
const RecordSize = accel.DefaultBatch

type record struct {
	_ struct{} `cbor:",toarray"`
	// Time is the capture time of the first sample, in Unix milliseconds.
	Time    int64
	Samples [][3]int16
}

// Recorder is a Source that copies every sample read from an underlying
// Source to a capture stream.
type Recorder struct {
	src accel.Source
	now func() time.Time

	mu  sync.Mutex
	enc *cbor.Encoder
	rec record
	err error
}

func NewRecorder(src accel.Source, w io.Writer) *Recorder {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return &Recorder{
		src: src,
		now: time.Now,
		enc: enc.NewEncoder(w),
	}
}

func (r *Recorder) Read() (accel.Sample, error) {
	s, err := r.src.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if ferr := r.Flush(); ferr != nil {
				return s, ferr
			}
		}
		return s, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rec.Samples) == 0 {
		r.rec.Time = r.now().UnixMilli()
	}
	r.rec.Samples = append(r.rec.Samples, [3]int16{s.X, s.Y, s.Z})
	if len(r.rec.Samples) == RecordSize {
		if err := r.flush(); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Flush writes buffered samples as a short record.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flush()
}

func (r *Recorder) flush() error {
	if r.err != nil {
		return r.err
	}
	if len(r.rec.Samples) == 0 {
		return nil
	}
	if err := r.enc.Encode(r.rec); err != nil {
		r.err = fmt.Errorf("capture: %w", err)
		return r.err
	}
	r.rec.Samples = r.rec.Samples[:0]
	return nil
}

// Replay is a Source over a capture stream. Read returns io.EOF after
// the last sample.
type Replay struct {
	dec     *cbor.Decoder
	pending [][3]int16
}

func NewReplay(r io.Reader) *Replay {
	mode, err := cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return &Replay{dec: mode.NewDecoder(r)}
}

func (r *Replay) Read() (accel.Sample, error) {
	for len(r.pending) == 0 {
		var rec record
		if err := r.dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return accel.Sample{}, io.EOF
			}
			return accel.Sample{}, fmt.Errorf("capture: %w", err)
		}
		r.pending = rec.Samples
	}
	s := r.pending[0]
	r.pending = r.pending[1:]
	return accel.Sample{X: s[0], Y: s[1], Z: s[2]}, nil
}
