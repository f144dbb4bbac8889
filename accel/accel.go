// Package accel implements the accelerometer data service: a Source of
// 3-axis samples polled at a fixed rate and delivered to a subscriber in
// batches.
package accel

import (
	"errors"
	"io"
	"log"
	"sync"
	"time"
)

// Sample is a single acceleration reading in milli-g.
type Sample struct {
	X, Y, Z int16
}

// Source reads samples from a sensor. Read blocks until a sample is
// available; io.EOF means the source is exhausted.
type Source interface {
	Read() (Sample, error)
}

// ErrNoSample is returned by a Source that had no sample ready in time.
// The Service skips it silently.
var ErrNoSample = errors.New("accel: no sample")

const (
	DefaultRate  = 25
	DefaultBatch = 25
)

// Service polls a Source and delivers batches of samples. At most one
// subscriber is active at a time.
type Service struct {
	src Source

	mu   sync.Mutex
	rate int
	stop chan struct{}
	done chan struct{}
}

func NewService(src Source) *Service {
	return &Service{
		src:  src,
		rate: DefaultRate,
	}
}

// SetSamplingRate sets the rate in Hz used by the next Subscribe.
func (s *Service) SetSamplingRate(hz int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hz > 0 {
		s.rate = hz
	}
}

// Subscribe starts sampling and delivers every n samples to ch.
// An existing subscription is replaced.
func (s *Service) Subscribe(n int, ch chan<- []Sample) error {
	if n <= 0 {
		return errors.New("accel: batch size must be positive")
	}
	s.Unsubscribe()
	s.mu.Lock()
	defer s.mu.Unlock()
	stop, done := make(chan struct{}), make(chan struct{})
	s.stop, s.done = stop, done
	period := time.Second / time.Duration(s.rate)
	go s.sample(period, n, ch, stop, done)
	return nil
}

// Unsubscribe stops sampling and waits for the sampler to exit.
func (s *Service) Unsubscribe() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *Service) sample(period time.Duration, n int, ch chan<- []Sample, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(period)
	defer t.Stop()
	batch := make([]Sample, 0, n)
	deliver := func() bool {
		select {
		case ch <- batch:
			batch = make([]Sample, 0, n)
			return true
		case <-stop:
			return false
		}
	}
	for {
		select {
		case <-stop:
			return
		case <-t.C:
		}
		smp, err := s.src.Read()
		switch {
		case errors.Is(err, io.EOF):
			if len(batch) > 0 {
				deliver()
			}
			log.Printf("accel: source exhausted")
			return
		case errors.Is(err, ErrNoSample):
			continue
		case err != nil:
			log.Printf("accel: %v", err)
			continue
		}
		batch = append(batch, smp)
		if len(batch) == n && !deliver() {
			return
		}
	}
}
