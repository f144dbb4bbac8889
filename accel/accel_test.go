package accel

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
	"time"
)

type sliceSource struct {
	mu      sync.Mutex
	samples []Sample
	errs    map[int]error
	reads   int
}

func (s *sliceSource) Read() (Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.reads
	s.reads++
	if err := s.errs[idx]; err != nil {
		return Sample{}, err
	}
	if len(s.samples) == 0 {
		return Sample{}, io.EOF
	}
	smp := s.samples[0]
	s.samples = s.samples[1:]
	return smp, nil
}

func seq(n int) []Sample {
	var smps []Sample
	for i := range n {
		smps = append(smps, Sample{X: int16(i), Y: int16(i * 10), Z: int16(-i)})
	}
	return smps
}

func receive(t *testing.T, ch <-chan []Sample) []Sample {
	t.Helper()
	select {
	case b := <-ch:
		return b
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for batch")
		return nil
	}
}

func TestBatches(t *testing.T) {
	all := seq(7)
	src := &sliceSource{samples: slices.Clone(all)}
	s := NewService(src)
	s.SetSamplingRate(1000)
	ch := make(chan []Sample)
	if err := s.Subscribe(3, ch); err != nil {
		t.Fatal(err)
	}
	defer s.Unsubscribe()
	var got [][]Sample
	for range 3 {
		got = append(got, receive(t, ch))
	}
	want := [][]Sample{all[0:3], all[3:6], all[6:7]}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("batch %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadErrorSkipsSample(t *testing.T) {
	all := seq(3)
	src := &sliceSource{
		samples: slices.Clone(all),
		errs: map[int]error{
			1: errors.New("i2c: nack"),
			2: ErrNoSample,
		},
	}
	s := NewService(src)
	s.SetSamplingRate(1000)
	ch := make(chan []Sample)
	if err := s.Subscribe(3, ch); err != nil {
		t.Fatal(err)
	}
	defer s.Unsubscribe()
	if got := receive(t, ch); !slices.Equal(got, all) {
		t.Errorf("got %v, want %v", got, all)
	}
}

func TestUnsubscribe(t *testing.T) {
	src := &sliceSource{samples: seq(1000)}
	s := NewService(src)
	s.SetSamplingRate(1000)
	ch := make(chan []Sample)
	if err := s.Subscribe(2, ch); err != nil {
		t.Fatal(err)
	}
	receive(t, ch)
	s.Unsubscribe()
	// A second call is a no-op.
	s.Unsubscribe()
	select {
	case b := <-ch:
		t.Fatalf("received batch %v after Unsubscribe", b)
	case <-time.After(20 * time.Millisecond):
	}
	if err := s.Subscribe(2, ch); err != nil {
		t.Fatal(err)
	}
	receive(t, ch)
	s.Unsubscribe()
}

func TestSubscribeInvalid(t *testing.T) {
	s := NewService(&sliceSource{})
	if err := s.Subscribe(0, make(chan []Sample)); err == nil {
		t.Error("Subscribe accepted an empty batch size")
	}
}
