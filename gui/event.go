package gui

import (
	"fmt"
	"time"

	"flipface.dev/accel"
)

// Event is a value describing one input to the watch face. Each kind
// of event has its own type with an Event method for converting to
// Event and an AsX method for converting back.
type Event struct {
	typ  eventKind
	refs [1]any
}

type eventKind int

const (
	clockEvent eventKind = 1 + iota
	accelEvent
	tickEvent
	redrawEvent
)

// ClockEvent is delivered at least once per minute.
type ClockEvent struct {
	Time time.Time
}

// AccelEvent carries a batch of accelerometer samples.
type AccelEvent struct {
	Samples []accel.Sample
}

// TickEvent advances the logo animation by one frame.
type TickEvent struct{}

// RedrawEvent advances the text transitions by one frame.
type RedrawEvent struct{}

func (c ClockEvent) Event() Event {
	e := Event{typ: clockEvent}
	e.refs[0] = c.Time
	return e
}

func (a AccelEvent) Event() Event {
	e := Event{typ: accelEvent}
	e.refs[0] = a.Samples
	return e
}

func (TickEvent) Event() Event {
	return Event{typ: tickEvent}
}

func (RedrawEvent) Event() Event {
	return Event{typ: redrawEvent}
}

func (e Event) String() string {
	if e, ok := e.AsClock(); ok {
		return fmt.Sprintf("ClockEvent{%s}", e.Time.Format(time.TimeOnly))
	}
	if e, ok := e.AsAccel(); ok {
		return fmt.Sprintf("AccelEvent{%d samples}", len(e.Samples))
	}
	if _, ok := e.AsTick(); ok {
		return "TickEvent{}"
	}
	if _, ok := e.AsRedraw(); ok {
		return "RedrawEvent{}"
	}
	return "Event{}"
}

func (e Event) AsClock() (ClockEvent, bool) {
	if e.typ != clockEvent {
		return ClockEvent{}, false
	}
	return ClockEvent{Time: e.refs[0].(time.Time)}, true
}

func (e Event) AsAccel() (AccelEvent, bool) {
	if e.typ != accelEvent {
		return AccelEvent{}, false
	}
	s, _ := e.refs[0].([]accel.Sample)
	return AccelEvent{Samples: s}, true
}

func (e Event) AsTick() (TickEvent, bool) {
	return TickEvent{}, e.typ == tickEvent
}

func (e Event) AsRedraw() (RedrawEvent, bool) {
	return RedrawEvent{}, e.typ == redrawEvent
}
