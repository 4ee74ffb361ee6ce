// Package timer schedules one-shot and repeating callbacks on the
// simulation tick. Durations are converted to whole ticks so that timed
// sequences are deterministic for a given tick rate.
package timer

import (
	"math"
	"time"
)

// Event is a scheduled callback. Remove cancels it.
type Event struct {
	due     uint64
	every   uint64
	loop    bool
	fn      func()
	removed bool
}

// Remove cancels the event. Safe to call from inside its own callback.
func (e *Event) Remove() {
	e.removed = true
}

// Active reports whether the event is still scheduled.
func (e *Event) Active() bool {
	return !e.removed
}

// Scheduler dispatches events from the single game loop; it is not safe
// for concurrent use.
type Scheduler struct {
	tickRate int
	tick     uint64
	events   []*Event
}

// NewScheduler creates a scheduler for the given ticks per second.
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Scheduler{tickRate: tickRate}
}

// Ticks converts a duration to a whole number of ticks (at least 1).
func (s *Scheduler) Ticks(d time.Duration) uint64 {
	n := math.Round(d.Seconds() * float64(s.tickRate))
	if n < 1 {
		return 1
	}
	return uint64(n)
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Event {
	return s.add(s.Ticks(d), false, fn)
}

// Every schedules fn to run every d until the event is removed.
func (s *Scheduler) Every(d time.Duration, fn func()) *Event {
	return s.add(s.Ticks(d), true, fn)
}

func (s *Scheduler) add(ticks uint64, loop bool, fn func()) *Event {
	e := &Event{
		due:   s.tick + ticks,
		every: ticks,
		loop:  loop,
		fn:    fn,
	}
	s.events = append(s.events, e)
	return e
}

// Advance moves time forward by one tick and runs every event that is due,
// in scheduling order. Events added by callbacks first run on a later tick.
func (s *Scheduler) Advance() {
	s.tick++

	due := make([]*Event, 0, len(s.events))
	for _, e := range s.events {
		if !e.removed && e.due <= s.tick {
			due = append(due, e)
		}
	}

	for _, e := range due {
		if e.removed {
			continue
		}
		e.fn()
		if e.loop && !e.removed {
			e.due += e.every
		} else {
			e.removed = true
		}
	}

	live := s.events[:0]
	for _, e := range s.events {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.events); i++ {
		s.events[i] = nil
	}
	s.events = live
}

// Pending returns the number of scheduled events.
func (s *Scheduler) Pending() int {
	n := 0
	for _, e := range s.events {
		if !e.removed {
			n++
		}
	}
	return n
}

// Clear cancels every scheduled event. Safe to call from inside a callback.
func (s *Scheduler) Clear() {
	for _, e := range s.events {
		e.removed = true
	}
	s.events = s.events[:0]
}
