package cell

import (
	"sort"
	"time"
)

// Timer is a pending scheduled callback. Stop reports whether it prevented
// the callback from running.
type Timer interface {
	Stop() bool
}

// Scheduler is the timer capability Debounce and Async run on: schedule a
// callback after a duration, or on the next tick, and cancel it while it is
// still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	NextTick(fn func()) Timer
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

func (wallScheduler) NextTick(fn func()) Timer {
	return time.AfterFunc(0, fn)
}

// Wall is the default wall-clock scheduler.
var Wall Scheduler = wallScheduler{}

type manualTimer struct {
	due     time.Duration
	seq     int
	fn      func()
	fired   bool
	stopped bool
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// ManualScheduler is a deterministic Scheduler for tests: nothing fires until
// the clock is advanced explicitly.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &manualTimer{due: s.now + d, seq: s.seq, fn: fn}
	s.seq++
	s.pending = append(s.pending, t)
	return t
}

func (s *ManualScheduler) NextTick(fn func()) Timer {
	return s.AfterFunc(0, fn)
}

// Advance moves the clock forward by d, firing every due timer in due order
// (schedule order for equal deadlines). Callbacks may schedule further timers;
// those fire too if they fall within the advance window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t := s.takeNextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		t.fired = true
		t.fn()
	}
	s.now = target
}

// Tick fires everything scheduled for the current instant, i.e. pending
// NextTick callbacks.
func (s *ManualScheduler) Tick() {
	s.Advance(0)
}

// Pending reports how many timers are scheduled and not yet fired or stopped.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) takeNextDue(target time.Duration) *manualTimer {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	s.pending = live
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	for _, t := range s.pending {
		if t.due <= target {
			return t
		}
	}
	return nil
}
