package stacker

import "time"

// schedule is an engine-owned timer advanced by Tick.
// It replaces callback timers so that cancelling a session can never leave
// a stale timer behind to drive a second game loop.
type schedule struct {
	interval  time.Duration
	elapsed   time.Duration
	repeating bool
	active    bool
}

// start arms the schedule, replacing any pending one.
func (s *schedule) start(interval time.Duration, repeating bool) {
	s.interval = interval
	s.elapsed = 0
	s.repeating = repeating
	s.active = true
}

// cancel disarms the schedule.
func (s *schedule) cancel() {
	s.active = false
	s.elapsed = 0
}

// advance moves the schedule forward by dt and returns how many times it fired.
// A one-shot schedule fires at most once and then disarms itself.
func (s *schedule) advance(dt time.Duration) int {
	if !s.active {
		return 0
	}
	if s.interval <= 0 {
		if !s.repeating {
			s.active = false
		}
		return 1
	}

	s.elapsed += dt
	fired := 0
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		fired++
		if !s.repeating {
			s.cancel()
			break
		}
	}
	return fired
}
