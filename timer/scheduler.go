package timer

import (
	"time"

	"github.com/rs/zerolog/log"
)

// WakeFunc schedules fn once after d and returns a cancel function.
// The js build wires setTimeout/clearTimeout; tests substitute a
// deterministic fake.
type WakeFunc func(d time.Duration, fn func()) (cancel func())

// Polling bands. Far from the deadline the loop wakes coarsely; close
// to it the display tightens up.
const (
	coarseBand = 5 * time.Minute
	mediumBand = time.Minute
	fineBand   = 10 * time.Second
	coarsePoll = time.Second
	mediumPoll = 500 * time.Millisecond
	finePoll   = 250 * time.Millisecond
	finestPoll = 100 * time.Millisecond
)

// pollInterval picks the wake-up delay for the given remaining time,
// never sleeping past the deadline itself.
func pollInterval(remaining time.Duration) time.Duration {
	var d time.Duration
	switch {
	case remaining > coarseBand:
		d = coarsePoll
	case remaining > mediumBand:
		d = mediumPoll
	case remaining > fineBand:
		d = finePoll
	default:
		d = finestPoll
	}
	if d > remaining {
		d = remaining
	}
	return d
}

// Scheduler converts the machine's deadline into live remaining-time
// updates and exactly one completion signal per armed deadline.
// Remaining time is always recomputed as deadline minus now, so a
// throttled background tab self-corrects on its next wake-up instead
// of accumulating drift.
type Scheduler struct {
	machine *Machine
	clock   Clock
	wake    WakeFunc

	cancel        func()
	gen           int
	fired         bool
	armedDeadline time.Time

	// OnTick publishes the recomputed remaining time for display.
	OnTick func(remaining time.Duration)
	// OnComplete fires once per phase instance, before the machine
	// transitions, with the phase that just finished.
	OnComplete func(finished Phase)
}

// NewScheduler attaches a scheduler to the machine. It follows every
// transition: arming on entry to Running or a deadline change,
// cancelling its pending wake-up whenever the status leaves Running.
func NewScheduler(m *Machine, clock Clock, wake WakeFunc) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	s := &Scheduler{machine: m, clock: clock, wake: wake}
	m.OnChange(s.sync)
	s.sync(m.Snapshot())
	return s
}

func (s *Scheduler) sync(snap Snapshot) {
	if snap.Status != StatusRunning {
		s.disarm()
		return
	}
	if s.cancel == nil || !snap.Deadline.Equal(s.armedDeadline) {
		s.arm(snap.Deadline)
	}
}

// arm resets the single-fire latch and starts a fresh polling loop
// against the new deadline. Any pending wake-up is cancelled first so
// a stale loop can never fire against the old deadline.
func (s *Scheduler) arm(deadline time.Time) {
	s.disarm()
	s.gen++
	s.fired = false
	s.armedDeadline = deadline
	s.step(s.gen)
}

// Disarm cancels the pending wake-up, if any.
func (s *Scheduler) Disarm() {
	s.disarm()
}

func (s *Scheduler) disarm() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.armedDeadline = time.Time{}
}

func (s *Scheduler) step(gen int) {
	if gen != s.gen {
		return
	}
	s.cancel = nil

	remaining := s.armedDeadline.Sub(s.clock.Now())
	if remaining <= 0 {
		if s.fired {
			return
		}
		s.fired = true
		finished := s.machine.Snapshot().Phase
		s.machine.SetRemaining(0)
		if s.OnTick != nil {
			s.OnTick(0)
		}
		log.Debug().Str("phase", string(finished)).Msg("countdown reached deadline")
		if s.OnComplete != nil {
			s.OnComplete(finished)
		}
		s.machine.CompletePhase()
		return
	}

	s.machine.SetRemaining(remaining)
	if s.OnTick != nil {
		s.OnTick(remaining)
	}
	s.cancel = s.wake(pollInterval(remaining), func() { s.step(gen) })
}
