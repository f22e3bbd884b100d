package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWake queues wake-ups against the fake clock and fires them in
// deadline order as the clock advances.
type fakeWake struct {
	clock   *fakeClock
	pending []*pendingWake
}

type pendingWake struct {
	at        time.Time
	fn        func()
	cancelled bool
}

func newFakeWake(clock *fakeClock) *fakeWake {
	return &fakeWake{clock: clock}
}

func (w *fakeWake) fn() WakeFunc {
	return func(d time.Duration, fn func()) func() {
		p := &pendingWake{at: w.clock.now.Add(d), fn: fn}
		w.pending = append(w.pending, p)
		return func() { p.cancelled = true }
	}
}

// advance moves the clock forward, firing every due wake-up in order.
func (w *fakeWake) advance(d time.Duration) {
	target := w.clock.now.Add(d)
	for {
		idx := -1
		for i, p := range w.pending {
			if p.cancelled {
				continue
			}
			if idx == -1 || p.at.Before(w.pending[idx].at) {
				idx = i
			}
		}
		if idx == -1 || w.pending[idx].at.After(target) {
			break
		}
		p := w.pending[idx]
		w.pending = append(w.pending[:idx], w.pending[idx+1:]...)
		if p.at.After(w.clock.now) {
			w.clock.now = p.at
		}
		p.fn()
	}
	w.clock.now = target
}

func (w *fakeWake) livePending() int {
	n := 0
	for _, p := range w.pending {
		if !p.cancelled {
			n++
		}
	}
	return n
}

func newTestScheduler(cfg Config) (*Machine, *Scheduler, *fakeClock, *fakeWake) {
	clock := newTestClock()
	wake := newFakeWake(clock)
	m := NewMachine(cfg, clock)
	s := NewScheduler(m, clock, wake.fn())
	return m, s, clock, wake
}

func TestPollInterval_Bands(t *testing.T) {
	cases := []struct {
		remaining time.Duration
		want      time.Duration
	}{
		{10 * time.Minute, time.Second},
		{2 * time.Minute, 500 * time.Millisecond},
		{30 * time.Second, 250 * time.Millisecond},
		{5 * time.Second, 100 * time.Millisecond},
		{40 * time.Millisecond, 40 * time.Millisecond}, // never past the deadline
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pollInterval(tc.remaining), tc.remaining.String())
	}
}

func TestScheduler_RemainingIsMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FocusMinutes = 1
	m, s, _, wake := newTestScheduler(cfg)

	var ticks []time.Duration
	s.OnTick = func(r time.Duration) { ticks = append(ticks, r) }
	completions := 0
	s.OnComplete = func(Phase) { completions++ }

	m.Start()
	wake.advance(2 * time.Minute)

	require.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.LessOrEqual(t, ticks[i], ticks[i-1], "tick %d increased", i)
	}
	assert.Equal(t, time.Duration(0), ticks[len(ticks)-1])
	assert.Equal(t, 1, completions)
}

func TestScheduler_CompletionNeverEarly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FocusMinutes = 1
	m, s, clock, wake := newTestScheduler(cfg)

	var completedAt time.Time
	s.OnComplete = func(Phase) { completedAt = clock.now }

	m.Start()
	deadline := m.Snapshot().Deadline

	// Irregular increments simulating background-tab throttling.
	for _, step := range []time.Duration{
		13700 * time.Millisecond,
		900 * time.Millisecond,
		27300 * time.Millisecond,
		400 * time.Millisecond,
		30 * time.Second,
	} {
		wake.advance(step)
	}

	require.False(t, completedAt.IsZero(), "completion never fired")
	assert.False(t, completedAt.Before(deadline), "completed before deadline")
	assert.LessOrEqual(t, completedAt.Sub(deadline), time.Second,
		"completed more than one coarse interval late")
}

func TestScheduler_PauseCancelsPendingWake(t *testing.T) {
	m, s, _, wake := newTestScheduler(DefaultConfig())
	completions := 0
	s.OnComplete = func(Phase) { completions++ }

	m.Start()
	wake.advance(10 * time.Second)
	m.Pause()

	assert.Zero(t, wake.livePending())

	// Long past the stale deadline: nothing may fire.
	wake.advance(time.Hour)
	assert.Zero(t, completions)
	assert.Equal(t, StatusPaused, m.Snapshot().Status)
}

func TestScheduler_ResumeCompletesExactlyOnce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FocusMinutes = 1
	m, s, _, wake := newTestScheduler(cfg)
	completions := 0
	s.OnComplete = func(Phase) { completions++ }

	m.Start()
	wake.advance(20 * time.Second)
	m.Pause()
	wake.advance(10 * time.Minute)
	m.Resume()
	wake.advance(2 * time.Minute)

	assert.Equal(t, 1, completions)
	assert.Equal(t, PhaseShortBreak, m.Snapshot().Phase)
}

func TestScheduler_ResetCancelsLoop(t *testing.T) {
	m, s, _, wake := newTestScheduler(DefaultConfig())
	completions := 0
	s.OnComplete = func(Phase) { completions++ }

	m.Start()
	wake.advance(time.Second)
	m.Reset()
	wake.advance(time.Hour)

	assert.Zero(t, completions)
	assert.Zero(t, wake.livePending())
}

func TestScheduler_AutoStartChainsPhases(t *testing.T) {
	cfg := Config{
		FocusMinutes:            1,
		ShortBreakMinutes:       1,
		LongBreakMinutes:        2,
		SessionsBeforeLongBreak: 4,
		AutoStart:               true,
	}
	m, s, _, wake := newTestScheduler(cfg)

	var finished []Phase
	s.OnComplete = func(p Phase) { finished = append(finished, p) }

	m.Start()
	wake.advance(65 * time.Second) // focus completes, short break auto-starts
	assert.Equal(t, []Phase{PhaseFocus}, finished)
	assert.Equal(t, StatusRunning, m.Snapshot().Status)

	wake.advance(65 * time.Second) // short break completes
	assert.Equal(t, []Phase{PhaseFocus, PhaseShortBreak}, finished)
	assert.Equal(t, PhaseFocus, m.Snapshot().Phase)
}

func TestScheduler_SkipRearmsLatch(t *testing.T) {
	cfg := Config{
		FocusMinutes:            1,
		ShortBreakMinutes:       1,
		LongBreakMinutes:        2,
		SessionsBeforeLongBreak: 4,
		AutoStart:               true,
	}
	m, s, _, wake := newTestScheduler(cfg)
	var finished []Phase
	s.OnComplete = func(p Phase) { finished = append(finished, p) }

	m.Start()
	wake.advance(10 * time.Second)
	m.Skip() // forced focus completion, break auto-starts
	wake.advance(65 * time.Second)

	assert.Equal(t, []Phase{PhaseShortBreak}, finished)
	assert.Equal(t, PhaseFocus, m.Snapshot().Phase)
}
