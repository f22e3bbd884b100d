package timer

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Clock supplies wall-clock time. The machine and scheduler share one
// so tests can drive both from a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// Listener observes machine transitions. Listeners are invoked
// serially, outside the machine lock, after each transition.
type Listener func(Snapshot)

// Machine tracks the phase cycle and session run state. It holds no
// timers itself; the Scheduler drives it against a deadline.
type Machine struct {
	mu             sync.Mutex
	clock          Clock
	config         Config
	phase          Phase
	status         Status
	remaining      time.Duration
	deadline       time.Time
	completedFocus int
	listeners      []Listener
}

// NewMachine creates an idle machine positioned at the start of a
// focus phase under the given configuration.
func NewMachine(config Config, clock Clock) *Machine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Machine{
		clock:     clock,
		config:    config,
		phase:     PhaseFocus,
		status:    StatusIdle,
		remaining: config.Duration(PhaseFocus),
	}
}

// OnChange registers a transition listener.
func (m *Machine) OnChange(fn Listener) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:          m.phase,
		Status:         m.status,
		Remaining:      m.remaining,
		Deadline:       m.deadline,
		CompletedFocus: m.completedFocus,
		Config:         m.config,
	}
}

// Start begins a fresh session: counters cleared, focus phase running
// with a full focus duration ahead of it.
func (m *Machine) Start() {
	m.mu.Lock()
	m.completedFocus = 0
	m.phase = PhaseFocus
	m.status = StatusRunning
	m.remaining = m.config.Duration(PhaseFocus)
	m.deadline = m.clock.Now().Add(m.remaining)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	log.Debug().Str("phase", string(snap.Phase)).Msg("timer started")
	m.notify(snap)
}

// Pause freezes a running countdown. No-op in any other state.
func (m *Machine) Pause() {
	m.mu.Lock()
	if m.status != StatusRunning {
		m.mu.Unlock()
		return
	}
	remaining := m.deadline.Sub(m.clock.Now())
	if remaining < 0 {
		remaining = 0
	}
	m.remaining = remaining
	m.deadline = time.Time{}
	m.status = StatusPaused
	snap := m.snapshotLocked()
	m.mu.Unlock()

	log.Debug().Dur("remaining", snap.Remaining).Msg("timer paused")
	m.notify(snap)
}

// Resume continues from Paused or Idle with the current remaining
// time. No-op while already Running.
func (m *Machine) Resume() {
	m.mu.Lock()
	if m.status == StatusRunning {
		m.mu.Unlock()
		return
	}
	m.status = StatusRunning
	m.deadline = m.clock.Now().Add(m.remaining)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

// Reset returns to an idle focus phase with the full focus duration
// restored. Configuration is untouched.
func (m *Machine) Reset() {
	m.mu.Lock()
	m.phase = PhaseFocus
	m.status = StatusIdle
	m.remaining = m.config.Duration(PhaseFocus)
	m.deadline = time.Time{}
	m.completedFocus = 0
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

// Skip forces immediate completion of the current phase.
func (m *Machine) Skip() {
	m.CompletePhase()
}

// CompletePhase advances to the next phase. Completing a focus phase
// counts it toward the long break threshold; completing any break
// returns to focus. The next phase starts running immediately when
// auto-start is enabled, otherwise the machine parks Idle.
func (m *Machine) CompletePhase() {
	m.mu.Lock()
	switch m.phase {
	case PhaseFocus:
		achieved := m.completedFocus + 1
		if achieved >= m.config.SessionsBeforeLongBreak {
			m.phase = PhaseLongBreak
			m.completedFocus = 0
		} else {
			m.phase = PhaseShortBreak
			m.completedFocus = achieved
		}
	case PhaseLongBreak:
		m.phase = PhaseFocus
		m.completedFocus = 0
	default:
		m.phase = PhaseFocus
	}

	m.remaining = m.config.Duration(m.phase)
	if m.config.AutoStart {
		m.status = StatusRunning
		m.deadline = m.clock.Now().Add(m.remaining)
	} else {
		m.status = StatusIdle
		m.deadline = time.Time{}
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	log.Debug().
		Str("phase", string(snap.Phase)).
		Str("status", string(snap.Status)).
		Int("completed_focus", snap.CompletedFocus).
		Msg("phase complete")
	m.notify(snap)
}

// UpdateConfig merges a partial edit. While Idle the displayed
// remaining time is recomputed from the new durations so edits show
// up before the session starts; a Running or Paused countdown keeps
// its remaining time untouched.
func (m *Machine) UpdateConfig(patch Patch) {
	m.mu.Lock()
	m.config = m.config.apply(patch)
	if m.status == StatusIdle {
		m.remaining = m.config.Duration(m.phase)
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

// SetRemaining refreshes the displayed remaining time. Permitted only
// while Running, and never increases the value. Listeners are not
// notified; the scheduler's tick callback is the display channel.
func (m *Machine) SetRemaining(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != StatusRunning {
		return
	}
	if d < 0 {
		d = 0
	}
	if d < m.remaining {
		m.remaining = d
	}
}

func (m *Machine) notify(snap Snapshot) {
	m.mu.Lock()
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}
