package timer

import "time"

// Phase is one interval kind of the Pomodoro cycle.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// IsBreak reports whether the phase is a rest interval.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// Status is the session run state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// Snapshot is an immutable view of the machine for display and wiring.
// Deadline is the zero time unless the status is Running.
type Snapshot struct {
	Phase          Phase
	Status         Status
	Remaining      time.Duration
	Deadline       time.Time
	CompletedFocus int
	Config         Config
}
