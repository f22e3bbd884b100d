package timer

import "time"

// Config is the interval plan for one session cycle. Durations are
// whole minutes. The machine assumes values were clamped at the
// boundary before arriving here.
type Config struct {
	FocusMinutes            int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int
	AutoStart               bool
}

// DefaultConfig is the classic 25/5/15 plan with a long break every
// fourth focus session.
func DefaultConfig() Config {
	return Config{
		FocusMinutes:            25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
		AutoStart:               false,
	}
}

// Duration returns the configured length of a phase.
func (c Config) Duration(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return time.Duration(c.ShortBreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(c.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(c.FocusMinutes) * time.Minute
	}
}

// Patch is a partial config edit. Nil fields keep the current value.
type Patch struct {
	FocusMinutes            *int
	ShortBreakMinutes       *int
	LongBreakMinutes        *int
	SessionsBeforeLongBreak *int
	AutoStart               *bool
}

// PatchFrom builds a patch replacing every field, used when loading a
// stored preset wholesale.
func PatchFrom(c Config) Patch {
	return Patch{
		FocusMinutes:            &c.FocusMinutes,
		ShortBreakMinutes:       &c.ShortBreakMinutes,
		LongBreakMinutes:        &c.LongBreakMinutes,
		SessionsBeforeLongBreak: &c.SessionsBeforeLongBreak,
		AutoStart:               &c.AutoStart,
	}
}

func (c Config) apply(p Patch) Config {
	if p.FocusMinutes != nil {
		c.FocusMinutes = *p.FocusMinutes
	}
	if p.ShortBreakMinutes != nil {
		c.ShortBreakMinutes = *p.ShortBreakMinutes
	}
	if p.LongBreakMinutes != nil {
		c.LongBreakMinutes = *p.LongBreakMinutes
	}
	if p.SessionsBeforeLongBreak != nil {
		c.SessionsBeforeLongBreak = *p.SessionsBeforeLongBreak
	}
	if p.AutoStart != nil {
		c.AutoStart = *p.AutoStart
	}
	return c
}
