// Package store persists user preferences as a small versioned YAML
// document. Older payload versions are migrated forward on load, and a
// missing or corrupt document falls back to defaults so the app always
// starts.
package store

import (
	"github.com/ferrule/pomotide/audio"
	"github.com/ferrule/pomotide/timer"
)

// Limits applied to every loaded or saved document. Out-of-range
// values are clamped, never rejected.
const (
	minPhaseMinutes = 1
	maxPhaseMinutes = 180
	minSessions     = 1
	maxSessions     = 12
)

// DefaultTheme is used when a stored theme name is unknown.
const DefaultTheme = "tide"

// Preferences is everything the app remembers between visits.
type Preferences struct {
	Timer timer.Config

	AlarmTone   string
	AlarmVolume float64

	TickEnabled bool
	TickVolume  float64

	AmbientEnabled bool
	AmbientMode    string
	AmbientVolume  float64

	Theme         string
	NotifyEnabled bool

	Presets []Preset
}

// DefaultPreferences returns the out-of-box state.
func DefaultPreferences() Preferences {
	return Preferences{
		Timer:          timer.DefaultConfig(),
		AlarmTone:      audio.DefaultAlarm,
		AlarmVolume:    0.7,
		TickEnabled:    false,
		TickVolume:     0.3,
		AmbientEnabled: false,
		AmbientMode:    audio.DefaultAmbient,
		AmbientVolume:  0.5,
		Theme:          DefaultTheme,
		NotifyEnabled:  false,
	}
}

// Sanitize clamps every stored value into its legal range. Applied on
// both load and save so a hand-edited document cannot wedge the timer.
func Sanitize(p Preferences) Preferences {
	p.Timer = sanitizeConfig(p.Timer)
	p.AlarmVolume = clampUnit(p.AlarmVolume)
	p.TickVolume = clampUnit(p.TickVolume)
	p.AmbientVolume = clampUnit(p.AmbientVolume)
	if p.AlarmTone == "" {
		p.AlarmTone = audio.DefaultAlarm
	}
	if p.AmbientMode == "" {
		p.AmbientMode = audio.DefaultAmbient
	}
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	for i := range p.Presets {
		p.Presets[i].Config = sanitizeConfig(p.Presets[i].Config)
	}
	return p
}

func sanitizeConfig(c timer.Config) timer.Config {
	c.FocusMinutes = clampInt(c.FocusMinutes, minPhaseMinutes, maxPhaseMinutes)
	c.ShortBreakMinutes = clampInt(c.ShortBreakMinutes, minPhaseMinutes, maxPhaseMinutes)
	c.LongBreakMinutes = clampInt(c.LongBreakMinutes, minPhaseMinutes, maxPhaseMinutes)
	c.SessionsBeforeLongBreak = clampInt(c.SessionsBeforeLongBreak, minSessions, maxSessions)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
