package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrule/pomotide/audio"
	"github.com/ferrule/pomotide/timer"
)

// memMedium backs the store with a byte slice.
type memMedium struct {
	raw    []byte
	exists bool
	err    error
}

func (m *memMedium) Read() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !m.exists {
		return nil, os.ErrNotExist
	}
	return m.raw, nil
}

func (m *memMedium) Write(raw []byte) error {
	if m.err != nil {
		return m.err
	}
	m.raw = raw
	m.exists = true
	return nil
}

func TestLoadMissingDocumentYieldsDefaults(t *testing.T) {
	s := NewStore(&memMedium{})
	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestLoadCorruptDocumentYieldsDefaults(t *testing.T) {
	s := NewStore(&memMedium{raw: []byte("{not yaml: ["), exists: true})
	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	m := &memMedium{}
	s := NewStore(m)

	want := DefaultPreferences()
	want.Timer.FocusMinutes = 50
	want.Timer.AutoStart = true
	want.AlarmTone = "deepBell"
	want.TickEnabled = true
	want.TickVolume = 0.8
	want.AmbientEnabled = true
	want.AmbientMode = "embers"
	want.Theme = "ember"
	want.NotifyEnabled = true

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMigratesLegacyFlatDocument(t *testing.T) {
	legacy := []byte(`
version: 1
focus_minutes: 45
short_break_minutes: 10
long_break_minutes: 20
sessions_before_long_break: 3
auto_start: true
alarm_tone: mellowChime
alarm_volume: 0.9
theme: dusk
`)
	s := NewStore(&memMedium{raw: legacy, exists: true})
	p, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, 45, p.Timer.FocusMinutes)
	assert.Equal(t, 10, p.Timer.ShortBreakMinutes)
	assert.Equal(t, 20, p.Timer.LongBreakMinutes)
	assert.Equal(t, 3, p.Timer.SessionsBeforeLongBreak)
	assert.True(t, p.Timer.AutoStart)
	assert.Equal(t, "mellowChime", p.AlarmTone)
	assert.Equal(t, 0.9, p.AlarmVolume)
	assert.Equal(t, "dusk", p.Theme)

	// concerns the old document never knew take defaults
	d := DefaultPreferences()
	assert.Equal(t, d.TickEnabled, p.TickEnabled)
	assert.Equal(t, d.TickVolume, p.TickVolume)
	assert.Equal(t, d.AmbientMode, p.AmbientMode)
	assert.Equal(t, d.NotifyEnabled, p.NotifyEnabled)
}

func TestLoadRejectsFutureVersionGracefully(t *testing.T) {
	s := NewStore(&memMedium{raw: []byte("version: 99\n"), exists: true})
	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestSanitizeClampsRanges(t *testing.T) {
	p := Preferences{
		Timer: timer.Config{
			FocusMinutes:            0,
			ShortBreakMinutes:       999,
			LongBreakMinutes:        -4,
			SessionsBeforeLongBreak: 40,
		},
		AlarmVolume:   1.7,
		TickVolume:    -0.2,
		AmbientVolume: 0.4,
	}
	got := Sanitize(p)

	assert.Equal(t, minPhaseMinutes, got.Timer.FocusMinutes)
	assert.Equal(t, maxPhaseMinutes, got.Timer.ShortBreakMinutes)
	assert.Equal(t, minPhaseMinutes, got.Timer.LongBreakMinutes)
	assert.Equal(t, maxSessions, got.Timer.SessionsBeforeLongBreak)
	assert.Equal(t, 1.0, got.AlarmVolume)
	assert.Equal(t, 0.0, got.TickVolume)
	assert.Equal(t, 0.4, got.AmbientVolume)
	assert.Equal(t, audio.DefaultAlarm, got.AlarmTone)
	assert.Equal(t, audio.DefaultAmbient, got.AmbientMode)
	assert.Equal(t, DefaultTheme, got.Theme)
}

func TestPresetLifecycle(t *testing.T) {
	m := &memMedium{}
	s := NewStore(m)
	p := DefaultPreferences()

	cfg := timer.Config{FocusMinutes: 52, ShortBreakMinutes: 17, LongBreakMinutes: 30, SessionsBeforeLongBreak: 2}
	preset, err := s.AddPreset(&p, "  deep work  ", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, preset.ID)
	assert.Equal(t, "deep work", preset.Name)
	assert.Equal(t, cfg, preset.Config)

	// presets survive a reload
	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Presets, 1)
	assert.Equal(t, preset, loaded.Presets[0])

	found, ok := FindPreset(loaded, preset.ID)
	require.True(t, ok)
	assert.Equal(t, preset, found)

	require.NoError(t, s.RenamePreset(&p, preset.ID, "morning block"))
	assert.Equal(t, "morning block", p.Presets[0].Name)

	require.NoError(t, s.DeletePreset(&p, preset.ID))
	assert.Empty(t, p.Presets)

	loaded, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Presets)
}

func TestPresetErrors(t *testing.T) {
	s := NewStore(&memMedium{})
	p := DefaultPreferences()

	_, err := s.AddPreset(&p, "   ", timer.DefaultConfig())
	assert.Error(t, err)

	assert.ErrorIs(t, s.RenamePreset(&p, "missing", "x"), ErrPresetNotFound)
	assert.ErrorIs(t, s.DeletePreset(&p, "missing"), ErrPresetNotFound)

	_, ok := FindPreset(p, "missing")
	assert.False(t, ok)
}
