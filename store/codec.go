package store

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ferrule/pomotide/timer"
)

// payloadVersion is the current on-disk document version. Loads accept
// every version up to this and migrate forward; saves always write the
// current shape.
const payloadVersion = 2

type payloadHeader struct {
	Version int `yaml:"version"`
}

// payloadV2 is the current document: settings grouped by concern.
type payloadV2 struct {
	Version int            `yaml:"version"`
	Timer   timerSection   `yaml:"timer"`
	Sound   soundSection   `yaml:"sound"`
	UI      uiSection      `yaml:"ui"`
	Presets []presetRecord `yaml:"presets,omitempty"`
}

type timerSection struct {
	FocusMinutes      int  `yaml:"focus_minutes"`
	ShortBreakMinutes int  `yaml:"short_break_minutes"`
	LongBreakMinutes  int  `yaml:"long_break_minutes"`
	Sessions          int  `yaml:"sessions_before_long_break"`
	AutoStart         bool `yaml:"auto_start"`
}

type soundSection struct {
	AlarmTone      string  `yaml:"alarm_tone"`
	AlarmVolume    float64 `yaml:"alarm_volume"`
	TickEnabled    bool    `yaml:"tick_enabled"`
	TickVolume     float64 `yaml:"tick_volume"`
	AmbientEnabled bool    `yaml:"ambient_enabled"`
	AmbientMode    string  `yaml:"ambient_mode"`
	AmbientVolume  float64 `yaml:"ambient_volume"`
}

type uiSection struct {
	Theme         string `yaml:"theme"`
	Notifications bool   `yaml:"notifications"`
}

type presetRecord struct {
	ID                string `yaml:"id"`
	Name              string `yaml:"name"`
	FocusMinutes      int    `yaml:"focus_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	Sessions          int    `yaml:"sessions_before_long_break"`
	AutoStart         bool   `yaml:"auto_start"`
}

// payloadV1 was a flat document from before the tick and ambient
// features existed. Missing concerns take their defaults on migration.
type payloadV1 struct {
	FocusMinutes      int     `yaml:"focus_minutes"`
	ShortBreakMinutes int     `yaml:"short_break_minutes"`
	LongBreakMinutes  int     `yaml:"long_break_minutes"`
	Sessions          int     `yaml:"sessions_before_long_break"`
	AutoStart         bool    `yaml:"auto_start"`
	AlarmTone         string  `yaml:"alarm_tone"`
	AlarmVolume       float64 `yaml:"alarm_volume"`
	Theme             string  `yaml:"theme"`
}

func decodePrefs(raw []byte) (Preferences, error) {
	var h payloadHeader
	if err := yaml.Unmarshal(raw, &h); err != nil {
		return Preferences{}, errors.Wrap(err, "parse preferences header")
	}
	switch h.Version {
	case 0, 1:
		return decodeV1(raw)
	case payloadVersion:
		return decodeV2(raw)
	default:
		return Preferences{}, errors.Errorf("preferences version %d is newer than this build", h.Version)
	}
}

func decodeV2(raw []byte) (Preferences, error) {
	var doc payloadV2
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Preferences{}, errors.Wrap(err, "parse preferences")
	}
	p := Preferences{
		Timer: timer.Config{
			FocusMinutes:            doc.Timer.FocusMinutes,
			ShortBreakMinutes:       doc.Timer.ShortBreakMinutes,
			LongBreakMinutes:        doc.Timer.LongBreakMinutes,
			SessionsBeforeLongBreak: doc.Timer.Sessions,
			AutoStart:               doc.Timer.AutoStart,
		},
		AlarmTone:      doc.Sound.AlarmTone,
		AlarmVolume:    doc.Sound.AlarmVolume,
		TickEnabled:    doc.Sound.TickEnabled,
		TickVolume:     doc.Sound.TickVolume,
		AmbientEnabled: doc.Sound.AmbientEnabled,
		AmbientMode:    doc.Sound.AmbientMode,
		AmbientVolume:  doc.Sound.AmbientVolume,
		Theme:          doc.UI.Theme,
		NotifyEnabled:  doc.UI.Notifications,
	}
	for _, rec := range doc.Presets {
		p.Presets = append(p.Presets, Preset{
			ID:   rec.ID,
			Name: rec.Name,
			Config: timer.Config{
				FocusMinutes:            rec.FocusMinutes,
				ShortBreakMinutes:       rec.ShortBreakMinutes,
				LongBreakMinutes:        rec.LongBreakMinutes,
				SessionsBeforeLongBreak: rec.Sessions,
				AutoStart:               rec.AutoStart,
			},
		})
	}
	return p, nil
}

func decodeV1(raw []byte) (Preferences, error) {
	var doc payloadV1
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Preferences{}, errors.Wrap(err, "parse legacy preferences")
	}
	p := DefaultPreferences()
	p.Timer = timer.Config{
		FocusMinutes:            doc.FocusMinutes,
		ShortBreakMinutes:       doc.ShortBreakMinutes,
		LongBreakMinutes:        doc.LongBreakMinutes,
		SessionsBeforeLongBreak: doc.Sessions,
		AutoStart:               doc.AutoStart,
	}
	if doc.AlarmTone != "" {
		p.AlarmTone = doc.AlarmTone
	}
	if doc.AlarmVolume > 0 {
		p.AlarmVolume = doc.AlarmVolume
	}
	if doc.Theme != "" {
		p.Theme = doc.Theme
	}
	return p, nil
}

func encodePrefs(p Preferences) ([]byte, error) {
	doc := payloadV2{
		Version: payloadVersion,
		Timer: timerSection{
			FocusMinutes:      p.Timer.FocusMinutes,
			ShortBreakMinutes: p.Timer.ShortBreakMinutes,
			LongBreakMinutes:  p.Timer.LongBreakMinutes,
			Sessions:          p.Timer.SessionsBeforeLongBreak,
			AutoStart:         p.Timer.AutoStart,
		},
		Sound: soundSection{
			AlarmTone:      p.AlarmTone,
			AlarmVolume:    p.AlarmVolume,
			TickEnabled:    p.TickEnabled,
			TickVolume:     p.TickVolume,
			AmbientEnabled: p.AmbientEnabled,
			AmbientMode:    p.AmbientMode,
			AmbientVolume:  p.AmbientVolume,
		},
		UI: uiSection{
			Theme:         p.Theme,
			Notifications: p.NotifyEnabled,
		},
	}
	for _, preset := range p.Presets {
		doc.Presets = append(doc.Presets, presetRecord{
			ID:                preset.ID,
			Name:              preset.Name,
			FocusMinutes:      preset.Config.FocusMinutes,
			ShortBreakMinutes: preset.Config.ShortBreakMinutes,
			LongBreakMinutes:  preset.Config.LongBreakMinutes,
			Sessions:          preset.Config.SessionsBeforeLongBreak,
			AutoStart:         preset.Config.AutoStart,
		})
	}
	raw, err := yaml.Marshal(doc)
	return raw, errors.Wrap(err, "encode preferences")
}
