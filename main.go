//go:build js
// +build js

package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ferrule/pomotide/app"
	"github.com/ferrule/pomotide/audio"
	"github.com/ferrule/pomotide/notify"
	"github.com/ferrule/pomotide/store"
	"github.com/ferrule/pomotide/timer"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var medium store.Medium
	if m, err := store.NewLocalMedium(); err == nil {
		medium = m
	} else {
		log.Warn().Err(err).Msg("preferences will not survive reload")
		medium = &memoryMedium{}
	}

	session := audio.NewSession(audio.WebContextFactory(), audio.BrowserAfter(), audio.BrowserInterval())

	a, err := app.New(app.Options{
		Clock:    timer.SystemClock(),
		Wake:     timer.BrowserWake(),
		Audio:    session,
		Notifier: notify.Browser(),
		Store:    store.NewStore(medium),
	})
	if err != nil {
		panic(err)
	}

	doc := js.Global.Get("document")
	timeEl := doc.Call("getElementById", "time")
	phaseEl := doc.Call("getElementById", "phase")
	countEl := doc.Call("getElementById", "sessions")
	if !present(timeEl) {
		panic("time element not found")
	}

	setClock := func(remaining time.Duration, phase timer.Phase) {
		clock := app.FormatClock(remaining)
		timeEl.Set("textContent", clock)
		doc.Set("title", clock+" · "+phaseLabel(phase))
	}

	render := func(snap timer.Snapshot) {
		applyTheme(doc, a.Theme())
		if present(phaseEl) {
			phaseEl.Set("textContent", phaseLabel(snap.Phase))
			phaseEl.Call("setAttribute", "data-phase", string(snap.Phase))
		}
		if present(countEl) {
			countEl.Set("textContent", strconv.Itoa(snap.CompletedFocus))
		}
		setClock(snap.Remaining, snap.Phase)
	}

	a.OnTick(func(remaining time.Duration) {
		setClock(remaining, a.Snapshot().Phase)
	})
	a.OnChange(render)
	render(a.Snapshot())

	check := func(err error) {
		if err != nil {
			log.Error().Err(err).Msg("settings update failed")
		}
	}

	// Control surface for the page scripts.
	js.Global.Set("Pomotide", map[string]interface{}{
		"start":  func() { a.Start() },
		"pause":  func() { a.Pause() },
		"resume": func() { a.Resume() },
		"reset":  func() { a.Reset() },
		"skip":   func() { a.Skip() },

		"previewAlarm": func() { a.Prime(); a.PreviewAlarm() },

		"setTimer": func(focus, short, long, sessions int, autoStart bool) {
			check(a.UpdateTimerConfig(timer.Patch{
				FocusMinutes:            &focus,
				ShortBreakMinutes:       &short,
				LongBreakMinutes:        &long,
				SessionsBeforeLongBreak: &sessions,
				AutoStart:               &autoStart,
			}))
		},

		"setAlarmTone":      func(name string) { check(a.SetAlarmTone(name)) },
		"setAlarmVolume":    func(v float64) { check(a.SetAlarmVolume(v)) },
		"setTickEnabled":    func(on bool) { check(a.SetTickEnabled(on)) },
		"setTickVolume":     func(v float64) { check(a.SetTickVolume(v)) },
		"setAmbientEnabled": func(on bool) { check(a.SetAmbientEnabled(on)) },
		"setAmbientMode":    func(mode string) { check(a.SetAmbientMode(mode)) },
		"setAmbientVolume":  func(v float64) { check(a.SetAmbientVolume(v)) },
		"setTheme":          func(name string) { check(a.SetTheme(name)); render(a.Snapshot()) },
		"setNotifications":  func(on bool) { check(a.SetNotifyEnabled(on)) },

		"savePreset": func(name string) string {
			preset, err := a.SavePreset(name)
			check(err)
			return preset.ID
		},
		"loadPreset":   func(id string) { check(a.LoadPreset(id)) },
		"renamePreset": func(id, name string) { check(a.RenamePreset(id, name)) },
		"deletePreset": func(id string) { check(a.DeletePreset(id)) },
		"presets":      func() []map[string]interface{} { return presetList(a) },

		"themes":       app.ThemeNames,
		"alarmTones":   audio.AlarmNames,
		"ambientModes": audio.AmbientNames,
	})

	js.Global.Call("addEventListener", "beforeunload", func() {
		a.Teardown()
	})

	select {}
}

func present(o *js.Object) bool {
	return o != nil && o != js.Undefined && o.Interface() != nil
}

func phaseLabel(p timer.Phase) string {
	switch p {
	case timer.PhaseShortBreak:
		return "Short break"
	case timer.PhaseLongBreak:
		return "Long break"
	default:
		return "Focus"
	}
}

func presetList(a *app.App) []map[string]interface{} {
	prefs := a.Preferences()
	out := make([]map[string]interface{}, 0, len(prefs.Presets))
	for _, p := range prefs.Presets {
		out = append(out, map[string]interface{}{
			"id":       p.ID,
			"name":     p.Name,
			"focus":    p.Config.FocusMinutes,
			"short":    p.Config.ShortBreakMinutes,
			"long":     p.Config.LongBreakMinutes,
			"sessions": p.Config.SessionsBeforeLongBreak,
		})
	}
	return out
}

// applyTheme pushes the palette into CSS custom properties so the
// stylesheet stays in charge of layout.
func applyTheme(doc *js.Object, p app.Palette) {
	style := doc.Get("documentElement").Get("style")
	set := func(name, value string) {
		style.Call("setProperty", name, value)
	}
	set("--background", p.Background)
	set("--surface", p.Surface)
	set("--dial-track", p.DialTrack)
	set("--dial-focus", p.DialFocus)
	set("--dial-break", p.DialBreak)
	set("--dial-glow", p.DialGlow)
	set("--time-color", p.TimeColor)
	set("--label-color", p.LabelColor)
	set("--text-secondary", p.TextSecondary)
	set("--button-fill", p.ButtonFill)
	set("--button-border", p.ButtonBorder)
	set("--accent", p.Accent)
	set("--time-font", p.TimeFont)
	set("--label-font", p.LabelFont)
}

// memoryMedium keeps preferences for the page lifetime only, used
// when localStorage is unavailable (private windows, file:// pages).
type memoryMedium struct {
	raw []byte
	ok  bool
}

func (m *memoryMedium) Read() ([]byte, error) {
	if !m.ok {
		return nil, os.ErrNotExist
	}
	return m.raw, nil
}

func (m *memoryMedium) Write(raw []byte) error {
	m.raw = raw
	m.ok = true
	return nil
}
