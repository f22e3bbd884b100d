// Package app wires the timer machine, the countdown scheduler, the
// audio session, notifications, and preference persistence into one
// controller the UI layer drives.
package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ferrule/pomotide/audio"
	"github.com/ferrule/pomotide/notify"
	"github.com/ferrule/pomotide/store"
	"github.com/ferrule/pomotide/timer"
)

// Options carries the host-specific pieces. Tests substitute fakes;
// the browser build passes the real device, wake, and medium.
type Options struct {
	Clock    timer.Clock
	Wake     timer.WakeFunc
	Audio    *audio.Session
	Notifier notify.Notifier
	Store    *store.Store
}

// App is the controller. All methods are meant for the single UI
// goroutine; nothing here is safe for concurrent use.
type App struct {
	machine   *timer.Machine
	scheduler *timer.Scheduler
	sound     *audio.Session
	notifier  notify.Notifier
	store     *store.Store
	prefs     store.Preferences
}

// New loads preferences and assembles the controller. The timer sits
// idle on a full focus phase until the user starts it.
func New(opts Options) (*App, error) {
	prefs, err := opts.Store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("loading preferences failed, using defaults")
		prefs = store.DefaultPreferences()
	}

	a := &App{
		sound:    opts.Audio,
		notifier: opts.Notifier,
		store:    opts.Store,
		prefs:    prefs,
	}
	a.machine = timer.NewMachine(prefs.Timer, opts.Clock)
	a.scheduler = timer.NewScheduler(a.machine, opts.Clock, opts.Wake)
	a.scheduler.OnComplete = a.handlePhaseComplete
	a.machine.OnChange(a.syncSound)
	return a, nil
}

// OnTick registers the display callback for live remaining time.
func (a *App) OnTick(fn func(remaining time.Duration)) {
	a.scheduler.OnTick = fn
}

// OnChange registers a callback for timer state transitions.
func (a *App) OnChange(fn timer.Listener) {
	a.machine.OnChange(fn)
}

// Snapshot returns the current timer state.
func (a *App) Snapshot() timer.Snapshot {
	return a.machine.Snapshot()
}

// Preferences returns the current settings.
func (a *App) Preferences() store.Preferences {
	return a.prefs
}

// Theme returns the active palette.
func (a *App) Theme() Palette {
	return ThemePalette(a.prefs.Theme)
}

// Prime runs inside a user-gesture handler. It unlocks the audio
// device while the host still allows it and raises the notification
// permission prompt when notifications are wanted.
func (a *App) Prime() {
	if err := a.sound.Ensure(); err != nil {
		log.Debug().Err(err).Msg("audio stays muted")
	}
	if a.prefs.NotifyEnabled {
		a.notifier.RequestPermission()
	}
}

// Timer controls.

func (a *App) Start() {
	a.Prime()
	a.machine.Start()
}

func (a *App) Pause()  { a.machine.Pause() }
func (a *App) Resume() { a.Prime(); a.machine.Resume() }
func (a *App) Reset()  { a.machine.Reset() }
func (a *App) Skip()   { a.machine.Skip() }

// handlePhaseComplete plays the alarm and posts a notification for
// the phase that just finished, then lets the machine transition.
func (a *App) handlePhaseComplete(finished timer.Phase) {
	a.sound.PlayAlarm(a.prefs.AlarmTone, a.prefs.AlarmVolume)
	if a.prefs.NotifyEnabled {
		title, body := phaseMessage(finished)
		a.notifier.Notify(title, body)
	}
}

func phaseMessage(finished timer.Phase) (title, body string) {
	if finished.IsBreak() {
		return "Break over", "Time to focus."
	}
	return "Focus complete", "Time for a break."
}

// syncSound follows timer transitions: the tick loop runs only while
// the countdown runs, and the ambient bed only during a running focus
// phase.
func (a *App) syncSound(snap timer.Snapshot) {
	running := snap.Status == timer.StatusRunning

	if running && a.prefs.TickEnabled {
		a.sound.StartTicking(a.prefs.TickVolume)
	} else {
		a.sound.StopTicking()
	}

	if running && a.prefs.AmbientEnabled && !snap.Phase.IsBreak() {
		a.sound.StartAmbient(a.prefs.AmbientMode, a.prefs.AmbientVolume)
	} else {
		a.sound.StopAmbient()
	}
}

// UpdateTimerConfig applies a settings change. The machine clamps
// through the same limits the store enforces, so what runs always
// matches what persists.
func (a *App) UpdateTimerConfig(patch timer.Patch) error {
	a.machine.UpdateConfig(patch)
	a.prefs.Timer = a.machine.Snapshot().Config
	a.prefs = store.Sanitize(a.prefs)
	if a.prefs.Timer != a.machine.Snapshot().Config {
		a.machine.UpdateConfig(timer.PatchFrom(a.prefs.Timer))
	}
	return a.save()
}

// Sound and UI settings. Each mutator persists and pushes the change
// into any live voice.

func (a *App) SetAlarmTone(name string) error {
	a.prefs.AlarmTone = name
	return a.save()
}

func (a *App) SetAlarmVolume(v float64) error {
	a.prefs.AlarmVolume = v
	return a.save()
}

// PreviewAlarm plays the configured alarm once, for the settings UI.
func (a *App) PreviewAlarm() {
	a.sound.PlayAlarm(a.prefs.AlarmTone, a.prefs.AlarmVolume)
}

func (a *App) SetTickEnabled(enabled bool) error {
	a.prefs.TickEnabled = enabled
	a.syncSound(a.machine.Snapshot())
	return a.save()
}

func (a *App) SetTickVolume(v float64) error {
	a.prefs.TickVolume = v
	a.sound.SetTickVolume(v)
	return a.save()
}

func (a *App) SetAmbientEnabled(enabled bool) error {
	a.prefs.AmbientEnabled = enabled
	a.syncSound(a.machine.Snapshot())
	return a.save()
}

func (a *App) SetAmbientMode(mode string) error {
	a.prefs.AmbientMode = mode
	a.syncSound(a.machine.Snapshot())
	return a.save()
}

func (a *App) SetAmbientVolume(v float64) error {
	a.prefs.AmbientVolume = v
	a.sound.SetAmbientVolume(v)
	return a.save()
}

func (a *App) SetTheme(name string) error {
	a.prefs.Theme = name
	return a.save()
}

func (a *App) SetNotifyEnabled(enabled bool) error {
	a.prefs.NotifyEnabled = enabled
	if enabled {
		a.notifier.RequestPermission()
	}
	return a.save()
}

// Preset operations.

func (a *App) SavePreset(name string) (store.Preset, error) {
	return a.store.AddPreset(&a.prefs, name, a.prefs.Timer)
}

func (a *App) RenamePreset(id, name string) error {
	return a.store.RenamePreset(&a.prefs, id, name)
}

func (a *App) DeletePreset(id string) error {
	return a.store.DeletePreset(&a.prefs, id)
}

// LoadPreset swaps the timer configuration for the preset's and resets
// the countdown so the new lengths take effect immediately.
func (a *App) LoadPreset(id string) error {
	preset, ok := store.FindPreset(a.prefs, id)
	if !ok {
		return store.ErrPresetNotFound
	}
	if err := a.UpdateTimerConfig(timer.PatchFrom(preset.Config)); err != nil {
		return err
	}
	a.machine.Reset()
	return nil
}

// Teardown releases the audio device and stops the countdown loop.
// Called from the page unload hook.
func (a *App) Teardown() {
	a.scheduler.Disarm()
	a.sound.Teardown()
}

func (a *App) save() error {
	if err := a.store.Save(a.prefs); err != nil {
		log.Warn().Err(err).Msg("persisting preferences failed")
		return err
	}
	return nil
}

// FormatClock renders a remaining duration as mm:ss, rounding up so
// the display only shows 00:00 once the phase is truly over.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	secs := int((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
