package audio

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ferrule/pomotide/common"
)

const (
	masterLevel        = 0.9
	gainSmoothing      = 0.05 // SetTargetAtTime time constant, seconds
	alarmReleaseMargin = 0.25 // slack after a preset's lifetime, seconds
	tickStopSlack      = 0.02
)

// Session owns the output device and the three buses hanging off it:
// alarms, the tick loop, and the ambient bed. The device opens lazily
// on first use because browsers refuse audio before a user gesture.
type Session struct {
	factory  ContextFactory
	after    AfterFunc
	interval IntervalFunc

	ctx       Context
	probed    bool
	supported bool

	master     Node
	alarmBus   Node
	tickBus    Node
	ambientBus Node

	tickBuffer Buffer
	tickCancel func()
	lastPulse  Node

	ambient  *ambientGraph
	baseSeed uint32
}

// NewSession wires a session over the given device factory and host
// timers. Nothing touches the device until Ensure.
func NewSession(factory ContextFactory, after AfterFunc, interval IntervalFunc) *Session {
	return &Session{
		factory:  factory,
		after:    after,
		interval: interval,
		baseSeed: uint32(time.Now().UnixNano()),
	}
}

// Supported reports whether the host can produce sound. Optimistic
// until the first Ensure probes the device.
func (s *Session) Supported() bool {
	return !s.probed || s.supported
}

// Ensure opens the device on first call and resumes it if the host
// suspended it. Idempotent; once the probe fails the session stays a
// silent no-op for its lifetime.
func (s *Session) Ensure() error {
	if s.ctx != nil {
		s.resumeIfSuspended()
		return nil
	}
	if s.probed && !s.supported {
		return ErrUnsupported
	}
	ctx, err := s.factory()
	s.probed = true
	if err != nil {
		s.supported = false
		log.Warn().Err(err).Msg("audio device unavailable, muting session")
		return ErrUnsupported
	}
	s.supported = true
	s.ctx = ctx

	s.master = ctx.NewGain()
	s.master.Param("gain").SetValue(masterLevel)
	s.master.Connect(ctx.Destination())

	s.alarmBus = s.newBus(1)
	s.tickBus = s.newBus(1)
	s.ambientBus = s.newBus(1)

	log.Debug().Float64("sampleRate", ctx.SampleRate()).Msg("audio device opened")
	return nil
}

func (s *Session) newBus(level float64) Node {
	bus := s.ctx.NewGain()
	bus.Param("gain").SetValue(level)
	bus.Connect(s.master)
	return bus
}

func (s *Session) resumeIfSuspended() {
	if s.ctx != nil && s.ctx.State() == "suspended" {
		s.ctx.Resume()
	}
}

// PlayAlarm fires a one-shot alarm preset at the given volume. The
// whole shot hangs off its own gain so overlapping alarms don't fight
// over levels, and the chain is released once its lifetime elapses.
func (s *Session) PlayAlarm(name string, volume float64) {
	if s.Ensure() != nil {
		return
	}
	preset := AlarmPreset(name)

	shot := s.ctx.NewGain()
	shot.Param("gain").SetValue(clampUnit(volume))
	shot.Connect(s.alarmBus)

	base := s.ctx.CurrentTime()
	nodes := []Node{shot}
	for _, e := range preset.Events {
		osc, env := scheduleTone(s.ctx, shot, e, base)
		nodes = append(nodes, osc, env)
	}

	lifetime := secondsToDuration(preset.TotalDuration() + alarmReleaseMargin)
	s.after(lifetime, func() {
		for _, n := range nodes {
			n.Disconnect()
		}
	})
}

// StartTicking begins the once-per-second click loop. Idempotent while
// already ticking; volume changes go through SetTickVolume.
func (s *Session) StartTicking(volume float64) {
	if s.tickCancel != nil {
		return
	}
	if s.Ensure() != nil {
		return
	}
	s.tickBus.Param("gain").SetValue(clampUnit(volume))
	if s.tickBuffer == nil {
		rate := s.ctx.SampleRate()
		samples := tickSamples(rate)
		s.tickBuffer = s.ctx.NewBuffer(1, len(samples), rate)
		s.tickBuffer.CopyToChannel(samples, 0)
	}
	s.tickCancel = s.interval(time.Second, s.playTickPulse)
	s.playTickPulse()
}

// StopTicking halts the click loop and releases the in-flight pulse.
func (s *Session) StopTicking() {
	if s.tickCancel == nil {
		return
	}
	s.tickCancel()
	s.tickCancel = nil
	s.releaseLastPulse()
}

func (s *Session) playTickPulse() {
	s.releaseLastPulse()
	src := s.ctx.NewBufferSource()
	src.SetBuffer(s.tickBuffer)
	src.Connect(s.tickBus)
	now := s.ctx.CurrentTime()
	src.Start(now)
	src.Stop(now + tickPulseSeconds + tickStopSlack)
	s.lastPulse = src
}

func (s *Session) releaseLastPulse() {
	if s.lastPulse != nil {
		s.lastPulse.Disconnect()
		s.lastPulse = nil
	}
}

// SetTickVolume retargets the tick bus so a live loop follows the
// slider without zipper noise.
func (s *Session) SetTickVolume(volume float64) {
	if s.ctx == nil {
		return
	}
	s.retarget(s.tickBus, clampUnit(volume))
}

// StartAmbient plays the named ambient bed. Restarting the active mode
// only retargets the bus volume; switching modes releases the old
// graph in full before the new one builds.
func (s *Session) StartAmbient(mode string, volume float64) {
	if s.Ensure() != nil {
		return
	}
	volume = clampUnit(volume)
	if s.ambient != nil && s.ambient.mode == mode {
		s.retarget(s.ambientBus, volume)
		return
	}
	if s.ambient != nil {
		s.ambient.release()
		s.ambient = nil
	}
	s.ambientBus.Param("gain").SetValue(volume)
	recipe := AmbientRecipe(mode)
	rng := common.NewSeededRNG(common.ModeSeed(s.baseSeed, recipe.Mode))
	s.ambient = buildAmbient(s.ctx, recipe, rng, s.ambientBus)
	log.Debug().Str("mode", recipe.Mode).Msg("ambient bed started")
}

// StopAmbient releases the active ambient graph, if any.
func (s *Session) StopAmbient() {
	if s.ambient == nil {
		return
	}
	s.ambient.release()
	s.ambient = nil
}

// SetAmbientVolume retargets the ambient bus level.
func (s *Session) SetAmbientVolume(volume float64) {
	if s.ctx == nil {
		return
	}
	s.retarget(s.ambientBus, clampUnit(volume))
}

// ActiveAmbient returns the playing mode, or "" when silent.
func (s *Session) ActiveAmbient() string {
	if s.ambient == nil {
		return ""
	}
	return s.ambient.mode
}

func (s *Session) retarget(bus Node, v float64) {
	bus.Param("gain").SetTargetAtTime(v, s.ctx.CurrentTime(), gainSmoothing)
}

// Teardown stops every voice, detaches the buses, and closes the
// device. The session can be re-ensured afterwards.
func (s *Session) Teardown() {
	s.StopTicking()
	s.StopAmbient()
	if s.ctx == nil {
		return
	}
	for _, bus := range []Node{s.alarmBus, s.tickBus, s.ambientBus, s.master} {
		bus.Disconnect()
	}
	s.ctx.Close()
	s.ctx = nil
	s.probed = false
	s.master = nil
	s.alarmBus = nil
	s.tickBus = nil
	s.ambientBus = nil
	s.tickBuffer = nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
