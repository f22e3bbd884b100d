// Package audio renders every sound in the app procedurally: alarm
// chords, the metronome tick, and looping ambient beds. Nothing is
// decoded from assets; oscillators, noise buffers, and gain envelopes
// are scheduled directly on the output device.
package audio

import (
	"errors"
	"time"
)

// ErrUnsupported reports that the host has no audio output capability.
var ErrUnsupported = errors.New("audio output unsupported")

// ContextFactory opens the host audio device. The session defers the
// call until a user-gesture-triggered action per the platform's
// audio-unlock policy.
type ContextFactory func() (Context, error)

// Context is the subset of the output device the engine uses.
type Context interface {
	// CurrentTime is the device clock in seconds.
	CurrentTime() float64
	State() string
	Resume()
	Close()
	SampleRate() float64
	Destination() Node
	NewOscillator() Node
	NewGain() Node
	NewBiquadFilter() Node
	NewStereoPanner() Node
	NewBufferSource() Node
	NewBuffer(channels, frames int, sampleRate float64) Buffer
}

// Node is one processing node in the device graph.
type Node interface {
	Connect(dst Node)
	// ConnectParam routes this node's output into a parameter of dst,
	// the LFO-into-filter-cutoff pattern.
	ConnectParam(dst Node, param string)
	Disconnect()
	Start(when float64)
	Stop(when float64)
	// SetShape sets an oscillator waveform or a filter type.
	SetShape(shape string)
	SetBuffer(b Buffer)
	SetLoop(loop bool)
	Param(name string) Param
}

// Param is a schedulable node parameter.
type Param interface {
	SetValue(v float64)
	SetValueAtTime(v, at float64)
	LinearRampToValueAtTime(v, at float64)
	ExponentialRampToValueAtTime(v, at float64)
	SetTargetAtTime(v, at, timeConstant float64)
	CancelScheduledValues(at float64)
}

// Buffer is a block of PCM samples owned by the device.
type Buffer interface {
	CopyToChannel(samples []float64, channel int)
}

// AfterFunc schedules fn once after d and returns a cancel function.
type AfterFunc func(d time.Duration, fn func()) (cancel func())

// IntervalFunc schedules fn repeatedly every d and returns a cancel
// function.
type IntervalFunc func(d time.Duration, fn func()) (cancel func())

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
