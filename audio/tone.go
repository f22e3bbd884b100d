package audio

// envelopeFloor anchors exponential gain ramps; an exponential ramp
// is undefined at exactly zero.
const envelopeFloor = 0.0001

// Oscillator waveform names accepted by the device.
const (
	WaveSine     = "sine"
	WaveTriangle = "triangle"
	WaveSquare   = "square"
	WaveSawtooth = "sawtooth"
)

// ToneEvent is one scheduled oscillator burst inside an alarm preset.
// All times are seconds.
type ToneEvent struct {
	Frequency float64 // Hz
	Offset    float64 // delay after the preset start
	Duration  float64 // time at full level before the release ramp
	Wave      string
	Attack    float64
	Decay     float64 // release after Duration
	Detune    float64 // cents, optional
}

func (e ToneEvent) end() float64 {
	return e.Offset + e.Duration + e.Decay
}

// TonePreset is a fixed ordered list of tone events composing one
// alarm sound. Staggered offsets layer the events into a chord or
// arpeggio.
type TonePreset struct {
	Name   string
	Events []ToneEvent
}

// TotalDuration is the time from preset start until the last event's
// release ramp lands back at the floor.
func (p TonePreset) TotalDuration() float64 {
	var total float64
	for _, e := range p.Events {
		if end := e.end(); end > total {
			total = end
		}
	}
	return total
}

// scheduleTone builds an oscillator with an exponential-ramp envelope
// feeding dst and schedules it at base seconds on the device clock.
// The returned nodes belong to the caller, who releases them after
// the event's lifetime elapses.
func scheduleTone(ctx Context, dst Node, e ToneEvent, base float64) (osc, env Node) {
	osc = ctx.NewOscillator()
	osc.SetShape(e.Wave)
	osc.Param("frequency").SetValue(e.Frequency)
	if e.Detune != 0 {
		osc.Param("detune").SetValue(e.Detune)
	}

	env = ctx.NewGain()
	gain := env.Param("gain")
	start := base + e.Offset
	gain.SetValueAtTime(envelopeFloor, start)
	gain.ExponentialRampToValueAtTime(1, start+e.Attack)
	gain.ExponentialRampToValueAtTime(envelopeFloor, start+e.Duration+e.Decay)

	osc.Connect(env)
	env.Connect(dst)
	osc.Start(start)
	osc.Stop(start + e.Duration + e.Decay + 0.05)
	return osc, env
}
