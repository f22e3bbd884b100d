package audio

import "math"

// Tick pulse shape: a short decaying click, a fixed-frequency sine
// under an exponential decay envelope.
const (
	tickPulseSeconds = 0.12
	tickPulseHz      = 1850.0
	tickPulseDecay   = 42.0 // envelope decay constant, 1/s
)

// tickSamples renders the click used by the tick loop. The same
// render is reused for every pulse; only the gain differs.
func tickSamples(sampleRate float64) []float64 {
	n := int(sampleRate * tickPulseSeconds)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = math.Sin(2*math.Pi*tickPulseHz*t) * math.Exp(-t*tickPulseDecay)
	}
	return out
}
