package audio

// DefaultAmbient is the mode used when a stored name is unknown.
const DefaultAmbient = "waves"

// AmbientRecipes holds every built-in ambient bed. Each mode drives
// the shared ambient bus through its own slow-panning LFO.
var AmbientRecipes = map[string]Recipe{
	// Filtered looping noise; a very slow LFO sweeps the lowpass
	// cutoff so the wash swells and recedes like surf.
	"waves": {
		Mode: "waves",
		Nodes: []NodeSpec{
			{Name: "noise", Kind: NodeNoise},
			{Name: "surf", Kind: NodeFilter, Shape: "lowpass", Frequency: 420, Q: 1.1},
			{Name: "swellLFO", Kind: NodeOscillator, Shape: WaveSine, Frequency: 0.07},
			{Name: "swellDepth", Kind: NodeGain, Gain: 180},
			{Name: "panLFO", Kind: NodeOscillator, Shape: WaveSine, Frequency: 0.05},
			{Name: "panDepth", Kind: NodeGain, Gain: 0.7},
			{Name: "pan", Kind: NodePanner},
		},
		Connections: []Connection{
			{From: "noise", To: "surf"},
			{From: "surf", To: "pan"},
			{From: "swellLFO", To: "swellDepth"},
			{From: "swellDepth", To: "surf", Param: "frequency"},
			{From: "panLFO", To: "panDepth"},
			{From: "panDepth", To: "pan", Param: "pan"},
		},
		Output:      "pan",
		FadeSeconds: 4,
		Level:       1,
	},
	// Tonal pad with a detuned beating pair plus a quiet shimmer
	// voice, all pushed through a wide bandpass.
	"clouds": {
		Mode: "clouds",
		Nodes: []NodeSpec{
			{Name: "padA", Kind: NodeOscillator, Shape: WaveSine, Frequency: 220, JitterCents: 6},
			{Name: "padB", Kind: NodeOscillator, Shape: WaveSine, Frequency: 220, Detune: 8, JitterCents: 6},
			{Name: "padC", Kind: NodeOscillator, Shape: WaveTriangle, Frequency: 330, JitterCents: 5},
			{Name: "shimmer", Kind: NodeOscillator, Shape: WaveSine, Frequency: 1661.22, JitterCents: 10},
			{Name: "shimmerTrim", Kind: NodeGain, Gain: 0.08},
			{Name: "band", Kind: NodeFilter, Shape: "bandpass", Frequency: 880, Q: 0.8},
			{Name: "panLFO", Kind: NodeOscillator, Shape: WaveSine, Frequency: 0.04},
			{Name: "panDepth", Kind: NodeGain, Gain: 0.6},
			{Name: "pan", Kind: NodePanner},
		},
		Connections: []Connection{
			{From: "padA", To: "band"},
			{From: "padB", To: "band"},
			{From: "padC", To: "band"},
			{From: "shimmer", To: "shimmerTrim"},
			{From: "shimmerTrim", To: "band"},
			{From: "band", To: "pan"},
			{From: "panLFO", To: "panDepth"},
			{From: "panDepth", To: "pan", Param: "pan"},
		},
		Output:      "pan",
		FadeSeconds: 6,
		Level:       0.5,
	},
	// Low drone under a highpassed noise crackle whose gain flickers
	// with its own LFO.
	"embers": {
		Mode: "embers",
		Nodes: []NodeSpec{
			{Name: "drone", Kind: NodeOscillator, Shape: WaveSawtooth, Frequency: 55, JitterCents: 4},
			{Name: "droneWarmth", Kind: NodeFilter, Shape: "lowpass", Frequency: 180, Q: 0.9},
			{Name: "noise", Kind: NodeNoise},
			{Name: "crackle", Kind: NodeFilter, Shape: "highpass", Frequency: 2400, Q: 0.7},
			{Name: "crackleTrim", Kind: NodeGain, Gain: 0.05},
			{Name: "flickerLFO", Kind: NodeOscillator, Shape: WaveSine, Frequency: 0.9},
			{Name: "flickerDepth", Kind: NodeGain, Gain: 0.03},
			{Name: "mix", Kind: NodeGain, Gain: 1},
			{Name: "panLFO", Kind: NodeOscillator, Shape: WaveSine, Frequency: 0.06},
			{Name: "panDepth", Kind: NodeGain, Gain: 0.5},
			{Name: "pan", Kind: NodePanner},
		},
		Connections: []Connection{
			{From: "drone", To: "droneWarmth"},
			{From: "droneWarmth", To: "mix"},
			{From: "noise", To: "crackle"},
			{From: "crackle", To: "crackleTrim"},
			{From: "crackleTrim", To: "mix"},
			{From: "flickerLFO", To: "flickerDepth"},
			{From: "flickerDepth", To: "crackleTrim", Param: "gain"},
			{From: "mix", To: "pan"},
			{From: "panLFO", To: "panDepth"},
			{From: "panDepth", To: "pan", Param: "pan"},
		},
		Output:      "pan",
		FadeSeconds: 5,
		Level:       0.6,
	},
}

// AmbientRecipe resolves a mode by name, falling back to the default.
func AmbientRecipe(mode string) Recipe {
	if r, ok := AmbientRecipes[mode]; ok {
		return r
	}
	return AmbientRecipes[DefaultAmbient]
}

// AmbientNames lists the available modes for the settings UI.
func AmbientNames() []string {
	names := make([]string, 0, len(AmbientRecipes))
	for name := range AmbientRecipes {
		names = append(names, name)
	}
	return names
}
