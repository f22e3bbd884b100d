package audio

// DefaultAlarm is the preset used when a stored tone name is unknown.
const DefaultAlarm = "brightPulse"

// AlarmPresets holds every built-in alarm sound. Frequencies are
// chord tones; staggered offsets turn each preset into a short
// arpeggio rather than a single block chord.
var AlarmPresets = map[string]TonePreset{
	"brightPulse": {
		Name: "brightPulse",
		Events: []ToneEvent{
			{Frequency: 880.00, Offset: 0, Duration: 0.22, Wave: WaveTriangle, Attack: 0.01, Decay: 0.25},
			{Frequency: 1108.73, Offset: 0.12, Duration: 0.22, Wave: WaveTriangle, Attack: 0.01, Decay: 0.25},
			{Frequency: 1318.51, Offset: 0.24, Duration: 0.30, Wave: WaveTriangle, Attack: 0.01, Decay: 0.40},
		},
	},
	"mellowChime": {
		Name: "mellowChime",
		Events: []ToneEvent{
			{Frequency: 659.25, Offset: 0, Duration: 0.30, Wave: WaveSine, Attack: 0.02, Decay: 0.50},
			{Frequency: 523.25, Offset: 0.25, Duration: 0.40, Wave: WaveSine, Attack: 0.02, Decay: 0.70},
		},
	},
	"deepBell": {
		Name: "deepBell",
		Events: []ToneEvent{
			{Frequency: 220.00, Offset: 0, Duration: 0.50, Wave: WaveSine, Attack: 0.01, Decay: 1.40},
			{Frequency: 440.00, Offset: 0, Duration: 0.40, Wave: WaveSine, Attack: 0.01, Decay: 1.10, Detune: 4},
			{Frequency: 660.00, Offset: 0.03, Duration: 0.20, Wave: WaveSine, Attack: 0.01, Decay: 0.60, Detune: -3},
		},
	},
	"softTicktock": {
		Name: "softTicktock",
		Events: []ToneEvent{
			{Frequency: 987.77, Offset: 0, Duration: 0.10, Wave: WaveSquare, Attack: 0.005, Decay: 0.12},
			{Frequency: 740.00, Offset: 0.20, Duration: 0.10, Wave: WaveSquare, Attack: 0.005, Decay: 0.12},
			{Frequency: 987.77, Offset: 0.40, Duration: 0.10, Wave: WaveSquare, Attack: 0.005, Decay: 0.12},
			{Frequency: 740.00, Offset: 0.60, Duration: 0.14, Wave: WaveSquare, Attack: 0.005, Decay: 0.20},
		},
	},
}

// AlarmPreset resolves a preset by name, falling back to the default.
func AlarmPreset(name string) TonePreset {
	if p, ok := AlarmPresets[name]; ok {
		return p
	}
	return AlarmPresets[DefaultAlarm]
}

// AlarmNames lists the available presets for the settings UI.
func AlarmNames() []string {
	names := make([]string, 0, len(AlarmPresets))
	for name := range AlarmPresets {
		names = append(names, name)
	}
	return names
}
