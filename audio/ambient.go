package audio

import (
	"github.com/ferrule/pomotide/common"
)

// NodeKind enumerates the node specs an ambient recipe may declare.
type NodeKind string

const (
	NodeOscillator NodeKind = "oscillator"
	NodeNoise      NodeKind = "noise"
	NodeFilter     NodeKind = "filter"
	NodeGain       NodeKind = "gain"
	NodePanner     NodeKind = "panner"
)

// NodeSpec declares one node of an ambient graph.
type NodeSpec struct {
	Name        string
	Kind        NodeKind
	Shape       string  // oscillator waveform or filter type
	Frequency   float64 // oscillator pitch, filter cutoff, or LFO rate
	Q           float64
	Gain        float64
	Detune      float64 // cents
	JitterCents float64 // deterministic per-voice detune spread
}

// Connection routes From's output into To, or into one of To's
// parameters when Param is set (the LFO-modulation pattern).
type Connection struct {
	From  string
	To    string
	Param string
}

// Recipe is a declarative ambient graph. Build and release walk the
// same spec list, keeping construction and teardown symmetric.
type Recipe struct {
	Mode        string
	Nodes       []NodeSpec
	Connections []Connection
	Output      string  // node feeding the ambient bus
	FadeSeconds float64 // linear fade-in, seconds-scale to avoid clicks
	Level       float64 // recipe trim into the bus
}

const noiseLoopSeconds = 2.0

// ambientGraph is one realized recipe. At most one exists per session.
type ambientGraph struct {
	mode    string
	order   []string
	nodes   map[string]Node
	sources []Node
	fade    Node
}

// buildAmbient realizes a recipe against the device context, fading
// it into the bus. Oscillator and noise sources start immediately;
// detune jitter comes from the mode-seeded RNG so a rebuilt mode
// voices identically.
func buildAmbient(ctx Context, r Recipe, rng *common.SeededRNG, bus Node) *ambientGraph {
	g := &ambientGraph{
		mode:  r.Mode,
		nodes: make(map[string]Node, len(r.Nodes)),
	}
	now := ctx.CurrentTime()

	for _, spec := range r.Nodes {
		var n Node
		switch spec.Kind {
		case NodeOscillator:
			n = ctx.NewOscillator()
			n.SetShape(spec.Shape)
			n.Param("frequency").SetValue(spec.Frequency)
			detune := spec.Detune
			if spec.JitterCents > 0 {
				detune += (rng.Random() - 0.5) * 2 * spec.JitterCents
			}
			if detune != 0 {
				n.Param("detune").SetValue(detune)
			}
			g.sources = append(g.sources, n)
		case NodeNoise:
			n = ctx.NewBufferSource()
			n.SetBuffer(noiseBuffer(ctx, rng))
			n.SetLoop(true)
			g.sources = append(g.sources, n)
		case NodeFilter:
			n = ctx.NewBiquadFilter()
			n.SetShape(spec.Shape)
			n.Param("frequency").SetValue(spec.Frequency)
			if spec.Q != 0 {
				n.Param("Q").SetValue(spec.Q)
			}
		case NodeGain:
			n = ctx.NewGain()
			n.Param("gain").SetValue(spec.Gain)
		case NodePanner:
			n = ctx.NewStereoPanner()
		default:
			continue
		}
		g.nodes[spec.Name] = n
		g.order = append(g.order, spec.Name)
	}

	for _, c := range r.Connections {
		src, ok := g.nodes[c.From]
		dst, ok2 := g.nodes[c.To]
		if !ok || !ok2 {
			continue
		}
		if c.Param != "" {
			src.ConnectParam(dst, c.Param)
		} else {
			src.Connect(dst)
		}
	}

	g.fade = ctx.NewGain()
	gain := g.fade.Param("gain")
	gain.SetValueAtTime(0, now)
	gain.LinearRampToValueAtTime(r.Level, now+r.FadeSeconds)
	if out, ok := g.nodes[r.Output]; ok {
		out.Connect(g.fade)
	}
	g.fade.Connect(bus)

	for _, src := range g.sources {
		src.Start(now)
	}
	return g
}

// release stops every source and disconnects every node the build
// created, LFO helpers included. Safe to call exactly once.
func (g *ambientGraph) release() {
	for _, src := range g.sources {
		src.Stop(0)
	}
	for _, name := range g.order {
		g.nodes[name].Disconnect()
	}
	g.fade.Disconnect()
}

// noiseBuffer renders a seeded noise loop on the device.
func noiseBuffer(ctx Context, rng *common.SeededRNG) Buffer {
	rate := ctx.SampleRate()
	frames := int(rate * noiseLoopSeconds)
	samples := make([]float64, frames)
	for i := range samples {
		samples[i] = rng.Random()*2 - 1
	}
	buf := ctx.NewBuffer(1, frames, rate)
	buf.CopyToChannel(samples, 0)
	return buf
}
