package audio

import "time"

// Recording fakes for the device interfaces. Tests drive the engine
// against these and assert on the recorded graph operations.

type paramEvent struct {
	kind         string
	value        float64
	at           float64
	timeConstant float64
}

type fakeParam struct {
	value  float64
	events []paramEvent
}

func (p *fakeParam) record(kind string, v, at, tc float64) {
	p.events = append(p.events, paramEvent{kind: kind, value: v, at: at, timeConstant: tc})
}

func (p *fakeParam) SetValue(v float64) {
	p.value = v
	p.record("set", v, 0, 0)
}

func (p *fakeParam) SetValueAtTime(v, at float64) {
	p.value = v
	p.record("setAt", v, at, 0)
}

func (p *fakeParam) LinearRampToValueAtTime(v, at float64) {
	p.record("linear", v, at, 0)
}

func (p *fakeParam) ExponentialRampToValueAtTime(v, at float64) {
	p.record("exp", v, at, 0)
}

func (p *fakeParam) SetTargetAtTime(v, at, tc float64) {
	p.record("target", v, at, tc)
}

func (p *fakeParam) CancelScheduledValues(at float64) {
	p.record("cancel", 0, at, 0)
}

func (p *fakeParam) last(kind string) (paramEvent, bool) {
	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].kind == kind {
			return p.events[i], true
		}
	}
	return paramEvent{}, false
}

type paramLink struct {
	dst   *fakeNode
	param string
}

type fakeNode struct {
	kind         string
	shape        string
	buffer       *fakeBuffer
	loop         bool
	params       map[string]*fakeParam
	targets      []*fakeNode
	paramLinks   []paramLink
	disconnected bool
	starts       []float64
	stops        []float64
}

func (n *fakeNode) Connect(dst Node)   { n.targets = append(n.targets, dst.(*fakeNode)) }
func (n *fakeNode) Disconnect()        { n.disconnected = true }
func (n *fakeNode) Start(when float64) { n.starts = append(n.starts, when) }
func (n *fakeNode) Stop(when float64)  { n.stops = append(n.stops, when) }
func (n *fakeNode) SetShape(s string)  { n.shape = s }
func (n *fakeNode) SetBuffer(b Buffer) { n.buffer = b.(*fakeBuffer) }
func (n *fakeNode) SetLoop(loop bool)  { n.loop = loop }

func (n *fakeNode) ConnectParam(dst Node, param string) {
	n.paramLinks = append(n.paramLinks, paramLink{dst: dst.(*fakeNode), param: param})
}

func (n *fakeNode) Param(name string) Param {
	if n.params == nil {
		n.params = make(map[string]*fakeParam)
	}
	if p, ok := n.params[name]; ok {
		return p
	}
	p := &fakeParam{}
	n.params[name] = p
	return p
}

func (n *fakeNode) param(name string) *fakeParam {
	return n.Param(name).(*fakeParam)
}

func (n *fakeNode) connectsTo(dst *fakeNode) bool {
	for _, t := range n.targets {
		if t == dst {
			return true
		}
	}
	return false
}

type fakeBuffer struct {
	channels int
	frames   int
	rate     float64
	data     [][]float64
}

func (b *fakeBuffer) CopyToChannel(samples []float64, channel int) {
	copy(b.data[channel], samples)
}

type fakeContext struct {
	now     float64
	rate    float64
	state   string
	resumed int
	closed  bool
	dest    *fakeNode
	nodes   []*fakeNode
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		rate:  48000,
		state: "running",
		dest:  &fakeNode{kind: "destination"},
	}
}

func (c *fakeContext) newNode(kind string) *fakeNode {
	n := &fakeNode{kind: kind}
	c.nodes = append(c.nodes, n)
	return n
}

func (c *fakeContext) CurrentTime() float64  { return c.now }
func (c *fakeContext) State() string         { return c.state }
func (c *fakeContext) Resume()               { c.resumed++; c.state = "running" }
func (c *fakeContext) Close()                { c.closed = true }
func (c *fakeContext) SampleRate() float64   { return c.rate }
func (c *fakeContext) Destination() Node     { return c.dest }
func (c *fakeContext) NewOscillator() Node   { return c.newNode("oscillator") }
func (c *fakeContext) NewGain() Node         { return c.newNode("gain") }
func (c *fakeContext) NewBiquadFilter() Node { return c.newNode("filter") }
func (c *fakeContext) NewStereoPanner() Node { return c.newNode("panner") }
func (c *fakeContext) NewBufferSource() Node { return c.newNode("bufferSource") }

func (c *fakeContext) NewBuffer(channels, frames int, sampleRate float64) Buffer {
	b := &fakeBuffer{channels: channels, frames: frames, rate: sampleRate}
	b.data = make([][]float64, channels)
	for i := range b.data {
		b.data[i] = make([]float64, frames)
	}
	return b
}

func (c *fakeContext) nodesOf(kind string) []*fakeNode {
	var out []*fakeNode
	for _, n := range c.nodes {
		if n.kind == kind {
			out = append(out, n)
		}
	}
	return out
}

type fakeJob struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

type fakeScheduler struct {
	afters    []*fakeJob
	intervals []*fakeJob
}

func (s *fakeScheduler) after(d time.Duration, fn func()) func() {
	j := &fakeJob{d: d, fn: fn}
	s.afters = append(s.afters, j)
	return func() { j.cancelled = true }
}

func (s *fakeScheduler) interval(d time.Duration, fn func()) func() {
	j := &fakeJob{d: d, fn: fn}
	s.intervals = append(s.intervals, j)
	return func() { j.cancelled = true }
}

func (s *fakeScheduler) liveIntervals() []*fakeJob {
	var out []*fakeJob
	for _, j := range s.intervals {
		if !j.cancelled {
			out = append(out, j)
		}
	}
	return out
}

func newTestSession() (*Session, *fakeContext, *fakeScheduler) {
	ctx := newFakeContext()
	sched := &fakeScheduler{}
	s := NewSession(func() (Context, error) { return ctx, nil }, sched.after, sched.interval)
	s.baseSeed = 7
	return s, ctx, sched
}
