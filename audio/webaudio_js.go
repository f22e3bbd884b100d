//go:build js
// +build js

package audio

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
)

// WebContextFactory probes the browser AudioContext constructor,
// falling back to the webkit-prefixed one, and reports ErrUnsupported
// when neither exists.
func WebContextFactory() ContextFactory {
	return func() (Context, error) {
		ctor := js.Global.Get("AudioContext")
		if ctor == nil || ctor == js.Undefined {
			ctor = js.Global.Get("webkitAudioContext")
		}
		if ctor == nil || ctor == js.Undefined {
			return nil, ErrUnsupported
		}
		return &webContext{obj: ctor.New()}, nil
	}
}

// BrowserAfter returns an AfterFunc backed by setTimeout.
func BrowserAfter() AfterFunc {
	return func(d time.Duration, fn func()) func() {
		id := js.Global.Call("setTimeout", fn, int(d/time.Millisecond))
		return func() { js.Global.Call("clearTimeout", id) }
	}
}

// BrowserInterval returns an IntervalFunc backed by setInterval.
func BrowserInterval() IntervalFunc {
	return func(d time.Duration, fn func()) func() {
		id := js.Global.Call("setInterval", fn, int(d/time.Millisecond))
		return func() { js.Global.Call("clearInterval", id) }
	}
}

type webContext struct {
	obj *js.Object
}

func (c *webContext) CurrentTime() float64 { return c.obj.Get("currentTime").Float() }
func (c *webContext) State() string        { return c.obj.Get("state").String() }
func (c *webContext) Resume()              { c.obj.Call("resume") }
func (c *webContext) Close()               { c.obj.Call("close") }
func (c *webContext) SampleRate() float64  { return c.obj.Get("sampleRate").Float() }

func (c *webContext) Destination() Node {
	return &webNode{obj: c.obj.Get("destination")}
}

func (c *webContext) NewOscillator() Node {
	return &webNode{obj: c.obj.Call("createOscillator")}
}

func (c *webContext) NewGain() Node {
	return &webNode{obj: c.obj.Call("createGain")}
}

func (c *webContext) NewBiquadFilter() Node {
	return &webNode{obj: c.obj.Call("createBiquadFilter")}
}

func (c *webContext) NewStereoPanner() Node {
	return &webNode{obj: c.obj.Call("createStereoPanner")}
}

func (c *webContext) NewBufferSource() Node {
	return &webNode{obj: c.obj.Call("createBufferSource")}
}

func (c *webContext) NewBuffer(channels, frames int, sampleRate float64) Buffer {
	return &webBuffer{obj: c.obj.Call("createBuffer", channels, frames, sampleRate)}
}

type webNode struct {
	obj *js.Object
}

func (n *webNode) Connect(dst Node) {
	n.obj.Call("connect", dst.(*webNode).obj)
}

func (n *webNode) ConnectParam(dst Node, param string) {
	n.obj.Call("connect", dst.(*webNode).obj.Get(param))
}

func (n *webNode) Disconnect() {
	n.obj.Call("disconnect")
}

func (n *webNode) Start(when float64) {
	n.obj.Call("start", when)
}

func (n *webNode) Stop(when float64) {
	n.obj.Call("stop", when)
}

func (n *webNode) SetShape(shape string) {
	n.obj.Set("type", shape)
}

func (n *webNode) SetBuffer(b Buffer) {
	n.obj.Set("buffer", b.(*webBuffer).obj)
}

func (n *webNode) SetLoop(loop bool) {
	n.obj.Set("loop", loop)
}

func (n *webNode) Param(name string) Param {
	return &webParam{obj: n.obj.Get(name)}
}

type webParam struct {
	obj *js.Object
}

func (p *webParam) SetValue(v float64) {
	p.obj.Set("value", v)
}

func (p *webParam) SetValueAtTime(v, at float64) {
	p.obj.Call("setValueAtTime", v, at)
}

func (p *webParam) LinearRampToValueAtTime(v, at float64) {
	p.obj.Call("linearRampToValueAtTime", v, at)
}

func (p *webParam) ExponentialRampToValueAtTime(v, at float64) {
	p.obj.Call("exponentialRampToValueAtTime", v, at)
}

func (p *webParam) SetTargetAtTime(v, at, timeConstant float64) {
	p.obj.Call("setTargetAtTime", v, at, timeConstant)
}

func (p *webParam) CancelScheduledValues(at float64) {
	p.obj.Call("cancelScheduledValues", at)
}

type webBuffer struct {
	obj *js.Object
}

func (b *webBuffer) CopyToChannel(samples []float64, channel int) {
	data := b.obj.Call("getChannelData", channel)
	for i, s := range samples {
		data.SetIndex(i, s)
	}
}
