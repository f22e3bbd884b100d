//go:build js
// +build js

package timer

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
)

// BrowserWake returns a WakeFunc backed by setTimeout/clearTimeout.
func BrowserWake() WakeFunc {
	return func(d time.Duration, fn func()) func() {
		id := js.Global.Call("setTimeout", fn, int(d/time.Millisecond))
		return func() {
			js.Global.Call("clearTimeout", id)
		}
	}
}
