//go:build js

package notify

import "github.com/gopherjs/gopherjs/js"

// Browser returns a Notifier over the Notification API, or Disabled
// when the host has none.
func Browser() Notifier {
	if js.Global.Get("Notification") == js.Undefined {
		return Disabled()
	}
	return &browserNotifier{}
}

type browserNotifier struct{}

func (n *browserNotifier) Supported() bool { return true }

func (n *browserNotifier) Permitted() bool {
	return js.Global.Get("Notification").Get("permission").String() == "granted"
}

func (n *browserNotifier) RequestPermission() {
	if js.Global.Get("Notification").Get("permission").String() == "default" {
		js.Global.Get("Notification").Call("requestPermission")
	}
}

func (n *browserNotifier) Notify(title, body string) {
	if !n.Permitted() {
		return
	}
	js.Global.Get("Notification").New(title, map[string]interface{}{
		"body": body,
	})
}
