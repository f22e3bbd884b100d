// Package notify posts host desktop notifications when a phase ends.
// Capability and permission are probed per host; everything degrades
// to a silent no-op.
package notify

// Notifier is the host notification surface.
type Notifier interface {
	// Supported reports whether the host has a notification facility.
	Supported() bool
	// Permitted reports whether the user has granted permission.
	Permitted() bool
	// RequestPermission asks the host for permission; safe to call
	// repeatedly. The answer arrives asynchronously via Permitted.
	RequestPermission()
	// Notify posts a notification. A no-op without permission.
	Notify(title, body string)
}

// Disabled returns a Notifier that supports nothing. Used when the
// host probe fails and in tests.
func Disabled() Notifier {
	return disabled{}
}

type disabled struct{}

func (disabled) Supported() bool           { return false }
func (disabled) Permitted() bool           { return false }
func (disabled) RequestPermission()        {}
func (disabled) Notify(title, body string) {}
