// Package notify sends desktop notifications about endpoint outages.
package notify

import (
	"os"
	"runtime"
	"sync"

	"github.com/ncruces/zenity"
)

// Send shows a desktop notification. It is a no-op without a display.
func Send(title, message string) error {
	if !Available() {
		return nil
	}
	return zenity.Notify(message, zenity.Title(title), zenity.WarningIcon)
}

// Available returns true if native notifications can be shown.
// Always true on Windows and macOS. On Linux, requires DISPLAY or WAYLAND_DISPLAY.
func Available() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	default:
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}

// Outage notifies once when the endpoint goes offline and re-arms when it
// comes back.
type Outage struct {
	mu       sync.Mutex
	notified bool
	send     func(title, message string) error
}

// NewOutage returns an Outage that delivers through send, or Send when nil.
func NewOutage(send func(title, message string) error) *Outage {
	if send == nil {
		send = Send
	}
	return &Outage{send: send}
}

// Observe records the latest poll outcome. It returns the error from the
// notification backend, if one was sent and failed.
func (o *Outage) Observe(offline bool, lastErr error) error {
	o.mu.Lock()
	if !offline {
		o.notified = false
		o.mu.Unlock()
		return nil
	}
	if o.notified {
		o.mu.Unlock()
		return nil
	}
	o.notified = true
	o.mu.Unlock()

	message := "The status endpoint is unreachable."
	if lastErr != nil {
		message = lastErr.Error()
	}
	return o.send("RelayPulse offline", message)
}
