//go:build !cgo && !windows

package tray

import "sync"

// The native tray needs cgo outside Windows (getlantern/systray). Builds
// without it have no icon; Run still drives the onReady/onExit lifecycle.

// Available reports whether this build has a native tray.
const Available = false

var (
	quitOnce sync.Once
	quitCh   = make(chan struct{})
)

// Run calls onReady, blocks until Quit, then calls onExit.
func Run(c *Controller, onReady, onExit func()) {
	if onReady != nil {
		onReady()
	}
	<-quitCh
	if onExit != nil {
		onExit()
	}
}

// Quit releases Run.
func Quit() {
	quitOnce.Do(func() { close(quitCh) })
}
