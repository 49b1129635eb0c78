package tray

import (
	"os"
	"sync"
)

// Window is the main window as seen from the tray.
type Window interface {
	Show()
	SetFocus()
}

// Controller turns tray events into window and process lifecycle changes.
// Its methods never block and never fail.
type Controller struct {
	mu     sync.RWMutex
	window Window
	exit   func(code int)
}

// NewController returns a controller without a window. A nil exit uses
// os.Exit.
func NewController(exit func(code int)) *Controller {
	if exit == nil {
		exit = os.Exit
	}
	return &Controller{exit: exit}
}

// Attach sets the window that Show events act on. Passing nil detaches it.
func (c *Controller) Attach(w Window) {
	c.mu.Lock()
	c.window = w
	c.mu.Unlock()
}

// Dispatch handles ev. It returns the resolved action and whether it had an
// effect; a Show without an attached window is a no-op.
func (c *Controller) Dispatch(ev Event) (Action, bool) {
	action := Resolve(ev)
	switch action {
	case ActionShow:
		c.mu.RLock()
		w := c.window
		c.mu.RUnlock()
		if w == nil {
			return action, false
		}
		w.Show()
		w.SetFocus()
		return action, true
	case ActionQuit:
		c.exit(0)
		return action, true
	default:
		return action, false
	}
}
