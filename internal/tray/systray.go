//go:build cgo || windows

package tray

import (
	"log"

	"github.com/getlantern/systray"
)

// Available reports whether this build has a native tray.
const Available = true

// Run starts the system tray and blocks until it exits. It must be called
// from the main goroutine (Cocoa requirement on macOS). onReady runs once the
// icon and menu exist; onExit runs when the tray loop stops.
func Run(c *Controller, onReady, onExit func()) {
	systray.Run(func() {
		systray.SetIcon(iconData)
		systray.SetTooltip(Tooltip)

		items := make([]*systray.MenuItem, len(Menu))
		for i, m := range Menu {
			if m.ID == EventQuit {
				systray.AddSeparator()
			}
			items[i] = systray.AddMenuItem(m.Label, m.Tooltip)
		}

		if onReady != nil {
			onReady()
		}
		go handleClicks(c, items)
	}, onExit)
}

// Quit signals the tray loop to exit.
func Quit() {
	systray.Quit()
}

func handleClicks(c *Controller, items []*systray.MenuItem) {
	show, quit := items[0].ClickedCh, items[1].ClickedCh
	for {
		select {
		case <-show:
			dispatch(c, Menu[0].ID)
		case <-quit:
			dispatch(c, Menu[1].ID)
		}
	}
}

func dispatch(c *Controller, ev Event) {
	if action, ok := c.Dispatch(ev); !ok && action == ActionShow {
		log.Printf("tray: %s ignored, no window attached", ev)
	}
}
