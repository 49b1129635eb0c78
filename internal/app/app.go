package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/voun8/relaypulse/internal/commands"
	"github.com/voun8/relaypulse/internal/config"
	"github.com/voun8/relaypulse/internal/notify"
	"github.com/voun8/relaypulse/internal/prefs"
	"github.com/voun8/relaypulse/internal/relaypulse"
	"github.com/voun8/relaypulse/internal/state"
	"github.com/voun8/relaypulse/internal/tray"
	"github.com/voun8/relaypulse/internal/ui"
)

// Options configure the RelayPulse application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/relaypulse/prefs.toml
	IntervalMS uint64 // zero keeps the saved preference
	NoTray     bool   // run the window without a tray icon
}

// NewFacade builds the command facade for cfg with a fresh interval store.
func NewFacade(cfg config.Config) *commands.Facade {
	client := relaypulse.NewClient(relaypulse.WithTimeout(cfg.RequestTimeout))
	return commands.New(client, state.NewIntervalStore())
}

// Run boots the tray and window until the user quits or ctx is cancelled.
// It must be called from the main goroutine.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The window owns the terminal; log to the file only.
	logFile, err := SetupLogging(cfg.LogPath(), false)
	if err != nil {
		log.SetOutput(io.Discard)
		cfg.LogDir = ""
	} else {
		defer func() { _ = logFile.Close() }()
	}
	logPath := ""
	if cfg.LogDir != "" {
		logPath = cfg.LogPath()
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	facade := NewFacade(cfg)
	applyStartupInterval(facade, userPrefs, opts.IntervalMS)
	log.Printf("starting, polling every %dms", facade.GetInterval())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	board := &state.Board{}
	poller := NewPoller(facade, board, cfg.MinPollInterval, outageObserver(cfg))
	go poller.Run(ctx)

	follower := &prefsFollower{facade: facade, last: userPrefs.IntervalMS}
	if err := prefs.Watch(ctx, opts.PrefsPath, follower.apply); err != nil {
		log.Printf("prefs watch disabled: %v", err)
	}

	useTray := tray.Available && !opts.NoTray
	window := ui.NewWindow(ctx, ui.Options{
		Facade:    facade,
		Board:     board,
		Refresh:   poller.Refresh,
		LogPath:   logPath,
		PrefsPath: opts.PrefsPath,
		ThemeName: userPrefs.Theme,
		Hideable:  useTray,
	})

	if !useTray {
		return window.Run()
	}
	return runWithTray(ctx, cancel, window, systemTray)
}

// trayWindow is the window as the tray loop drives it.
type trayWindow interface {
	tray.Window
	Run() error
	Close()
}

// trayLoop is the OS tray event loop.
type trayLoop struct {
	run  func(c *tray.Controller, onReady, onExit func())
	quit func()
}

var systemTray = trayLoop{run: tray.Run, quit: tray.Quit}

// windowStopTimeout bounds the wait for the window after the tray exits.
const windowStopTimeout = 2 * time.Second

// runWithTray runs the tray loop on the calling goroutine and the window
// beside it. Closing the window ends both. A window that cannot start, for
// example with no terminal at login, is detached and the tray keeps running
// until Quit or ctx is done.
func runWithTray(ctx context.Context, cancel context.CancelFunc, window trayWindow, loop trayLoop) error {
	controller := tray.NewController(func(code int) {
		log.Printf("quit from tray")
		window.Close()
		os.Exit(code)
	})

	windowDone := make(chan struct{})
	loop.run(controller, func() {
		controller.Attach(window)
		go func() {
			defer close(windowDone)
			if err := window.Run(); err != nil {
				controller.Attach(nil)
				log.Printf("window unavailable, running in the tray only: %v", err)
				return
			}
			loop.quit()
		}()
		go func() {
			<-ctx.Done()
			loop.quit()
		}()
	}, nil)

	// The window stops with ctx; let it hand the terminal back.
	cancel()
	select {
	case <-windowDone:
	case <-time.After(windowStopTimeout):
	}
	return nil
}

// applyStartupInterval seeds the interval store: an explicit override wins,
// then a saved preference; otherwise the default stays.
func applyStartupInterval(facade *commands.Facade, p prefs.Prefs, override uint64) {
	switch {
	case override > 0:
		facade.SetInterval(override)
	case p.IntervalMS > 0:
		facade.SetInterval(p.IntervalMS)
	}
}

// prefsFollower applies interval changes made to the preferences file while
// the app runs, e.g. by "relaypulse interval set". Only a changed value is
// applied, so saving the theme does not undo a command-line override.
type prefsFollower struct {
	mu     sync.Mutex
	facade *commands.Facade
	last   uint64
}

func (f *prefsFollower) apply(p prefs.Prefs) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.IntervalMS == 0 || p.IntervalMS == f.last {
		return
	}
	f.last = p.IntervalMS
	if f.facade.GetInterval() != p.IntervalMS {
		f.facade.SetInterval(p.IntervalMS)
		log.Printf("interval changed on disk: %dms", p.IntervalMS)
	}
}

// outageObserver returns the poller hook that raises a desktop notification
// when the endpoint goes offline, or nil when notifications are disabled.
func outageObserver(cfg config.Config) func(state.Snapshot) {
	if !cfg.NotifyOffline {
		return nil
	}
	outage := notify.NewOutage(nil)
	return func(s state.Snapshot) {
		if err := outage.Observe(s.IsOffline(), s.LastError); err != nil {
			log.Printf("offline notification failed: %v", err)
		}
	}
}
