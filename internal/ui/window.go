package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pendingLimit bounds the queue of tray requests waiting for the program.
const pendingLimit = 16

// closeTimeout bounds how long Close waits for the terminal to be restored.
const closeTimeout = 2 * time.Second

// Window runs the Bubble Tea program and accepts show/focus requests from the
// tray. Requests are delivered in order and never block the caller.
type Window struct {
	program  *tea.Program
	pending  chan tea.Msg
	finished chan struct{}
}

// NewWindow builds the window program. The program stops when ctx is done.
func NewWindow(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) *Window {
	if ctx == nil {
		ctx = context.Background()
	}
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, programOpts...)
	return &Window{
		program:  tea.NewProgram(New(opts), programOpts...),
		pending:  make(chan tea.Msg, pendingLimit),
		finished: make(chan struct{}),
	}
}

// Run blocks until the program exits. A program stopped through its context
// is not an error.
func (w *Window) Run() error {
	defer close(w.finished)
	go w.deliver(w.finished)

	_, err := w.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Close asks the program to quit and waits briefly for it to hand the
// terminal back.
func (w *Window) Close() {
	go w.program.Quit()
	select {
	case <-w.finished:
	case <-time.After(closeTimeout):
	}
}

// Show brings a hidden window back.
func (w *Window) Show() {
	w.post(showMsg{})
}

// SetFocus marks the window as focused and refreshes it.
func (w *Window) SetFocus() {
	w.post(focusMsg{})
}

func (w *Window) post(msg tea.Msg) {
	select {
	case w.pending <- msg:
	default:
		// Queue full; the program is stalled or gone.
	}
}

func (w *Window) deliver(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case msg := <-w.pending:
			w.program.Send(msg)
		}
	}
}
