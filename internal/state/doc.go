// Package state holds the mutable state shared between the poller, the tray
// and the window.
//
// # Core Types
//
// IntervalStore:
//   - The poll interval in milliseconds, default 5000
//   - One sync.Mutex, held only for the scalar read or write
//   - Never held across a fetch
//
// Board:
//   - The latest poll outcome (report or error) for the window to render
//   - Uses sync.RWMutex: one writer (poller), many readers (window ticks)
//   - A failed poll replaces the report; nothing older is kept
//
// # Concurrency Model
//
// No lock in this package is ever held while another one is taken, and no
// callback runs under a lock, so the package cannot deadlock.
//
// Interval changes are not broadcast. The poller re-reads the interval after
// every fetch, so a change applies to the next scheduled fetch and never to
// one already in flight.
//
// # Usage Example
//
//	intervals := state.NewIntervalStore()
//	board := &state.Board{}
//
//	// Poller goroutine:
//	for {
//		report, err := client.FetchStatus(ctx)
//		board.Publish(report, err)
//		time.Sleep(time.Duration(intervals.Get()) * time.Millisecond)
//	}
//
//	// Window goroutine:
//	snap := board.Snapshot()
//	render(snap)
package state
