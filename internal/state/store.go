package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/voun8/relaypulse/internal/relaypulse"
)

// Snapshot represents the latest poll outcome available to the window.
type Snapshot struct {
	Report              relaypulse.Report
	HasReport           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the endpoint has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Board coordinates concurrent publication of poll outcomes.
type Board struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Publish replaces the stored snapshot with the outcome of one poll. A failed
// poll drops the previous report; only the latest outcome is ever shown.
func (b *Board) Publish(report relaypulse.Report, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.snapshot.LastUpdated = time.Now()
	if err != nil {
		b.snapshot.Report = relaypulse.Report{}
		b.snapshot.HasReport = false
		b.snapshot.LastError = err
		b.snapshot.ConsecutiveFailures++
		return
	}

	b.snapshot.Report = report
	b.snapshot.HasReport = true
	b.snapshot.LastError = nil
	b.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snap := b.snapshot
	if b.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", b.snapshot.LastError)
	}
	return snap
}
