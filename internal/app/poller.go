package app

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/voun8/relaypulse/internal/commands"
	"github.com/voun8/relaypulse/internal/state"
)

const defaultMinWait = time.Second

// Poller fetches the status report, publishes the outcome on a Board, then
// waits for the current interval. The interval is read after every fetch, so
// a change only affects the next scheduled fetch.
type Poller struct {
	facade  *commands.Facade
	board   *state.Board
	minWait time.Duration
	observe func(state.Snapshot)
	refresh chan struct{}
}

// NewPoller builds a Poller. minWait is the shortest pause between fetches;
// non-positive values use one second. observe, when set, sees the board
// snapshot after every publish.
func NewPoller(facade *commands.Facade, board *state.Board, minWait time.Duration, observe func(state.Snapshot)) *Poller {
	if minWait <= 0 {
		minWait = defaultMinWait
	}
	return &Poller{
		facade:  facade,
		board:   board,
		minWait: minWait,
		observe: observe,
		refresh: make(chan struct{}, 1),
	}
}

// Refresh cuts the current wait short. Requests made while one is already
// pending are merged.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	for {
		p.pollOnce(ctx)

		timer := time.NewTimer(waitFor(p.facade.GetInterval(), p.minWait))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-p.refresh:
			timer.Stop()
		case <-timer.C:
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context) {
	report, err := p.facade.FetchStatus(ctx)
	if err != nil && ctx.Err() != nil {
		// Shutting down; keep the last outcome on the board.
		return
	}
	p.board.Publish(report, err)
	if err != nil {
		log.Printf("status poll failed: %v", err)
	}
	if p.observe != nil {
		p.observe(p.board.Snapshot())
	}
}

// waitFor converts the stored interval to a pause, applying the floor.
func waitFor(intervalMS uint64, floor time.Duration) time.Duration {
	if intervalMS > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return time.Duration(math.MaxInt64)
	}
	d := time.Duration(intervalMS) * time.Millisecond
	if d < floor {
		return floor
	}
	return d
}
