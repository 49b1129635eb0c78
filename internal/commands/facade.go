// Package commands exposes the three operations the presentation layer
// invokes: fetch the status report, set the poll interval, read it back.
package commands

import (
	"context"
	"errors"

	"github.com/voun8/relaypulse/internal/relaypulse"
	"github.com/voun8/relaypulse/internal/state"
)

// Error is the failure returned to callers of FetchStatus. It carries only
// the message; the failure class is not exposed.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Facade composes the status fetcher and the interval store.
type Facade struct {
	fetcher   relaypulse.StatusFetcher
	intervals *state.IntervalStore
}

// New builds a Facade. A nil store is replaced with a fresh one holding the
// default interval.
func New(fetcher relaypulse.StatusFetcher, intervals *state.IntervalStore) *Facade {
	if intervals == nil {
		intervals = state.NewIntervalStore()
	}
	return &Facade{fetcher: fetcher, intervals: intervals}
}

// FetchStatus performs one status round trip. No lock is held while it runs.
func (f *Facade) FetchStatus(ctx context.Context) (relaypulse.Report, error) {
	if f.fetcher == nil {
		return relaypulse.Report{}, &Error{Message: "no status fetcher configured"}
	}
	report, err := f.fetcher.FetchStatus(ctx)
	if err != nil {
		return relaypulse.Report{}, &Error{Message: err.Error()}
	}
	return report, nil
}

// SetInterval stores ms as the poll interval. It always succeeds.
func (f *Facade) SetInterval(ms uint64) {
	f.intervals.Set(ms)
}

// GetInterval returns the poll interval in milliseconds.
func (f *Facade) GetInterval() uint64 {
	return f.intervals.Get()
}

// IsError reports whether err came from FetchStatus.
func IsError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}
