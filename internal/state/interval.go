package state

import "sync"

// DefaultIntervalMS is the poll interval used until SetInterval is called.
const DefaultIntervalMS uint64 = 5000

// IntervalStore guards the poll interval in milliseconds.
type IntervalStore struct {
	mu sync.Mutex
	ms uint64
}

// NewIntervalStore returns a store holding DefaultIntervalMS.
func NewIntervalStore() *IntervalStore {
	return &IntervalStore{ms: DefaultIntervalMS}
}

// Set overwrites the stored interval. Readers are not notified; pollers
// pick the value up on their next Get.
func (s *IntervalStore) Set(ms uint64) {
	s.mu.Lock()
	s.ms = ms
	s.mu.Unlock()
}

// Get returns the current interval.
func (s *IntervalStore) Get() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ms
}
