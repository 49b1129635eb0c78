package state

import (
	"math"
	"sync"
	"testing"
)

func TestIntervalStore_Default(t *testing.T) {
	s := NewIntervalStore()
	if got := s.Get(); got != 5000 {
		t.Fatalf("Get() = %d, want 5000", got)
	}
}

func TestIntervalStore_SetGetRoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 1000, 5000, 86_400_000, math.MaxUint64}

	s := NewIntervalStore()
	for _, ms := range tests {
		s.Set(ms)
		if got := s.Get(); got != ms {
			t.Fatalf("Set(%d); Get() = %d", ms, got)
		}
	}
}

func TestIntervalStore_GetIsIdempotent(t *testing.T) {
	s := NewIntervalStore()
	s.Set(1234)
	for i := 0; i < 10; i++ {
		if got := s.Get(); got != 1234 {
			t.Fatalf("Get() #%d = %d, want 1234", i, got)
		}
	}
}

func TestIntervalStore_ConcurrentReaders(t *testing.T) {
	s := NewIntervalStore()
	s.Set(1000)

	var wg sync.WaitGroup
	got := make([]uint64, 2)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = s.Get()
		}(i)
	}
	wg.Wait()

	for i, v := range got {
		if v != 1000 {
			t.Fatalf("reader %d observed %d, want 1000", i, v)
		}
	}
}

func TestIntervalStore_ConcurrentWritersNeverTear(t *testing.T) {
	s := NewIntervalStore()
	const a, b = uint64(0x0000_0000_FFFF_FFFF), uint64(0xFFFF_FFFF_0000_0000)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if i%2 == 0 {
					s.Set(a)
				} else {
					s.Set(b)
				}
			}
		}(i)
	}

	stop := make(chan struct{})
	readErr := make(chan uint64, 1)
	go func() {
		for {
			select {
			case <-stop:
				close(readErr)
				return
			default:
			}
			if v := s.Get(); v != a && v != b && v != DefaultIntervalMS {
				readErr <- v
				close(readErr)
				return
			}
		}
	}()

	wg.Wait()
	close(stop)
	if v, ok := <-readErr; ok {
		t.Fatalf("observed torn value %#x", v)
	}
}
