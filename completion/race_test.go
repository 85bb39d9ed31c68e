// File: completion/race_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interleaving tests for the producer/consumer race on one generation.

package completion

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/momentics/hioload-futures/api"
)

func TestRegisterSetRace(t *testing.T) {
	const iterations = 20000
	p := NewPool[int](64, nil)

	for i := 0; i < iterations; i++ {
		h := p.New()
		want := i

		var resumed atomic.Int32
		var got atomic.Int64
		done := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if !h.TrySetValue(want) {
				t.Errorf("iteration %d: set must succeed", want)
			}
		}()
		go func() {
			defer wg.Done()
			ok := h.OnComplete(func(r api.Result[int]) {
				resumed.Add(1)
				got.Store(int64(r.Value))
				close(done)
			}, nil)
			if !ok {
				t.Errorf("iteration %d: register must succeed", want)
				close(done)
			}
		}()
		wg.Wait()
		<-done

		if n := resumed.Load(); n != 1 {
			t.Fatalf("iteration %d: resumed %d times; want exactly once", want, n)
		}
		if v := got.Load(); v != int64(want) {
			t.Fatalf("iteration %d: resumed with %d; want %d", want, v, want)
		}
		if h.TrySetValue(-1) {
			t.Fatalf("iteration %d: set after delivery must fail", want)
		}
	}
}

func TestConcurrentSetFirstWriterWins(t *testing.T) {
	const iterations = 10000
	p := NewPool[int](64, nil)

	for i := 0; i < iterations; i++ {
		h := p.New()

		var wins atomic.Int32
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if h.TrySetValue(1) {
				wins.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			if h.TrySetValue(2) {
				wins.Add(1)
			}
		}()
		wg.Wait()

		if n := wins.Load(); n != 1 {
			t.Fatalf("iteration %d: %d successful sets; want exactly 1", i, n)
		}
		res, ok := h.TryConsume()
		if !ok || (res.Value != 1 && res.Value != 2) {
			t.Fatalf("iteration %d: consume = (%v, %v)", i, res.Value, ok)
		}
	}
}

func TestConsumeSetRace(t *testing.T) {
	const iterations = 10000
	p := NewPool[int](64, nil)

	for i := 0; i < iterations; i++ {
		h := p.New()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.TrySetValue(7)
		}()

		// The consumer polls: failed consumes must be harmless and a
		// successful one must observe the full payload.
		for {
			if res, ok := h.TryConsume(); ok {
				if res.Value != 7 {
					t.Errorf("iteration %d: consumed %d; want 7", i, res.Value)
				}
				break
			}
		}
		wg.Wait()
	}
}

func TestConcurrentOperationsOnDistinctHandles(t *testing.T) {
	const workers = 8
	const perWorker = 5000
	p := NewPool[int](64, nil)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				h := p.New()
				want := seed*perWorker + i
				if !h.TrySetValue(want) {
					t.Errorf("set failed for %d", want)
					return
				}
				res, ok := h.TryConsume()
				if !ok || res.Value != want {
					t.Errorf("consume = (%v, %v); want (%d, true)", res.Value, ok, want)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
