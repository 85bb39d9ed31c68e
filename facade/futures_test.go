// File: facade/futures_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/facade"
)

func newTestFutures(t *testing.T) *facade.Futures {
	t.Helper()
	f := facade.New(facade.Config{Workers: 2})
	t.Cleanup(f.Close)
	return f
}

func TestAsyncAwait(t *testing.T) {
	f := newTestFutures(t)

	h := facade.Async(f, func() (int, error) {
		return 40 + 2, nil
	})
	got, err := facade.Await(h)
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Fatalf("await = %d; want 42", got)
	}
	if h.IsValid() {
		t.Fatal("handle must be invalid after await consumed it")
	}
}

func TestAsyncAwaitError(t *testing.T) {
	f := newTestFutures(t)
	cause := errors.New("producer failed")

	_, err := facade.Await(facade.Async(f, func() (string, error) {
		return "", cause
	}))
	if !errors.Is(err, cause) {
		t.Fatalf("await err = %v; want %v", err, cause)
	}
}

func TestOnCompletePostedToExecutor(t *testing.T) {
	f := newTestFutures(t)
	h := facade.NewHandle[int](f)

	var wg sync.WaitGroup
	wg.Add(1)
	var got int
	ok := h.OnComplete(func(r api.Result[int]) {
		got = r.Value
		wg.Done()
	}, f.Scheduler())
	if !ok {
		t.Fatal("register must succeed")
	}

	go func() {
		time.Sleep(time.Millisecond)
		h.TrySetValue(7)
	}()
	wg.Wait()
	if got != 7 {
		t.Fatalf("posted resumption got %d; want 7", got)
	}
}

func TestChanAdapter(t *testing.T) {
	f := newTestFutures(t)

	h := facade.NewHandle[string](f)
	ch := facade.Chan(h)
	go h.TrySetValue("over the wire")

	select {
	case res := <-ch:
		if res.Err != nil || res.Value != "over the wire" {
			t.Fatalf("channel result = %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel adapter did not deliver")
	}
}

func TestChanAdapterCompleted(t *testing.T) {
	f := newTestFutures(t)
	h := facade.NewHandle[int](f)
	h.MustSetValue(5)

	res := <-facade.Chan(h)
	if res.Value != 5 {
		t.Fatalf("channel result = %+v; want 5", res)
	}
}

func TestBoxValueRoundTrip(t *testing.T) {
	f := newTestFutures(t)

	type pair struct {
		N int
		S string
	}

	var opaque any
	callback := func(state any) { opaque = state }
	callback(facade.BoxValue(f, pair{N: 7, S: "x"}))

	got, ok := facade.UnboxValue[pair](f, opaque)
	if !ok || got.N != 7 || got.S != "x" {
		t.Fatalf("unbox = (%+v, %v); want ({7 x}, true)", got, ok)
	}
}

func TestAwaitStaleHandle(t *testing.T) {
	f := newTestFutures(t)
	h := facade.NewHandle[int](f)
	h.MustSetValue(1)
	if _, err := facade.Await(h); err != nil {
		t.Fatal(err)
	}

	// Awaiting the consumed handle reports staleness instead of hanging.
	if _, err := facade.Await(h); !errors.Is(err, api.ErrStaleHandle) {
		t.Fatalf("await stale = %v; want ErrStaleHandle", err)
	}
}

func TestDiagnosticsSurface(t *testing.T) {
	f := newTestFutures(t)

	h := facade.NewHandle[float64](f)
	h.MustSetValue(1.5)
	if _, ok := h.TryConsume(); !ok {
		t.Fatal("consume failed")
	}

	snap := f.Counters()
	if snap.SourceAllocs == 0 {
		t.Fatal("fresh source allocation must be counted")
	}

	metrics := f.Metrics().GetSnapshot()
	if _, ok := metrics["futures.source_allocs"]; !ok {
		t.Fatal("metrics registry must publish counter keys")
	}

	state := f.Debug().DumpState()
	if _, ok := state["futures.workers"]; !ok {
		t.Fatal("debug dump must include the workers probe")
	}
	if _, ok := state["platform.cpus"]; !ok {
		t.Fatal("debug dump must include platform probes")
	}
}

func TestPoolCapacityConfigSurface(t *testing.T) {
	f := newTestFutures(t)
	f.PoolConfig().SetCapacity("int64", 16)
	if got := f.PoolConfig().Capacity("int64"); got != 16 {
		t.Fatalf("capacity = %d; want 16", got)
	}
}
