// File: continuation/box_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package continuation

import (
	"errors"
	"sync"
	"testing"

	"github.com/momentics/hioload-futures/api"
)

func TestSignalResumesInline(t *testing.T) {
	p := NewPool[int](nil)
	b := p.Rent()

	var got api.Result[int]
	calls := 0
	b.Arm(func(r api.Result[int]) {
		calls++
		got = r
	}, nil)
	b.Signal(api.Of(7))

	if calls != 1 {
		t.Fatalf("callback ran %d times; want 1", calls)
	}
	if got.Value != 7 || got.Err != nil {
		t.Fatalf("callback payload = %+v; want value 7", got)
	}
}

func TestSignalReleasesBeforeCallback(t *testing.T) {
	p := NewPool[int](nil)
	b := p.Rent()

	b.Arm(func(api.Result[int]) {
		// By the time the callback runs the box is already back in its
		// pool with fields cleared.
		if b.fn != nil || b.sched != nil {
			t.Error("box fields must be cleared before the callback runs")
		}
	}, nil)
	b.Signal(api.Of(1))
}

func TestPanickingCallbackDoesNotLeakBox(t *testing.T) {
	p := NewPool[int](nil)
	b := p.Rent()
	b.Arm(func(api.Result[int]) {
		panic("resumption failed")
	}, nil)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic must propagate to the signaling side with inline scheduling")
			}
		}()
		b.Signal(api.Of(1))
	}()

	// The box was released before the callback ran, so renting and
	// signaling again works.
	b2 := p.Rent()
	ran := false
	b2.Arm(func(api.Result[int]) { ran = true }, nil)
	b2.Signal(api.Of(2))
	if !ran {
		t.Fatal("box pool must stay usable after a panicking resumption")
	}
}

// chanScheduler posts tasks to a worker goroutine.
type chanScheduler struct {
	tasks chan api.Runnable
}

func newChanScheduler() (*chanScheduler, func()) {
	s := &chanScheduler{tasks: make(chan api.Runnable, 16)}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for task := range s.tasks {
			task.Run()
		}
	}()
	return s, func() {
		close(s.tasks)
		wg.Wait()
	}
}

func (s *chanScheduler) Schedule(task api.Runnable) error {
	s.tasks <- task
	return nil
}

func TestSignalPostsToScheduler(t *testing.T) {
	sched, stop := newChanScheduler()
	p := NewPool[string](nil)
	b := p.Rent()

	var mu sync.Mutex
	var got string
	done := make(chan struct{})
	b.Arm(func(r api.Result[string]) {
		mu.Lock()
		got = r.Value
		mu.Unlock()
		close(done)
	}, sched)
	b.Signal(api.Of("posted"))

	<-done
	stop()

	mu.Lock()
	defer mu.Unlock()
	if got != "posted" {
		t.Fatalf("posted resumption got %q; want %q", got, "posted")
	}
}

// failingScheduler rejects every task.
type failingScheduler struct{}

func (failingScheduler) Schedule(api.Runnable) error {
	return errors.New("scheduler closed")
}

func TestSchedulerRejectionFallsBackInline(t *testing.T) {
	p := NewPool[int](nil)
	b := p.Rent()

	ran := false
	b.Arm(func(r api.Result[int]) { ran = r.Value == 3 }, failingScheduler{})
	b.Signal(api.Of(3))

	if !ran {
		t.Fatal("rejected task must resume inline so the resumption is never lost")
	}
}

func TestDiscardSkipsCallback(t *testing.T) {
	p := NewPool[int](nil)
	b := p.Rent()
	b.Arm(func(api.Result[int]) {
		t.Error("discarded continuation must not run")
	}, nil)
	b.Discard()

	if b.fn != nil {
		t.Fatal("discard must clear box fields")
	}
}

func TestInlineScheduler(t *testing.T) {
	ran := false
	if err := Inline.Schedule(api.RunnableFunc(func() { ran = true })); err != nil {
		t.Fatalf("inline scheduler error: %v", err)
	}
	if !ran {
		t.Fatal("inline scheduler must run the task before returning")
	}
}
