// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-futures components.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/completion"
	"github.com/momentics/hioload-futures/pool"
)

// BenchmarkSyncCompletion measures the fully pooled fast path: rent,
// set, consume, recycle.
func BenchmarkSyncCompletion(b *testing.B) {
	p := completion.NewPool[int](64, nil)

	// Warmup so the free-list is populated.
	h := p.New()
	h.MustSetValue(0)
	h.MustConsume()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := p.New()
		h.MustSetValue(i)
		h.MustConsume()
	}
}

// BenchmarkSyncCompletionParallel exercises the free-list under
// concurrent rent/return from unrelated operations.
func BenchmarkSyncCompletionParallel(b *testing.B) {
	p := completion.NewPool[int](1024, nil)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h := p.New()
			h.MustSetValue(1)
			h.MustConsume()
		}
	})
}

// BenchmarkDeferredCompletion measures the suspended path with inline
// resumption: register a continuation, then complete.
func BenchmarkDeferredCompletion(b *testing.B) {
	p := completion.NewPool[int](64, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := p.New()
		h.OnComplete(func(api.Result[int]) {}, nil)
		h.MustSetValue(i)
	}
}

// BenchmarkValueBox measures payload conveyance through an opaque
// parameter.
func BenchmarkValueBox(b *testing.B) {
	type pair struct {
		n int
		s string
	}
	boxer := pool.NewValueBoxer[pair](16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := boxer.Box(pair{n: i, s: "x"})
		boxer.Unbox(h)
	}
}

// BenchmarkTypedPool measures bounded free-list rent/return.
func BenchmarkTypedPool(b *testing.B) {
	type buf struct{ data [256]byte }
	p := pool.NewTyped(64, func() *buf { return &buf{} }, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obj := p.Get()
		p.Put(obj)
	}
}
