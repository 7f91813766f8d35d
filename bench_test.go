//go:build darwin || unfair_spin

package unfair

import (
	"sync"
	"testing"

	"github.com/zeebo/pcg"
)

func BenchmarkMutex(b *testing.B) {
	b.Run("Lock", func(b *testing.B) {
		m := New(0)
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			m.Lock().Release()
		}
	})

	b.Run("TryLock", func(b *testing.B) {
		m := New(0)
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if g, ok := m.TryLock(); ok {
				g.Release()
			}
		}
	})

	b.Run("With", func(b *testing.B) {
		m := New(0)
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			m.With(func(n *int) { *n++ })
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		m := New(0)
		b.ReportAllocs()

		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				m.With(func(n *int) { *n++ })
			}
		})
	})

	b.Run("Mixed", func(b *testing.B) {
		m := New(0)
		b.ReportAllocs()

		b.RunParallel(func(pb *testing.PB) {
			var rng pcg.T
			for pb.Next() {
				if rng.Uint32n(4) == 0 {
					if g, ok := m.TryLock(); ok {
						g.Set(g.Get() + 1)
						g.Release()
					}
				} else {
					m.With(func(n *int) { *n++ })
				}
			}
		})
	})
}

func BenchmarkSyncMutex(b *testing.B) {
	// stdlib baseline for the Parallel benchmark above
	var mu sync.Mutex
	n := 0
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			n++
			mu.Unlock()
		}
	})
}
