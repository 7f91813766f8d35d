//go:build darwin || unfair_spin

package unfair

// Guard represents exclusive ownership of a Mutex's value. It is
// created only by Lock and TryLock, and the lock stays held until
// Release. The underlying lock allows exactly one live Guard per
// Mutex; the Guard itself keeps no bookkeeping of its own.
type Guard[T any] struct {
	m *Mutex[T]
}

// Get returns a copy of the protected value.
func (g Guard[T]) Get() T { return g.m.val }

// Set replaces the protected value.
func (g Guard[T]) Set(val T) { g.m.val = val }

// Ptr returns the protected value for mutation in place. The pointer
// must not be used after Release.
func (g Guard[T]) Ptr() *T { return &g.m.val }

// Release gives up exclusive access and must be called exactly once.
// Writes made before Release are visible to whichever goroutine
// acquires the Mutex next.
func (g Guard[T]) Release() { g.m.lock.unlock() }
