//go:build darwin || unfair_spin

package unfair

// Mutex binds a value of type T to an exclusive lock so that the value
// can only be read or written through a Guard returned by Lock or
// TryLock. The zero value is an unlocked Mutex around the zero value
// of T, and is safe to use.
//
// A Mutex must not be copied after first use. A *Mutex may be shared
// across goroutines exactly when handing a T across goroutines is
// safe; the lock serializes access, it does not launder the value.
type Mutex[T any] struct {
	noCopy noCopy
	lock   rawLock
	val    T
}

// New returns a Mutex around val. The lock starts unlocked and
// construction is not a critical section.
func New[T any](val T) *Mutex[T] {
	return &Mutex[T]{val: val}
}

// Lock blocks the calling goroutine until it has exclusive ownership
// of the value and returns a Guard for it. All waiting is delegated to
// the underlying lock, and it is unfair: a goroutine that just arrived
// may acquire the lock ahead of one that has been waiting longer.
// There is no timeout and no cancellation. Locking a Mutex the caller
// already holds deadlocks.
func (m *Mutex[T]) Lock() Guard[T] {
	m.lock.lock()
	return Guard[T]{m: m}
}

// TryLock attempts to take the lock without blocking and reports
// whether it succeeded. The Guard is only valid on success. Failure
// means the lock was held by someone else at that instant; it is an
// expected outcome for the caller to handle, not an error.
func (m *Mutex[T]) TryLock() (Guard[T], bool) {
	if !m.lock.tryLock() {
		return Guard[T]{}, false
	}
	return Guard[T]{m: m}, true
}

// With runs fn with exclusive access to the value. The lock is
// released when fn returns, on every exit path including panic.
func (m *Mutex[T]) With(fn func(*T)) {
	g := m.Lock()
	defer g.Release()
	fn(&m.val)
}

// TryWith is With over TryLock: it reports whether fn ran.
func (m *Mutex[T]) TryWith(fn func(*T)) bool {
	g, ok := m.TryLock()
	if !ok {
		return false
	}
	defer g.Release()
	fn(&m.val)
	return true
}

// AssertNotOwner kills the process if the caller currently holds the
// lock. It exists to catch attempted recursive locking during
// development and must never be used for control flow. On an unlocked
// Mutex, or one held by someone else, it returns normally.
func (m *Mutex[T]) AssertNotOwner() {
	m.lock.assertNotOwner()
}

// Unwrap returns the protected value without taking the lock. The
// caller must hold the only reference to the Mutex with no Guards
// outstanding, and must not use the Mutex afterward.
func (m *Mutex[T]) Unwrap() T {
	return m.val
}

// noCopy makes go vet's copylocks check flag copies of a Mutex.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
