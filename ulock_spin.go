//go:build unfair_spin

package unfair

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	_ "unsafe" // for go:linkname
)

// Lock states. The word moves 0 -> 1 on an uncontended acquire, to 2
// once anyone has had to sleep, and back to 0 on release.
const (
	rawUnlocked  = 0
	rawLocked    = 1
	rawContended = 2
)

//go:linkname semacquire sync.runtime_Semacquire
func semacquire(s *uint32)

//go:linkname semrelease sync.runtime_Semrelease
func semrelease(s *uint32, handoff bool, skipframes int)

// rawLock is a software stand-in for the platform lock with the same
// contract: a futex style state word, sleeping on the runtime
// semaphore, waking at most one waiter with no ordering promise. The
// zero value is unlocked. It exists so the Mutex and Guard machinery
// can be exercised off darwin; build with -tags unfair_spin.
type rawLock struct {
	state uint32
	sema  uint32
	owner int64
}

func (l *rawLock) lock() {
	// Speculative grab while unlocked.
	if atomic.CompareAndSwapUint32(&l.state, rawUnlocked, rawLocked) {
		atomic.StoreInt64(&l.owner, goid())
		return
	}

	// Announce a waiter, then sleep until the word reads unlocked. The
	// semaphore over-counts when a release races with a new arrival;
	// that costs a spurious wakeup, never a lost one.
	for atomic.SwapUint32(&l.state, rawContended) != rawUnlocked {
		semacquire(&l.sema)
	}
	atomic.StoreInt64(&l.owner, goid())
}

func (l *rawLock) unlock() {
	atomic.StoreInt64(&l.owner, 0)
	if atomic.SwapUint32(&l.state, rawUnlocked) == rawContended {
		semrelease(&l.sema, false, 0)
	}
}

func (l *rawLock) tryLock() bool {
	if !atomic.CompareAndSwapUint32(&l.state, rawUnlocked, rawLocked) {
		return false
	}
	atomic.StoreInt64(&l.owner, goid())
	return true
}

// assertNotOwner is keyed on the goroutine rather than the OS thread:
// goroutines migrate between threads, so the goroutine is the faithful
// notion of "the caller" here.
func (l *rawLock) assertNotOwner() {
	if atomic.LoadInt64(&l.owner) == goid() {
		fmt.Fprintln(os.Stderr, "unfair: lock already held by the calling goroutine")
		os.Exit(2)
	}
}

// goid parses the current goroutine's id out of the runtime.Stack
// header ("goroutine 123 [running]:"). Slow, which is acceptable: it
// only runs under the portable test lock.
func goid() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	const prefix = "goroutine "
	if n < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}

	var id int64
	for _, c := range buf[len(prefix):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}
