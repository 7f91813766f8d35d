//go:build darwin && !unfair_spin

package unfair

// os_unfair_lock lives in libSystem, which every darwin binary links
// already, so no extra LDFLAGS are needed.

/*
#include <os/lock.h>
*/
import "C"

import "runtime"

// rawLock is the 32 bit os_unfair_lock word. The zero value is
// OS_UNFAIR_LOCK_INIT, the documented unlocked state, which is what
// makes zero value and static Mutex initialization work.
//
// The kernel stores the owning thread id in the word itself and
// requires unlock to happen on that thread, so the goroutine is pinned
// to its OS thread for the duration of the critical section. That also
// keeps assertNotOwner, which is keyed on the thread, in agreement
// with "the calling goroutine".
type rawLock struct {
	u C.os_unfair_lock
}

func (l *rawLock) lock() {
	runtime.LockOSThread()
	C.os_unfair_lock_lock(&l.u)
}

func (l *rawLock) unlock() {
	C.os_unfair_lock_unlock(&l.u)
	runtime.UnlockOSThread()
}

func (l *rawLock) tryLock() bool {
	runtime.LockOSThread()
	if !bool(C.os_unfair_lock_trylock(&l.u)) {
		runtime.UnlockOSThread()
		return false
	}
	return true
}

func (l *rawLock) assertNotOwner() {
	C.os_unfair_lock_assert_not_owner(&l.u)
}
