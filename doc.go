//go:build darwin || unfair_spin

// package unfair provides a mutex that owns the value it protects.
//
// The usual way to guard a value in Go keeps the lock and the value in
// separate fields and relies on every call site remembering the pairing:
//
//	var mu sync.Mutex
//	var hits map[string]int
//
//	func Record(key string) {
//		mu.Lock()
//		hits[key]++
//		mu.Unlock()
//	}
//
// Nothing stops a caller from touching hits without mu. A Mutex binds
// the two together so that the value is only reachable through a Guard
// handed out by the lock:
//
//	var hits = unfair.New(map[string]int{})
//
//	func Record(key string) {
//		g := hits.Lock()
//		g.Get()[key]++
//		g.Release()
//	}
//
// The lock behind it is the darwin os_unfair_lock: a single 32 bit
// word, no allocation, waiting managed by the kernel. It is unfair on
// purpose. A thread that just arrived may get the lock ahead of one
// that has been waiting longer, which keeps the uncontended path cheap
// and the lock small. There is no recursive locking, no timeout, and no
// poisoning: a goroutine that locks a Mutex it already holds deadlocks
// against itself, and AssertNotOwner exists to catch exactly that
// during development.
//
// The package builds on darwin. Everywhere else the kernel primitive
// does not exist and the build fails, unless the unfair_spin tag
// selects the portable software lock, which exists so that the Mutex
// and Guard machinery can be tested anywhere.
package unfair
