//go:build darwin || unfair_spin

package unfair

import "fmt"

// Format implements fmt.Formatter by transiently locking the Mutex and
// formatting the protected value with the caller's verb and flags.
// Formatting a Mutex the caller already holds deadlocks; AssertNotOwner
// is the tool to detect that misuse.
func (m *Mutex[T]) Format(f fmt.State, verb rune) {
	g := m.Lock()
	defer g.Release()
	g.Format(f, verb)
}

// Format implements fmt.Formatter over the protected value.
func (g Guard[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), g.Get())
}
