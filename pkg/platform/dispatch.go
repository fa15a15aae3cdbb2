// Package platform holds the process-wide hooks a host installs so refresh
// controls can schedule work on its UI thread.
package platform

import "sync"

// DispatchFunc posts a callback to the host's UI loop. The callback must run
// later on the loop's goroutine, never inline.
type DispatchFunc func(callback func())

var (
	dispatchMu sync.RWMutex
	dispatcher DispatchFunc
)

// RegisterDispatch installs fn as the process-wide dispatcher and returns
// the one it replaced, so a host that only runs for a while can restore it.
// Passing nil removes the registration.
func RegisterDispatch(fn DispatchFunc) (previous DispatchFunc) {
	dispatchMu.Lock()
	defer dispatchMu.Unlock()
	previous, dispatcher = dispatcher, fn
	return previous
}

// Dispatch posts callback through the registered dispatcher. It returns
// false, without running anything, when no dispatcher is installed or the
// callback is nil; callers then schedule the work themselves.
func Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	dispatchMu.RLock()
	fn := dispatcher
	dispatchMu.RUnlock()
	if fn == nil {
		return false
	}
	fn(callback)
	return true
}
