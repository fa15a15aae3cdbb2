// Package errors provides structured error reporting for refresh controls.
//
// Engines never return errors from their state transitions. The only faults
// they observe are panics raised by delegates or refresh actions, which
// [Guard] recovers and hands to the installed [ErrorHandler]. Loaders for
// configuration and traces return [*RefreshError] values wrapping the cause.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind says where a fault came from.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindDelegate is a panic in a header or footer delegate callback.
	KindDelegate
	// KindAction is a panic in a refresh or load action.
	KindAction
	// KindConfig is a refresh.yaml that could not be read or failed validation.
	KindConfig
	// KindTrace is a trace that failed to load or replay.
	KindTrace
	// KindPanic is a recovered panic with no more specific origin.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDelegate:
		return "delegate"
	case KindAction:
		return "action"
	case KindConfig:
		return "config"
	case KindTrace:
		return "trace"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RefreshError is returned by loaders and reported to handlers.
type RefreshError struct {
	Op   string // e.g. "config.Load"
	Kind ErrorKind
	Err  error
	// Path names the file being loaded, when there is one.
	Path string
	// Timestamp is set by Report when left zero.
	Timestamp time.Time
}

func (e *RefreshError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// PanicError describes a panic recovered by Guard.
type PanicError struct {
	Op string // e.g. "refresh.Header.DidBeginRefreshing"
	// Kind is KindDelegate or KindAction for panics raised by engine
	// callbacks. Zero is reported as KindPanic.
	Kind       ErrorKind
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// kind returns the effective kind of a recovered panic.
func (e *PanicError) kind() ErrorKind {
	if e.Kind == KindUnknown {
		return KindPanic
	}
	return e.Kind
}

// ErrorHandler receives reported errors and recovered panics. Handlers are
// called on the goroutine that raised the fault.
type ErrorHandler interface {
	HandleError(err *RefreshError)
	HandlePanic(err *PanicError)
}
