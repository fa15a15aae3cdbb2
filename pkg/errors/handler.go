package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler. Nil restores a
// LogHandler writing to the logrus standard logger.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// CurrentHandler returns the installed handler.
func CurrentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and passes it to the installed handler.
func Report(err *RefreshError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic stamps err and passes it to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// Guard runs fn and reports a panic it raises as a PanicError of the given
// kind under op. It returns false if fn panicked. A nil fn is a no-op.
func Guard(op string, kind ErrorKind, fn func()) (ok bool) {
	if fn == nil {
		return true
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ok = false
		ReportPanic(&PanicError{Op: op, Kind: kind, Value: r, StackTrace: Stack(1)})
	}()
	fn()
	return true
}

// Stack formats the current goroutine's stack, one function and location
// per frame, leaving out the caller's innermost skip frames.
func Stack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			return b.String()
		}
	}
}
