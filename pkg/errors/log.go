package errors

import "github.com/sirupsen/logrus"

// LogHandler is an ErrorHandler that logs through logrus.
type LogHandler struct {
	// Logger receives the entries. Nil uses the logrus standard logger.
	Logger logrus.FieldLogger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() logrus.FieldLogger {
	if h.Logger != nil {
		return h.Logger
	}
	return logrus.StandardLogger()
}

// HandleError logs a RefreshError.
func (h *LogHandler) HandleError(err *RefreshError) {
	if err == nil {
		return
	}
	entry := h.logger().WithFields(logrus.Fields{
		"op":   err.Op,
		"kind": err.Kind.String(),
	})
	if err.Path != "" {
		entry = entry.WithField("path", err.Path)
	}
	entry.Error(err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	entry := h.logger().WithField("kind", err.kind().String())
	if err.Op != "" {
		entry = entry.WithField("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Errorf("recovered panic: %v", err.Value)
}
