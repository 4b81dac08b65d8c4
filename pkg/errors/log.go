package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	if !h.Verbose {
		fmt.Fprintf(out, "[materialweb error] %s: %v\n", err.Op, err.Err)
		return
	}
	fmt.Fprintf(out, "[materialweb error] %s [%s]", err.Op, err.Kind)
	if err.Selector != "" {
		fmt.Fprintf(out, " selector=%s", err.Selector)
	}
	fmt.Fprintf(out, ": %v\n", err.Err)
	if err.StackTrace != "" {
		fmt.Fprintf(out, "Stack trace:\n%s\n", err.StackTrace)
	}
}
