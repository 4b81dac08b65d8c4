// Package errors provides the error taxonomy of the wrapper layer and a
// global handler for errors that are reported rather than returned.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Sentinel causes wrapped by MountError and LifecycleError.
var (
	// ErrMissingElement means a widget was asked to bind to a nil element.
	ErrMissingElement = stderrors.New("element is missing")
	// ErrDetachedElement means the element is not attached to a document.
	ErrDetachedElement = stderrors.New("element is not attached to a document")
	// ErrWidgetKindNotFound means no factory is registered for the widget kind.
	ErrWidgetKindNotFound = stderrors.New("widget kind not registered")
	// ErrNotMounted means the operation requires a mounted instance.
	ErrNotMounted = stderrors.New("not mounted")
	// ErrAlreadyMounted means mount was called on a mounted instance.
	ErrAlreadyMounted = stderrors.New("already mounted")
	// ErrRetired means the instance was unmounted and cannot be mounted again.
	ErrRetired = stderrors.New("instance already unmounted")
	// ErrDestroyed means the widget handle was already destroyed.
	ErrDestroyed = stderrors.New("widget already destroyed")
)

// ErrorKind identifies the category of a reported error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMount indicates a widget could not be constructed.
	KindMount
	// KindLifecycle indicates an operation outside its valid lifecycle state.
	KindLifecycle
	// KindConfig indicates a configuration problem.
	KindConfig
	// KindBootstrap indicates an auto-init scan failure.
	KindBootstrap
)

func (k ErrorKind) String() string {
	switch k {
	case KindMount:
		return "mount"
	case KindLifecycle:
		return "lifecycle"
	case KindConfig:
		return "config"
	case KindBootstrap:
		return "bootstrap"
	default:
		return "unknown"
	}
}

// Error is a structured error delivered to the global ErrorHandler.
type Error struct {
	// Op is the operation that failed (e.g., "bootstrap.Init").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Selector is the CSS selector involved, if any.
	Selector string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("%s [%s] selector=%s: %v", e.Op, e.Kind, e.Selector, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MountError reports a widget that could not be constructed against its
// element. It indicates structural misuse and is always surfaced to the caller.
type MountError struct {
	// Op is the operation that failed (e.g., "lifecycle.Mount").
	Op string
	// Widget is the widget kind being constructed.
	Widget string
	// Err is the underlying cause.
	Err error
}

func (e *MountError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s: mount %s: %v", e.Op, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s: mount: %v", e.Op, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// LifecycleError reports an operation invoked outside its valid state.
// It is a programming error, not recoverable at runtime.
type LifecycleError struct {
	// Op is the operation that was attempted.
	Op string
	// State is the lifecycle state at the time of the call.
	State string
	// Err is the underlying cause, usually one of the sentinels.
	Err error
	// StackTrace contains the call stack of the offending call.
	StackTrace string
}

func (e *LifecycleError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("%s in state %s: %v", e.Op, e.State, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}

// NewLifecycleError builds a LifecycleError with the caller's stack attached.
func NewLifecycleError(op, state string, err error) *LifecycleError {
	return &LifecycleError{
		Op:         op,
		State:      state,
		Err:        err,
		StackTrace: CaptureStack(),
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error wrapping the given errors, ignoring nils.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
