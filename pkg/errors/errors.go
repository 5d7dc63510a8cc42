// Package errors provides structured error reporting for vviz.
//
// Most failures in this module are terminal by design: a protocol desync
// or a dropped transport connection is not retried. Code that hits one
// reports a structured error here before the owning goroutine stops, so
// the failure is attributable to an operation and a category rather than
// a bare string.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// As and Is re-export the standard helpers so callers of this package
// never need to import both errors packages.

func As(err error, target any) bool { return stderrors.As(err, target) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindProtocol indicates the control and presentation sides fell out
	// of sync: a message targeted a slot its contract requires to exist.
	KindProtocol
	// KindTransport indicates a connection, framing or socket failure.
	KindTransport
	// KindParse indicates a wire frame or value that could not be decoded.
	KindParse
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindImage indicates an image load or decode failure.
	KindImage
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindProtocol:
		return "protocol"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindConfig:
		return "config"
	case KindImage:
		return "image"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VizError represents a structured error in vviz.
type VizError struct {
	// Op is the operation that failed (e.g., "transport.Serve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Address is the remote endpoint involved, if applicable.
	Address string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VizError) Error() string {
	if e.Address != "" {
		return fmt.Sprintf("%s [%s] addr=%s: %v", e.Op, e.Kind, e.Address, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VizError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "gui.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// DesyncError describes a protocol contract violation: a message whose
// target slot must exist did not, or a stored value no longer parses as
// the declared type. It is used as a panic value because the two sides
// can no longer be reconciled.
type DesyncError struct {
	// Op is the apply operation that failed (e.g., "message.EnumChanged").
	Op string
	// Label is the component or panel label the message targeted.
	Label string
	// Detail describes what was expected.
	Detail string
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("%s: control/presentation desync at %q: %s", e.Op, e.Label, e.Detail)
}

// ErrorHandler receives errors reported by vviz.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VizError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
