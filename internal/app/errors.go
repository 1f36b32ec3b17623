package app

import (
	"errors"
	"fmt"
)

// Service errors.
var (
	// ErrServiceClosed indicates the service has been closed.
	ErrServiceClosed = errors.New("service closed")

	// ErrDocumentNotFound indicates a document id is not registered.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrAlreadyWatching indicates a config watch is already active.
	ErrAlreadyWatching = errors.New("config watch already active")
)

// OperationError records the operation and target that produced an error.
type OperationError struct {
	Op     string // operation name, e.g. "open", "highlight", "watch"
	Target string // document id, file path, or other subject
	Err    error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
