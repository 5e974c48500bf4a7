package behavior

import (
	"errors"
	"fmt"
)

// ErrNoChildren is the cause of the panic raised when a composite is built without children.
var ErrNoChildren = errors.New("composite requires at least one child")

// ErrNilChild is the cause of the panic raised when a nil node is passed as a child.
var ErrNilChild = errors.New("child node is nil")

// ErrNilFunc is the cause of the panic raised when a leaf is built around a nil callable.
var ErrNilFunc = errors.New("leaf callable is nil")

// ErrAlreadyAttached is the cause of the panic raised when a node is given a second parent.
var ErrAlreadyAttached = errors.New("node already has a parent")

// ErrInvalidStatus is reported when a condition returns a value outside the three statuses.
var ErrInvalidStatus = errors.New("invalid status")

// LeafPanicError wraps a value recovered from a panicking leaf callable.
type LeafPanicError struct {
	Value any
}

func (e *LeafPanicError) Error() string {
	return fmt.Sprintf("leaf panicked: %v", e.Value)
}

// Unwrap exposes the recovered value when it is itself an error.
func (e *LeafPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
