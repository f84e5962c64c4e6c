package boundary

import (
	"errors"
	"fmt"
)

// Configuration errors returned by New.
var (
	// ErrMissingName indicates Config.Name is empty or whitespace.
	ErrMissingName = errors.New("boundary: name is required")

	// ErrMissingFallback indicates Config.Fallback is nil.
	ErrMissingFallback = errors.New("boundary: fallback handler is required")
)

// PanicError is the normalized form of an operation that panicked instead
// of returning an error. The panicked value and the stack captured at
// recovery are preserved.
type PanicError struct {
	Value any
	Stack []byte
}

// Error returns the panicked value's string representation.
func (e *PanicError) Error() string {
	return fmt.Sprintf("boundary: operation panicked: %v", e.Value)
}
