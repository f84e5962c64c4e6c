package health

import "errors"

var (
	// ErrCheckTimeout indicates a health check timed out.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrCheckerNotFound indicates a checker was not found.
	ErrCheckerNotFound = errors.New("health: checker not found")

	// ErrBoundaryErrorState indicates a boundary is in its sticky error state.
	ErrBoundaryErrorState = errors.New("health: boundary in error state")
)
