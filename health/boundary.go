package health

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/guardrail/boundary"
)

// StateSource exposes the boundary state a health check needs. It is
// satisfied by *boundary.Boundary[T] for any T.
type StateSource interface {
	Name() string
	Metrics() boundary.Metrics
	InErrorState() bool
}

// BoundaryCheckerConfig configures a BoundaryChecker.
type BoundaryCheckerConfig struct {
	// DegradedRate is the trailing-window error rate at or above which the
	// boundary reports degraded. Zero disables rate-based degradation.
	DegradedRate int
}

// BoundaryChecker reports the health of a single boundary. A boundary in
// its sticky error state is unhealthy until the state is cleared; a
// boundary failing faster than DegradedRate is degraded.
type BoundaryChecker struct {
	source StateSource
	config BoundaryCheckerConfig
}

// NewBoundaryChecker creates a checker over the given boundary.
func NewBoundaryChecker(source StateSource, config BoundaryCheckerConfig) *BoundaryChecker {
	return &BoundaryChecker{source: source, config: config}
}

// Name returns the boundary's name.
func (c *BoundaryChecker) Name() string {
	return c.source.Name()
}

// Check inspects the boundary's state and metrics.
func (c *BoundaryChecker) Check(_ context.Context) Result {
	metrics := c.source.Metrics()
	details := map[string]any{
		"error_count":    metrics.ErrorCount,
		"fallback_count": metrics.FallbackCount,
		"recovery_count": metrics.RecoveryCount,
		"error_rate":     metrics.ErrorRate,
	}
	if !metrics.LastErrorAt.IsZero() {
		details["last_error_at"] = metrics.LastErrorAt.Format(time.RFC3339)
	}

	if c.source.InErrorState() {
		return Unhealthy("boundary in error state", ErrBoundaryErrorState).WithDetails(details)
	}

	if c.config.DegradedRate > 0 && metrics.ErrorRate >= c.config.DegradedRate {
		msg := fmt.Sprintf("error rate %d at or above threshold %d", metrics.ErrorRate, c.config.DegradedRate)
		return Degraded(msg).WithDetails(details)
	}

	return Healthy("boundary healthy").WithDetails(details)
}
