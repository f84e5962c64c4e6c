package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonwraymond/guardrail/boundary"
)

type fakeSource struct {
	name     string
	metrics  boundary.Metrics
	errState bool
}

func (f *fakeSource) Name() string              { return f.name }
func (f *fakeSource) Metrics() boundary.Metrics { return f.metrics }
func (f *fakeSource) InErrorState() bool        { return f.errState }

func TestBoundaryChecker_Healthy(t *testing.T) {
	source := &fakeSource{name: "payments"}
	checker := NewBoundaryChecker(source, BoundaryCheckerConfig{DegradedRate: 10})

	if checker.Name() != "payments" {
		t.Errorf("Name() = %q, want payments", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want StatusHealthy", result.Status)
	}
	if result.Details["error_count"] != int64(0) {
		t.Errorf("Details[error_count] = %v, want 0", result.Details["error_count"])
	}
}

func TestBoundaryChecker_ErrorStateIsUnhealthy(t *testing.T) {
	source := &fakeSource{
		name:     "search",
		errState: true,
		metrics: boundary.Metrics{
			ErrorCount:    4,
			FallbackCount: 4,
			ErrorRate:     2,
			LastErrorAt:   time.Now(),
		},
	}
	checker := NewBoundaryChecker(source, BoundaryCheckerConfig{})

	result := checker.Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want StatusUnhealthy", result.Status)
	}
	if !errors.Is(result.Error, ErrBoundaryErrorState) {
		t.Errorf("Error = %v, want ErrBoundaryErrorState", result.Error)
	}
	if result.Details["fallback_count"] != int64(4) {
		t.Errorf("Details[fallback_count] = %v, want 4", result.Details["fallback_count"])
	}
	if _, ok := result.Details["last_error_at"]; !ok {
		t.Error("Details missing last_error_at")
	}
}

func TestBoundaryChecker_DegradedRate(t *testing.T) {
	source := &fakeSource{
		name:    "search",
		metrics: boundary.Metrics{ErrorRate: 12},
	}

	t.Run("at or above threshold", func(t *testing.T) {
		checker := NewBoundaryChecker(source, BoundaryCheckerConfig{DegradedRate: 10})
		result := checker.Check(context.Background())
		if result.Status != StatusDegraded {
			t.Errorf("Status = %v, want StatusDegraded", result.Status)
		}
	})

	t.Run("below threshold", func(t *testing.T) {
		checker := NewBoundaryChecker(source, BoundaryCheckerConfig{DegradedRate: 20})
		result := checker.Check(context.Background())
		if result.Status != StatusHealthy {
			t.Errorf("Status = %v, want StatusHealthy", result.Status)
		}
	})

	t.Run("zero threshold disables", func(t *testing.T) {
		checker := NewBoundaryChecker(source, BoundaryCheckerConfig{})
		result := checker.Check(context.Background())
		if result.Status != StatusHealthy {
			t.Errorf("Status = %v, want StatusHealthy", result.Status)
		}
	})
}

func TestBoundaryChecker_RealBoundary(t *testing.T) {
	ctx := context.Background()

	b, err := boundary.New(boundary.Config[string]{
		Name: "inventory",
		Fallback: func(ctx context.Context, err error, ec boundary.ErrorContext) (string, error) {
			return "default", nil
		},
	})
	if err != nil {
		t.Fatalf("boundary.New() error = %v", err)
	}

	checker := NewBoundaryChecker(b, BoundaryCheckerConfig{})

	if got := checker.Check(ctx).Status; got != StatusHealthy {
		t.Errorf("Status before failure = %v, want StatusHealthy", got)
	}

	_, _ = b.Execute(ctx, func(ctx context.Context) (string, error) {
		return "", errors.New("backend down")
	})

	if got := checker.Check(ctx).Status; got != StatusUnhealthy {
		t.Errorf("Status after failure = %v, want StatusUnhealthy", got)
	}

	b.ClearErrorState()
	if got := checker.Check(ctx).Status; got != StatusHealthy {
		t.Errorf("Status after clear = %v, want StatusHealthy", got)
	}
}
