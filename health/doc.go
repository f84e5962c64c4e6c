// Package health turns boundary state into health signals.
//
// A boundary's sticky error state and trailing error rate are exactly what
// liveness and readiness probes want to know about. This package provides a
// generic checker framework, a BoundaryChecker that maps boundary state to
// health status, an Aggregator that fans out over many checkers, and HTTP
// handlers for the usual probe endpoints.
//
// # Basic Usage
//
//	b, _ := boundary.New(boundary.Config[string]{...})
//
//	check := health.NewBoundaryChecker(b, health.BoundaryCheckerConfig{
//	    DegradedRate: 10, // degraded at 10 failed attempts per minute
//	})
//
//	result := check.Check(ctx)
//	if result.Status == health.StatusUnhealthy {
//	    log.Printf("%s: %s", check.Name(), result.Message)
//	}
//
// # Aggregating Checks
//
//	agg := health.NewAggregator()
//	agg.Register("payments", health.NewBoundaryChecker(paymentsBoundary, cfg))
//	agg.Register("search", health.NewBoundaryChecker(searchBoundary, cfg))
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
//
// # HTTP Endpoints
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg)
//	// /healthz liveness, /readyz readiness, /health detailed JSON
package health
