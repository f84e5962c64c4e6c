// Package boundary provides an error-isolation wrapper for fallible operations.
//
// A Boundary executes a caller-supplied operation, retries it on failure,
// and resolves exhausted calls through a caller-supplied fallback while
// tracking failure metrics and a sticky error state. It is not a circuit
// breaker: a boundary never rejects calls based on prior failures, it only
// retries within a call and accounts for failures across calls.
//
// # Usage
//
// Create a boundary once and share it across callers:
//
//	b, err := boundary.New(boundary.Config[string]{
//	    Name:       "profile-service",
//	    MaxRetries: 2,
//	    RetryDelay: 100 * time.Millisecond,
//	    Fallback: func(ctx context.Context, err error, ec boundary.ErrorContext) (string, error) {
//	        return "anonymous", nil
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, err := b.Execute(ctx, func(ctx context.Context) (string, error) {
//	    return client.FetchDisplayName(ctx, userID)
//	})
//
// A permanently failing operation is attempted MaxRetries+1 times, then the
// fallback's value becomes the call result. With Rethrow set, the original
// operation error is returned to the caller instead, after the fallback and
// all accounting have run.
//
// # Metrics and error state
//
// Each boundary owns cumulative counters (exhausted calls, fallback
// invocations, recoveries), the timestamp of the most recent exhausted
// call, and a rate of failed attempts over the trailing 60 seconds:
//
//	m := b.Metrics()
//	if b.InErrorState() {
//	    log.Printf("%s degraded: %d errors, rate %d/min", b.Name(), m.ErrorCount, m.ErrorRate)
//	}
//
// The error state is sticky: it is set when any call exhausts its attempts
// and cleared only by ClearErrorState. ResetMetrics zeroes the counters
// without touching the flag.
//
// All methods are safe for concurrent use. Concurrent Execute calls run
// their retry loops independently; only the counters are serialized.
package boundary
