package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

func staticChecker(name string, result Result) Checker {
	return NewCheckerFunc(name, func(ctx context.Context) Result {
		return result
	})
}

func TestAggregator_RegisterUnregister(t *testing.T) {
	agg := NewAggregator()
	agg.Register("b", staticChecker("b", Healthy("ok")))
	agg.Register("a", staticChecker("a", Healthy("ok")))

	names := agg.CheckerNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("CheckerNames() = %v, want [a b]", names)
	}

	agg.Unregister("a")
	names = agg.CheckerNames()
	if len(names) != 1 || names[0] != "b" {
		t.Errorf("CheckerNames() after unregister = %v, want [b]", names)
	}
}

func TestAggregator_Check(t *testing.T) {
	agg := NewAggregator()
	agg.Register("db", staticChecker("db", Healthy("connected")))

	result, err := agg.Check(context.Background(), "db")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want StatusHealthy", result.Status)
	}
	if result.Duration <= 0 {
		t.Error("Duration not recorded")
	}

	_, err = agg.Check(context.Background(), "missing")
	if !errors.Is(err, ErrCheckerNotFound) {
		t.Errorf("Check(missing) error = %v, want ErrCheckerNotFound", err)
	}
}

func TestAggregator_CheckAll(t *testing.T) {
	run := func(t *testing.T, parallel bool) {
		agg := NewAggregatorWithConfig(AggregatorConfig{Parallel: parallel})
		agg.Register("ok", staticChecker("ok", Healthy("fine")))
		agg.Register("slow", staticChecker("slow", Degraded("lagging")))
		agg.Register("down", staticChecker("down", Unhealthy("dead", errors.New("dead"))))

		results := agg.CheckAll(context.Background())
		if len(results) != 3 {
			t.Fatalf("len(results) = %d, want 3", len(results))
		}
		if results["ok"].Status != StatusHealthy {
			t.Errorf("ok status = %v, want StatusHealthy", results["ok"].Status)
		}
		if results["slow"].Status != StatusDegraded {
			t.Errorf("slow status = %v, want StatusDegraded", results["slow"].Status)
		}
		if results["down"].Status != StatusUnhealthy {
			t.Errorf("down status = %v, want StatusUnhealthy", results["down"].Status)
		}
		if agg.OverallStatus(results) != StatusUnhealthy {
			t.Errorf("OverallStatus = %v, want StatusUnhealthy", agg.OverallStatus(results))
		}
	}

	t.Run("sequential", func(t *testing.T) { run(t, false) })
	t.Run("parallel", func(t *testing.T) { run(t, true) })
}

func TestAggregator_OverallStatus(t *testing.T) {
	agg := NewAggregator()

	cases := []struct {
		name    string
		results map[string]Result
		want    Status
	}{
		{
			name:    "empty",
			results: map[string]Result{},
			want:    StatusHealthy,
		},
		{
			name: "all healthy",
			results: map[string]Result{
				"a": {Status: StatusHealthy},
				"b": {Status: StatusHealthy},
			},
			want: StatusHealthy,
		},
		{
			name: "degraded wins over healthy",
			results: map[string]Result{
				"a": {Status: StatusHealthy},
				"b": {Status: StatusDegraded},
			},
			want: StatusDegraded,
		},
		{
			name: "unhealthy wins over degraded",
			results: map[string]Result{
				"a": {Status: StatusDegraded},
				"b": {Status: StatusUnhealthy},
			},
			want: StatusUnhealthy,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := agg.OverallStatus(tc.results); got != tc.want {
				t.Errorf("OverallStatus() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAggregator_Timeout(t *testing.T) {
	agg := NewAggregatorWithConfig(AggregatorConfig{Timeout: 20 * time.Millisecond})
	agg.Register("hang", NewCheckerFunc("hang", func(ctx context.Context) Result {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return Healthy("too late")
	}))

	result, err := agg.Check(context.Background(), "hang")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want StatusUnhealthy", result.Status)
	}
	if !errors.Is(result.Error, ErrCheckTimeout) {
		t.Errorf("Error = %v, want ErrCheckTimeout", result.Error)
	}
}
