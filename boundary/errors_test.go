package boundary

import (
	"errors"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrMissingName, "boundary: name is required"},
		{ErrMissingFallback, "boundary: fallback handler is required"},
	}

	for _, tc := range cases {
		if tc.err.Error() != tc.want {
			t.Errorf("error = %q, want %q", tc.err.Error(), tc.want)
		}
	}
}

func TestPanicError(t *testing.T) {
	pe := &PanicError{Value: 42, Stack: []byte("goroutine 1 [running]:")}

	if !strings.Contains(pe.Error(), "42") {
		t.Errorf("Error() = %q, want the panicked value's string form", pe.Error())
	}
	if !strings.HasPrefix(pe.Error(), "boundary: operation panicked") {
		t.Errorf("Error() = %q, want boundary prefix", pe.Error())
	}

	var target *PanicError
	if !errors.As(error(pe), &target) {
		t.Error("errors.As failed to match *PanicError")
	}
}
