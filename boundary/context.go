package boundary

import "time"

// ErrorContext describes the final failure of an exhausted call. It is
// built once per exhausted call and handed to the OnError hook and the
// fallback.
type ErrorContext struct {
	// Boundary is the name of the boundary that exhausted its attempts.
	Boundary string

	// Timestamp is when the call was resolved as exhausted.
	Timestamp time.Time

	// Stack is the captured stack trace of the final failure.
	Stack string

	// Fields holds caller-supplied partial context attached via call
	// options. May be nil.
	Fields map[string]any
}

// Map flattens the context into a single map for structured logging.
// Caller-supplied fields take precedence over the base keys on collision.
func (ec ErrorContext) Map() map[string]any {
	m := make(map[string]any, len(ec.Fields)+3)
	m["boundary"] = ec.Boundary
	m["timestamp"] = ec.Timestamp
	m["stack"] = ec.Stack
	for k, v := range ec.Fields {
		m[k] = v
	}
	return m
}
