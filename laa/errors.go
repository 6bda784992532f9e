package laa

import "fmt"

// ErrorKind distinguishes the three ways a decision call can fail.
type ErrorKind string

const (
	// InvalidArgument means a caller-supplied value violated a
	// documented bound (trust out of range, negative price, mismatched
	// sequence lengths, num_machines < 1, and similar).
	InvalidArgument ErrorKind = "invalid_argument"

	// UnknownPrimitive means a dispatcher received a primitive name it
	// does not recognize.
	UnknownPrimitive ErrorKind = "unknown_primitive"

	// InternalInvariantViolation means a primitive was called with
	// state that should have been impossible to construct (a cache
	// longer than its configured size, duplicate cache entries).
	InternalInvariantViolation ErrorKind = "internal_invariant_violation"
)

// DecisionError reports a single failed validation or invariant check.
// Field and Value carry enough context for a caller to diagnose the
// failure without re-deriving it from the message string.
type DecisionError struct {
	Kind    ErrorKind
	Field   string
	Value   any
	Message string
}

func (e *DecisionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("laa: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("laa: %s: %s (field=%s, value=%v)", e.Kind, e.Message, e.Field, e.Value)
}

func invalidArgf(field string, value any, format string, args ...any) error {
	return &DecisionError{
		Kind:    InvalidArgument,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}

func invariantf(field string, value any, format string, args ...any) error {
	return &DecisionError{
		Kind:    InternalInvariantViolation,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}
