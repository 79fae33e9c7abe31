package internal

import "errors"

// ErrorKind classifies the failures an invocation can surface in its result.
// Every remote failure maps to exactly one kind so the log sink can be keyed
// off a stable vocabulary rather than error strings.
type ErrorKind string

const (
	ErrorKindUnrecognizedTrigger ErrorKind = "unrecognized_trigger"
	ErrorKindQueueUnavailable    ErrorKind = "queue_unavailable"
	ErrorKindServiceUnavailable  ErrorKind = "service_unavailable"
	ErrorKindMutationFailed      ErrorKind = "mutation_failed"
)

// Error wraps a causal error with its kind. It composes with the standard
// errors.Is/As chain so callers can still inspect the underlying failure.
type Error struct {
	Kind  ErrorKind
	cause error
}

func NewError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the ErrorKind from anywhere in err's chain, or "" if the
// error carries no kind.
func KindOf(err error) ErrorKind {
	var kinded *Error
	if errors.As(err, &kinded) {
		return kinded.Kind
	}
	return ""
}
