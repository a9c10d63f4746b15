package errclass

import "fmt"

// Error is a stable, machine-readable error class.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// WithMessage returns a new Error with the same Code but a specific message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Code: e.Code, Message: msg}
}

// WithMessagef returns a new Error with a formatted message.
func (e *Error) WithMessagef(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// All stable error classes.
var (
	// ASCII layer: syntax errors, fail-fast with the offending line.
	ErrMalformedLine  = &Error{Code: "E_MALFORMED_LINE"}
	ErrMalformedFlags = &Error{Code: "E_MALFORMED_FLAGS"}

	// Record construction.
	ErrInvalidRecord = &Error{Code: "E_INVALID_RECORD"}

	// Integrity validation, collected rather than fail-fast.
	ErrNonContiguousIndex    = &Error{Code: "E_NONCONTIGUOUS_INDEX"}
	ErrNonMonotonicTimestamp = &Error{Code: "E_NONMONOTONIC_TIMESTAMP"}

	// Binary layer: structural errors.
	ErrIndexMismatch     = &Error{Code: "E_INDEX_MISMATCH"}
	ErrRecordOutOfRange  = &Error{Code: "E_RECORD_OUT_OF_RANGE"}
	ErrFormatUnsupported = &Error{Code: "E_FORMAT_UNSUPPORTED"}
	ErrTruncatedLog      = &Error{Code: "E_TRUNCATED_LOG"}
)
