package askweb

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These codes classify errors at the domain level so that transport layers
// can map them to user-facing responses without inspecting error strings.
const (
	EINVALID     = "invalid"      // validation failed
	ENOTFOUND    = "not_found"    // entity does not exist
	EUNAVAILABLE = "unavailable"  // store or provider connectivity failure
	EEMPTYCORPUS = "empty_corpus" // query attempted with zero stored documents
	EMISMATCH    = "mismatch"     // query-time embedding space differs from index-time
	EGENERATION  = "generation"   // language model call failed
	EINTERNAL    = "internal"     // internal error
)

// Error represents an application-specific error. Errors can be unwrapped to
// reach the underlying cause.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// Underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("askweb error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("askweb error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError constructs an Error that carries an underlying cause. The cause
// is preserved for errors.Is/As and included in the message.
func WrapError(err error, code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// ErrorCode returns the code of the given error, if available. Returns
// EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the given error, if available. Returns
// a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
