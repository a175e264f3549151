package talkify

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tags an Error with its failure class.
type ErrorKind string

const (
	// KindKeyMissing means the client was constructed without an API key.
	KindKeyMissing ErrorKind = "key_missing"
	// KindValidation means a supplied option value is outside its allowed domain.
	KindValidation ErrorKind = "validation"
	// KindRequest means the transport failed or the service answered with a
	// non-success status.
	KindRequest ErrorKind = "request"
)

// Error is the single error type returned by this package. StatusCode is only
// set for KindRequest failures that carried an HTTP status.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	cause      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("talkify: %s", e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newKeyMissingError() *Error {
	return &Error{
		Kind:    KindKeyMissing,
		Message: "no API key supplied; create one at https://manage.talkify.net",
	}
}

func newValidationError(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func newRequestError(message string, statusCode int, cause error) *Error {
	if cause != nil {
		// WithStack so callers printing %+v see where the request failed.
		cause = errors.WithStack(cause)
	}
	return &Error{
		Kind:       KindRequest,
		Message:    message,
		StatusCode: statusCode,
		cause:      cause,
	}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var te *Error
	ok := stderrors.As(err, &te)
	return te, ok
}

// IsKind reports whether err is a talkify Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	te, ok := AsError(err)
	return ok && te.Kind == kind
}
