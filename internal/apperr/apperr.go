package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure by how it is reported to the caller.
type Kind int

const (
	// Internal is the kind of any error that was not classified.
	Internal Kind = iota
	// NotFound means the requested code or key is absent from the authoritative documents.
	NotFound
	// LoadError means an underlying document is missing or could not be parsed.
	LoadError
	// InvalidArgument means a required request parameter is missing or empty.
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case LoadError:
		return "load_error"
	case InvalidArgument:
		return "invalid_argument"
	default:
		return "internal"
	}
}

// Error is a classified error. Message is safe to show to API clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgumentf(format string, args ...any) error {
	return &Error{Kind: InvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// Load wraps a document failure.
func Load(err error, format string, args ...any) error {
	return &Error{Kind: LoadError, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
