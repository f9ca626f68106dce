// Package apperr carries the error taxonomy shared by the service layers.
// Handlers translate an error kind to an HTTP status; the kinds themselves
// stay transport-agnostic.
package apperr

import "net/http"

// Kind classifies a service failure.
type Kind int

const (
	// Validation is a malformed or missing input field.
	Validation Kind = iota
	// NotFound is a reference to an absent record.
	NotFound
	// Conflict is a unique-constraint violation.
	Conflict
	// Upstream is a platform API failure, surfaced verbatim.
	Upstream
	// Internal is any other failure, surfaced as a generic message.
	Internal
)

// Error is a classified service failure with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Validation, Upstream:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Status is a convenience for handlers: the status for err, or fallback 500.
func Status(err *Error) int {
	if err == nil {
		return http.StatusOK
	}
	return HTTPStatus(err.Kind)
}
