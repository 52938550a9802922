package errors

import (
	"errors"
	"net/http"
)

// Kind tags the failure class of an error returned by the task service.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindNotFound
	KindPersistence
	KindPort
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	default:
		return "port"
	}
}

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}

	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// KindOf classifies err. Errors that are neither validation failures nor
// Exceptions came from a port and are reported as KindPort.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation
	}

	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPort
}
