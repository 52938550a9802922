package errors

import "net/http"

var ErrInvalidForm = &Exception{
	Kind:       KindValidation,
	Message:    "invalid form submission",
	StatusCode: http.StatusBadRequest,
}
