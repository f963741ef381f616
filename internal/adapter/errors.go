package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Status sentinels matched through [*ResponseError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrNotEnvelope is returned when a response body is not an API
	// response envelope.
	ErrNotEnvelope = errors.New("response is not an envelope")

	// ErrEmptyAddress is returned by [NewHTTPWidgetClient] for an empty
	// server address.
	ErrEmptyAddress = errors.New("empty address")
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// ResponseError is a failed API response. For envelope responses Code and
// Title come from the single envelope error; for plain responses Code is
// the status and Title the trimmed body.
type ResponseError struct {
	Status int
	Code   int
	Title  string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: code %d: %s", e.Status, e.Code, e.Title)
}

// Unwrap returns the status sentinel, if there is one for e.Status.
func (e *ResponseError) Unwrap() error {
	return statusErrors[e.Status]
}
