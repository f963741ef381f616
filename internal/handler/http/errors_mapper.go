package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-api-response/internal/apierror"
	"github.com/MKhiriev/go-api-response/internal/service"
	"github.com/MKhiriev/go-api-response/internal/store"
	"github.com/MKhiriev/go-api-response/internal/utils"
	"github.com/MKhiriev/go-api-response/internal/validators"
	"github.com/golang-jwt/jwt/v5"
)

// authErrors are failures that classify as authentication failures.
var authErrors = []error{
	utils.ErrNoAuthorizationHeader,
	utils.ErrInvalidAuthorizationHeader,
	service.ErrTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid,
	ErrNoUserInContext,
	jwt.ErrTokenMalformed,
	jwt.ErrTokenExpired,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenInvalidIssuer,
	jwt.ErrTokenNotValidYet,
}

// protocolErrors map host failures to plain HTTP statuses.
var protocolErrors = map[error]int{
	store.ErrWidgetNotFound: http.StatusNotFound,
	ErrInvalidWidgetID:      http.StatusBadRequest,
	ErrInvalidQuery:         http.StatusBadRequest,
	ErrInvalidBody:          http.StatusBadRequest,
}

// translateError turns host-native failures into classification input.
// Errors that already carry an [*apierror.Error] and errors it does not know
// are returned unchanged; the latter classify as unclassified.
func translateError(err error) error {
	var apiErr *apierror.Error
	if err == nil || errors.As(err, &apiErr) {
		return err
	}

	for _, target := range authErrors {
		if errors.Is(err, target) {
			return apierror.Unauthorized(err)
		}
	}

	if errors.Is(err, store.ErrWidgetAlreadyExists) {
		return apierror.New(CodeWidgetConflict, store.ErrWidgetAlreadyExists.Error()).
			WithStatus(http.StatusConflict).
			WithCause(err)
	}

	if validators.IsValidationError(err) {
		return apierror.New(CodeValidationFailed, validationMessage(err)).
			WithStatus(http.StatusUnprocessableEntity).
			WithCause(err)
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apierror.HTTP(http.StatusRequestEntityTooLarge).WithCause(err)
	}

	for target, status := range protocolErrors {
		if errors.Is(err, target) {
			return apierror.HTTP(status).WithCause(err)
		}
	}

	return err
}

// validationMessage returns the message of the innermost validator error so
// wrapping added by services does not reach clients.
func validationMessage(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if validators.IsValidationError(e) && errors.Unwrap(e) == nil {
			return e.Error()
		}
	}
	return fmt.Sprint(err)
}
