package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-response/internal/utils"
	"github.com/MKhiriev/go-api-response/models"
)

// me describes the authenticated caller.
func (h *Handler) me(r *http.Request) (any, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, ErrNoUserInContext
	}
	issuer, _ := utils.GetIssuerFromContext(r.Context())

	return models.UserInfo{UserID: userID, Issuer: issuer}, nil
}

// debugPanic panics on purpose to exercise unclassified failure handling.
func (h *Handler) debugPanic(r *http.Request) (any, error) {
	panic(ErrDebugPanic)
}
