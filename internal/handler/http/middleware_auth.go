package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-response/internal/apierror"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the caller's
// user ID and token issuer in the request context with [utils.WithUser].
//
// Rejections go through the same path as endpoint failures: API response
// routes get an envelope classified as an authentication failure, other
// routes a plain 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("authorization header rejected")
			h.reject(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			h.reject(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.Issuer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// limitBody caps request bodies; reading past the limit fails with
// [*http.MaxBytesError].
func (h *Handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// reject answers a request that failed before reaching its endpoint.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error) {
	if _, ok := h.resolvers.Load().ResolveRequest(r); ok {
		h.respondError(w, r, err)
		return
	}

	status := apierror.Classify(translateError(err), false).Status
	http.Error(w, http.StatusText(status), status)
}
