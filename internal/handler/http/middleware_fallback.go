package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-response/internal/apierror"
)

// notFound is the router's NotFound handler. Paths covered by a path rule
// get a 404 envelope.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, apierror.HTTP(http.StatusNotFound))
}

// methodNotAllowed is the router's MethodNotAllowed handler. Paths covered by
// a path rule get a 405 envelope.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, apierror.HTTP(http.StatusMethodNotAllowed))
}
