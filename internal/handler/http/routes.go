package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/MKhiriev/go-api-response/internal/serializer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Serialization groups used by route annotations.
const (
	GroupPublic = "public"
	GroupOwner  = "owner"
)

// Init builds the router. It fails when a route annotation does not pass
// resolver validation.
func (h *Handler) Init() (*chi.Mux, error) {
	public, err := h.annotate(apiconfig.Record{
		Serializer: apiconfig.String(serializer.Groups),
		Groups:     []string{GroupPublic},
	})
	if err != nil {
		return nil, fmt.Errorf("public route annotation: %w", err)
	}

	owner, err := h.annotate(apiconfig.Record{
		Serializer: apiconfig.String(serializer.Groups),
		Groups:     []string{GroupOwner},
	})
	if err != nil {
		return nil, fmt.Errorf("owner route annotation: %w", err)
	}

	// an empty annotation only opts the route in
	optIn, err := h.annotate(apiconfig.Record{})
	if err != nil {
		return nil, fmt.Errorf("debug route annotation: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withCORS, h.withGZip)

	router.Get("/healthz", healthz)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.endpoint(h.getServerVersion))

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(public)
			r.Get("/widgets", h.endpoint(h.listWidgets))
			r.Get("/widgets/{id}", h.endpoint(h.getWidget))
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(owner, h.auth)
			r.With(h.limitBody).Post("/widgets", h.endpoint(h.createWidget))
			r.Delete("/widgets/{id}", h.endpoint(h.deleteWidget))
			r.Get("/me", h.endpoint(h.me))
		})
	})

	if h.debug {
		router.With(optIn).Get("/internal/debug/panic", h.endpoint(h.debugPanic))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router, nil
}

// healthz is a plain liveness probe outside API response handling.
func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
