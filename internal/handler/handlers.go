package handler

import (
	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/MKhiriev/go-api-response/internal/config"
	"github.com/MKhiriev/go-api-response/internal/handler/http"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/serializer"
	"github.com/MKhiriev/go-api-response/internal/service"
)

// Handlers groups the transport handlers of the server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler over the shared resolver store and
// serializer registry. The debug switch and the body limit come from cfg.
func NewHandlers(services *service.Services, resolvers *apiconfig.Store, serializers *serializer.Registry, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, resolvers, serializers, logger,
			http.WithDebug(cfg.App.Debug),
			http.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
		),
	}, nil
}
