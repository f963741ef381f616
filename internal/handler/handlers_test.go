package handler

import (
	"testing"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/MKhiriev/go-api-response/internal/config"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/serializer"
	"github.com/MKhiriev/go-api-response/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDeps returns the shared dependencies of NewHandlers. The services
// are only stored by http.NewHandler, so an empty aggregate is enough for
// construction-time tests.
func newTestDeps(t *testing.T) (*service.Services, *apiconfig.Store, *serializer.Registry) {
	t.Helper()

	r, err := apiconfig.New(apiconfig.Record{}, nil)
	require.NoError(t, err)
	return &service.Services{}, apiconfig.NewStore(r), serializer.NewRegistry()
}

func TestNewHandlers_HTTP(t *testing.T) {
	services, store, registry := newTestDeps(t)
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080", MaxBodyBytes: 512}}

	h, err := NewHandlers(services, store, registry, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	services, store, registry := newTestDeps(t)

	h, err := NewHandlers(services, store, registry, config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_RouterBuilds(t *testing.T) {
	services, store, registry := newTestDeps(t)
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(services, store, registry, cfg, logger.Nop())
	require.NoError(t, err)

	router, err := h.HTTP.Init()
	require.NoError(t, err)
	assert.NotNil(t, router)
}
