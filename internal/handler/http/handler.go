package http

import (
	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/serializer"
	"github.com/MKhiriev/go-api-response/internal/service"
	"github.com/MKhiriev/go-api-response/internal/utils"
)

type Handler struct {
	services *service.Services

	// resolvers holds the live resolver; reloads swap it atomically.
	resolvers   *apiconfig.Store
	serializers *serializer.Registry

	// debug discloses unclassified failure detail in error titles.
	debug bool

	// maxBodyBytes caps request bodies of widget writes.
	maxBodyBytes int64

	ids    utils.IDGenerator
	logger *logger.Logger
}

// Option customises a [Handler].
type Option func(*Handler)

// WithDebug enables debug disclosure of unclassified failures.
func WithDebug(debug bool) Option {
	return func(h *Handler) {
		h.debug = debug
	}
}

// WithMaxBodyBytes overrides the request body limit. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

const defaultMaxBodyBytes = 1 << 20

func NewHandler(services *service.Services, resolvers *apiconfig.Store, serializers *serializer.Registry, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:     services,
		resolvers:    resolvers,
		serializers:  serializers,
		maxBodyBytes: defaultMaxBodyBytes,
		ids:          utils.NewUUIDGenerator(),
		logger:       logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("debug", h.debug).Msg("http handler created")
	return h
}
