package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-api-response/internal/config"
	"github.com/MKhiriev/go-api-response/internal/handler"
	"github.com/MKhiriev/go-api-response/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger
}

// NewServer builds the router of handlers and binds it to an HTTP server
// listening on cfg.HTTPAddress. Route setup errors are returned as is.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	router, err := handlers.HTTP.Init()
	if err != nil {
		return nil, fmt.Errorf("error building router: %w", err)
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) {
	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}
	return s.serve(ctx, listener)
}

// serve runs the HTTP server on l and shuts it down once ctx is done.
func (s *server) serve(ctx context.Context, l net.Listener) error {
	served := make(chan struct{})

	s.logger.Info().Str("address", l.Addr().String()).Msg("Launching HTTP server")
	go func() {
		s.httpServer.Serve(l)
		close(served)
	}()

	<-ctx.Done()

	// finish started server
	s.Shutdown()
	<-served

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
