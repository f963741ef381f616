package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations are expected to block in [Server.RunServer] until shutdown
// is requested and to release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done or a
	// stop signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
