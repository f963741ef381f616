// Package server runs the application's HTTP server.
//
// It owns the server lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
