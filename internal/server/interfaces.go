package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until ctx is done and
// to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done or the
	// server stops on its own.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
