// Package server wires and runs the sign-out HTTP server.
//
// It owns the server lifecycle: startup, waiting for the stop signal and
// graceful shutdown with in-flight requests drained.
package server
