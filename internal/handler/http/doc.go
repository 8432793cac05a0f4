// Package http implements the HTTP transport layer of the sign-out server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API consumed by the kiosk terminals. Cross-cutting concerns such as
// session authentication, request tracing and access logging are handled in
// this package before requests are delegated to the service layer.
package http
