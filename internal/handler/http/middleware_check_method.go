// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-signout/internal/app"
	"github.com/MKhiriev/go-signout/internal/logger"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router. A terminal calling a route with the wrong method
// gets the same 404 as for a path that does not exist, so the API surface
// is not revealed to callers probing methods.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route for request")

	http.Error(w, app.MsgRouteNotFound, http.StatusNotFound)
}
