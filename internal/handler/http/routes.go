package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/scan", h.scanUser)
		r.Post("/api/auth/pin", h.verifyPIN)
		r.Post("/api/auth/register", h.register)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes that need a live session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/signout", h.signOut)
		r.Get("/api/auth/session", h.currentSession)

		r.Post("/api/items/scan", h.scanItem)
		r.Post("/api/items/register", h.registerItem)

		r.Post("/api/custody/checkout", h.checkout)
		r.Post("/api/custody/checkin", h.checkin)
		r.Get("/api/custody/active", h.listActive)
		r.Get("/api/custody/history/{itemID}", h.history)
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}
