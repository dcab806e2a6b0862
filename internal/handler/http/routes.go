package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.With(h.requireIdentity).Get("/users", h.listUsers)

		r.Route("/users/{username}", func(r chi.Router) {
			r.Use(h.requireSameUser)
			r.Get("/", h.getUser)
			r.Get("/to", h.messagesTo)
			r.Get("/from", h.messagesFrom)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Use(h.requireIdentity)
			r.Post("/", h.sendMessage)
			r.Get("/{id}", h.getMessage)
			r.Post("/{id}/read", h.markMessageRead)
		})
	})

	return router
}
