package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.root)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		// bearer-protected resource routes
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/accounts", newResourceRoutes("Account", h.services.Accounts).mount)
			r.Route("/incomes", newResourceRoutes("Income", h.services.Incomes).mount)
			r.Route("/expenses", newResourceRoutes("Expense", h.services.Expenses).mount)
			r.Route("/savings", newResourceRoutes("Saving", h.services.Savings).mount)
		})
	})

	return router
}

// root is a plain liveness endpoint.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Expense Tracker API is running"))
}
