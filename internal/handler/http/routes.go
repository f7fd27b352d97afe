// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no route for "+r.Method+" "+r.URL.Path)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method "+r.Method+" is not allowed on "+r.URL.Path)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/Account/{id}", h.getAccount)
		r.Put("/Account/{id}", h.updateAccount)
		r.Post("/create", h.createAccount)
		r.Delete("/{id}", h.deleteAccount)
		r.Post("/Transaction", h.transact)
		r.Get("/History/{id}", h.getHistory)
	})

	return router
}
