// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/projects", h.listProjects)
		r.Get("/projects/{projectID}", h.getProject)
		r.Patch("/projects/{projectID}", h.updateProject)
		r.Put("/projects/{projectID}/events", h.replaceTimeline)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
