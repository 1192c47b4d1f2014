// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// storefront. Crawler-facing files, document pages and the CMS webhook
// share one middleware stack; the webhook is additionally rate limited.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. limiter may be nil.
func New(storefront *handlers.Storefront, seo *handlers.SEO, webhook *handlers.Webhook, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.RobotsTag)

	r.Get("/health", healthHandler)

	// Crawler-facing files.
	r.Get("/robots.txt", seo.Robots)
	r.Get("/sitemap.xml", seo.Sitemap)

	// Storefront documents.
	r.Get("/", storefront.Home)
	r.Get("/pages/{handle}", storefront.Page)
	r.Get("/products/{handle}", storefront.Product)
	r.Get("/collections/{handle}", storefront.Collection)

	// CMS publish notifications.
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Post("/webhooks/cms", webhook.CMS)
	})

	r.NotFound(storefront.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
