// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/markdown"
	"storefront/internal/models"
	"storefront/internal/render"
	"storefront/internal/seo"
	"storefront/internal/slug"
)

// Storefront renders CMS documents as storefront pages. Every page carries a
// robots meta tag resolved from a fresh settings snapshot.
type Storefront struct {
	settings  SettingsSource
	documents DocumentSource
	renderer  *render.Renderer
	baseURL   string
	siteName  string
}

// NewStorefront creates the storefront page handlers.
func NewStorefront(settings SettingsSource, documents DocumentSource, renderer *render.Renderer, baseURL, siteName string) *Storefront {
	return &Storefront{
		settings:  settings,
		documents: documents,
		renderer:  renderer,
		baseURL:   baseURL,
		siteName:  siteName,
	}
}

// Home renders the page with the homepage handle at "/".
func (s *Storefront) Home(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, models.DocumentKindPage, models.HomepageHandle)
}

// Page renders /pages/{handle}.
func (s *Storefront) Page(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	// The homepage is only reachable at "/" so it has a single canonical URL.
	if handle == models.HomepageHandle {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
		return
	}
	s.serveDocument(w, r, models.DocumentKindPage, handle)
}

// Product renders /products/{handle}.
func (s *Storefront) Product(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, models.DocumentKindProduct, chi.URLParam(r, "handle"))
}

// Collection renders /collections/{handle}.
func (s *Storefront) Collection(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, models.DocumentKindCollection, chi.URLParam(r, "handle"))
}

// NotFound renders the 404 page. It is always noindex.
func (s *Storefront) NotFound(w http.ResponseWriter, r *http.Request) {
	s.renderer.Page(w, http.StatusNotFound, "not_found", &render.PageData{
		SiteName: s.siteName,
		Meta: seo.MetaTags{
			Title:  "Page not found",
			Robots: seo.DirectiveNoIndexNoFollow,
		},
	})
}

func (s *Storefront) serveDocument(w http.ResponseWriter, r *http.Request, kind models.DocumentKind, handle string) {
	ctx := r.Context()

	if !slug.Valid(handle) {
		s.NotFound(w, r)
		return
	}

	doc, err := s.documents.FindByHandle(ctx, kind, handle)
	if err != nil {
		slog.Error("find document failed", "error", err, "kind", kind, "handle", handle)
		w.Header().Set("X-Robots-Tag", seo.DirectiveNoIndexNoFollow)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if doc == nil {
		s.NotFound(w, r)
		return
	}

	global := loadSettings(ctx, s.settings)
	meta := seo.BuildMeta(doc, global, s.baseURL)

	body, err := markdown.ToHTML(doc.Body)
	if err != nil {
		slog.Error("render document body failed", "error", err, "path", doc.Path())
		body = ""
	}

	s.renderer.Page(w, http.StatusOK, "document", &render.PageData{
		SiteName: s.siteName,
		Meta:     meta,
		Body:     body,
	})
}
