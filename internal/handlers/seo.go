// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/models"
	"storefront/internal/seo"
	"storefront/internal/sitemap"
)

// settingsTimeout bounds the settings fetch on every request.
const settingsTimeout = 3 * time.Second

// robotsCacheControl lets crawlers and CDNs reuse robots.txt and
// sitemap.xml for about an hour.
const robotsCacheControl = "public, max-age=3600"

// ErrSettingsUnavailable is returned by Snapshots when the settings snapshot
// could not be loaded.
var ErrSettingsUnavailable = errors.New("seo settings unavailable")

// SettingsSource provides the global SEO controls for one request.
type SettingsSource interface {
	SeoControls(ctx context.Context) (*models.GlobalSeoControls, error)
}

// DocumentSource provides published CMS documents.
type DocumentSource interface {
	FindByHandle(ctx context.Context, kind models.DocumentKind, handle string) (*models.Document, error)
	ListPublished(ctx context.Context) ([]models.Document, error)
}

// loadSettings fetches the settings snapshot. Any failure is logged and
// reported as nil, which every seo function treats as "not discoverable".
func loadSettings(ctx context.Context, src SettingsSource) *models.GlobalSeoControls {
	ctx, cancel := context.WithTimeout(ctx, settingsTimeout)
	defer cancel()

	g, err := src.SeoControls(ctx)
	if err != nil {
		slog.Error("load seo settings failed, failing closed", "error", err)
		return nil
	}
	return g
}

// SEO groups the crawler-facing resource handlers.
type SEO struct {
	settings  SettingsSource
	documents DocumentSource
	baseURL   string
}

// NewSEO creates the robots.txt and sitemap.xml handlers. baseURL is the
// public origin used for absolute sitemap locations.
func NewSEO(settings SettingsSource, documents DocumentSource, baseURL string) *SEO {
	return &SEO{settings: settings, documents: documents, baseURL: baseURL}
}

// RobotsBody renders robots.txt for the current settings.
func (s *SEO) RobotsBody(ctx context.Context) []byte {
	g := loadSettings(ctx, s.settings)
	return []byte(seo.RenderRobotsTxt(g, seo.SitemapURL(s.baseURL)))
}

// SitemapBody renders sitemap.xml for the current settings and documents.
// Unavailable settings yield an empty urlset; a document listing error is
// returned.
func (s *SEO) SitemapBody(ctx context.Context) ([]byte, error) {
	return s.sitemapFor(ctx, loadSettings(ctx, s.settings))
}

// Snapshots renders robots.txt and sitemap.xml from one settings snapshot.
// Unlike the crawler-facing handlers it does not fall back to the closed
// template: a settings failure is reported as ErrSettingsUnavailable.
func (s *SEO) Snapshots(ctx context.Context) (robots, sitemapXML []byte, err error) {
	fetchCtx, cancel := context.WithTimeout(ctx, settingsTimeout)
	g, err := s.settings.SeoControls(fetchCtx)
	cancel()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}
	if g == nil {
		return nil, nil, ErrSettingsUnavailable
	}

	sitemapXML, err = s.sitemapFor(ctx, g)
	if err != nil {
		return nil, nil, err
	}
	return []byte(seo.RenderRobotsTxt(g, seo.SitemapURL(s.baseURL))), sitemapXML, nil
}

func (s *SEO) sitemapFor(ctx context.Context, g *models.GlobalSeoControls) ([]byte, error) {
	var docs []models.Document
	if seo.PolicyFor(g) != seo.PolicyClosed {
		var err error
		docs, err = s.documents.ListPublished(ctx)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	set := sitemap.Build(s.baseURL, sitemap.EntriesFromDocuments(docs), g)
	if err := sitemap.Write(&buf, set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Robots serves /robots.txt. It always answers 200; when settings cannot be
// loaded the restrictive template is served instead of an error.
func (s *SEO) Robots(w http.ResponseWriter, r *http.Request) {
	body := s.RobotsBody(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", robotsCacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Sitemap serves /sitemap.xml listing indexable published documents.
func (s *SEO) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := s.SitemapBody(r.Context())
	if err != nil {
		slog.Error("build sitemap failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", robotsCacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
