// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const (
	// webhookSecretHeader carries the shared secret configured in the CMS.
	webhookSecretHeader = "X-Webhook-Secret"

	// maxWebhookBodyLen caps how much of the payload is drained.
	maxWebhookBodyLen = 64 << 10
)

// SettingsInvalidator drops any cached settings snapshot.
type SettingsInvalidator interface {
	Invalidate(ctx context.Context)
}

// SnapshotPublisher mirrors robots.txt and sitemap.xml to external storage.
type SnapshotPublisher interface {
	PublishSnapshots(ctx context.Context, robots, sitemap []byte) error
}

// Webhook handles CMS publish notifications.
type Webhook struct {
	secret    string
	cache     SettingsInvalidator
	seo       *SEO
	publisher SnapshotPublisher
}

// NewWebhook creates the CMS webhook handler. cache and publisher may be nil.
// An empty secret disables the endpoint.
func NewWebhook(secret string, cache SettingsInvalidator, seoHandlers *SEO, publisher SnapshotPublisher) *Webhook {
	return &Webhook{secret: secret, cache: cache, seo: seoHandlers, publisher: publisher}
}

// CMS invalidates the settings snapshot after a CMS publish and, when
// storage is configured, republishes robots.txt and sitemap.xml.
func (wh *Webhook) CMS(w http.ResponseWriter, r *http.Request) {
	if wh.secret == "" {
		http.NotFound(w, r)
		return
	}

	got := r.Header.Get(webhookSecretHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(wh.secret)) != 1 {
		slog.Warn("cms webhook rejected", "remote", r.RemoteAddr)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// The payload itself is not needed; drain it so the connection can be reused.
	io.Copy(io.Discard, io.LimitReader(r.Body, maxWebhookBodyLen))

	ctx := r.Context()
	if wh.cache != nil {
		wh.cache.Invalidate(ctx)
	}

	if wh.publisher != nil {
		robots, sitemapXML, err := wh.seo.Snapshots(ctx)
		if errors.Is(err, ErrSettingsUnavailable) {
			// The mirror keeps its last good snapshot until the CMS retries.
			slog.Error("load settings for publishing failed", "error", err)
			w.Header().Set("Retry-After", "30")
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			slog.Error("build sitemap for publishing failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if err := wh.publisher.PublishSnapshots(ctx, robots, sitemapXML); err != nil {
			slog.Error("publish seo snapshots failed", "error", err)
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}
	}

	slog.Info("cms webhook processed", "published", wh.publisher != nil)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte(`{"status":"ok"}`))
}
