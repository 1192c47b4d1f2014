// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// settings.go provides a Valkey-backed read-through cache for the global SEO
// controls. Every request still receives its own decoded snapshot; the cache
// only saves the settings query. A CMS publish webhook invalidates it.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/models"
)

const (
	// settingsKey is the Valkey key holding the JSON-encoded controls.
	settingsKey = "seo:settings"

	// DefaultSettingsTTL bounds how stale a cached snapshot can get when a
	// webhook is missed.
	DefaultSettingsTTL = 60 * time.Second
)

// SettingsLoader loads the global SEO controls from the source of truth.
type SettingsLoader interface {
	SeoControls(ctx context.Context) (*models.GlobalSeoControls, error)
}

// SettingsCache caches the global SEO controls in Valkey.
type SettingsCache struct {
	client *redis.Client
	loader SettingsLoader
	ttl    time.Duration
}

// NewSettingsCache creates a settings cache in front of loader.
func NewSettingsCache(client *redis.Client, loader SettingsLoader, ttl time.Duration) *SettingsCache {
	if ttl == 0 {
		ttl = DefaultSettingsTTL
	}
	return &SettingsCache{client: client, loader: loader, ttl: ttl}
}

// SeoControls returns the cached controls, loading and storing them on a
// miss. Cache errors fall through to the loader; loader errors are returned
// unchanged so callers can fail closed.
func (sc *SettingsCache) SeoControls(ctx context.Context) (*models.GlobalSeoControls, error) {
	raw, err := sc.client.Get(ctx, settingsKey).Bytes()
	switch {
	case err == nil:
		var g models.GlobalSeoControls
		decodeErr := json.Unmarshal(raw, &g)
		if decodeErr == nil {
			slog.Debug("settings cache hit")
			return &g, nil
		}
		slog.Warn("settings cache entry corrupt, reloading", "error", decodeErr)
	case err != redis.Nil:
		slog.Warn("settings cache get error", "error", err)
	}

	g, err := sc.loader.SeoControls(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(g); err == nil {
		if err := sc.client.Set(ctx, settingsKey, data, sc.ttl).Err(); err != nil {
			slog.Warn("settings cache set error", "error", err)
		}
	}
	return g, nil
}

// Invalidate drops the cached snapshot.
func (sc *SettingsCache) Invalidate(ctx context.Context) {
	if err := sc.client.Del(ctx, settingsKey).Err(); err != nil {
		slog.Warn("settings cache invalidate error", "error", err)
		return
	}
	slog.Debug("settings cache invalidated")
}
