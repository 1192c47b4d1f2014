// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"storefront/internal/models"
)

// upsertSetting writes one key, replacing any existing value.
const upsertSetting = `
	INSERT INTO site_settings (key, value, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (key)
	DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

// SiteSettingStore reads and writes the CMS key/value settings.
type SiteSettingStore struct {
	db *sql.DB
}

func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

// All returns every stored setting.
func (s *SiteSettingStore) All(ctx context.Context) (models.SiteSettings, error) {
	return s.query(ctx, `SELECT key, value FROM site_settings`)
}

// Get returns the value stored under key. ok is false when the key is absent.
func (s *SiteSettingStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM site_settings WHERE key = $1`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("get site setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores a single value.
func (s *SiteSettingStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertSetting, key, value, time.Now()); err != nil {
		return fmt.Errorf("set site setting %q: %w", key, err)
	}
	return nil
}

// SetMany stores several values atomically. Keys are written in sorted order
// so concurrent publishes lock rows in the same sequence.
func (s *SiteSettingStore) SetMany(ctx context.Context, settings map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings tx: %w", err)
	}
	defer tx.Rollback()

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	now := time.Now()
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, upsertSetting, k, settings[k], now); err != nil {
			return fmt.Errorf("set site setting %q: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings tx: %w", err)
	}
	return nil
}

// SeoControls loads only the seo_* keys and parses them into a snapshot.
// Missing switches read as false.
func (s *SiteSettingStore) SeoControls(ctx context.Context) (*models.GlobalSeoControls, error) {
	settings, err := s.query(ctx, `SELECT key, value FROM site_settings WHERE key LIKE 'seo\_%'`)
	if err != nil {
		return nil, err
	}
	return settings.SeoControls(), nil
}

// SetSeoControls writes every SEO switch in one transaction.
func (s *SiteSettingStore) SetSeoControls(ctx context.Context, g *models.GlobalSeoControls) error {
	return s.SetMany(ctx, map[string]string{
		models.SettingSiteDiscoverable:       strconv.FormatBool(g.SiteDiscoverable),
		models.SettingAllowRobotsCrawling:    strconv.FormatBool(g.AllowRobotsCrawling),
		models.SettingCustomRobotsDirectives: models.JoinDirectives(g.CustomRobotsDirectives),
		models.SettingSeoNote:                g.SeoNote,
	})
}

func (s *SiteSettingStore) query(ctx context.Context, q string) (models.SiteSettings, error) {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list site settings: %w", err)
	}
	defer rows.Close()

	settings := make(models.SiteSettings)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan site setting: %w", err)
		}
		settings[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate site settings: %w", err)
	}
	return settings, nil
}
