// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"storefront/internal/models"
)

// seedSettings are the development SEO controls: a fully open site.
var seedSettings = map[string]string{
	models.SettingSiteDiscoverable:       strconv.FormatBool(true),
	models.SettingAllowRobotsCrawling:    strconv.FormatBool(true),
	models.SettingCustomRobotsDirectives: "",
	models.SettingSeoNote:                "Development defaults",
}

// seedDocuments is the development catalog: a homepage, an editorial page,
// one product and a collection that opts out of indexing.
var seedDocuments = []struct {
	kind            models.DocumentKind
	handle, title   string
	body            string
	preventIndexing bool
}{
	{models.DocumentKindPage, models.HomepageHandle, "Home", "# Welcome\n\nMembers-only tea club.", false},
	{models.DocumentKindPage, "about", "About us", "We source **single-estate** teas.", false},
	{models.DocumentKindProduct, "alishan-oolong", "Alishan Oolong", "High-mountain oolong, 50 g.", false},
	{models.DocumentKindCollection, "members-picks", "Members' picks", "Curated monthly for members.", true},
}

// Seed populates a development database. Missing SEO setting keys and
// seed documents are inserted; existing rows are never overwritten, so
// local edits survive restarts.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	var settingsAdded, docsAdded int64
	for key, value := range seedSettings {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO site_settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
		`, key, value)
		if err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
		n, _ := res.RowsAffected()
		settingsAdded += n
	}

	for _, d := range seedDocuments {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO documents (kind, handle, title, body, prevent_indexing, published)
			VALUES ($1, $2, $3, $4, $5, TRUE)
			ON CONFLICT (kind, handle) DO NOTHING
		`, d.kind, d.handle, d.title, d.body, d.preventIndexing)
		if err != nil {
			return fmt.Errorf("seed document %s/%s: %w", d.kind, d.handle, err)
		}
		n, _ := res.RowsAffected()
		docsAdded += n
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("development seed applied", "settings_added", settingsAdded, "documents_added", docsAdded)
	return nil
}
