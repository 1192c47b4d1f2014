// Store integration tests run against the PostgreSQL described by the
// POSTGRES_* variables and skip when it is not reachable.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB connects, brings the schema up to date and closes the pool on cleanup.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := config.Config{
		DBHost:     envOr("POSTGRES_HOST", "localhost"),
		DBPort:     envOr("POSTGRES_PORT", "5432"),
		DBUser:     envOr("POSTGRES_USER", "storefront"),
		DBPassword: envOr("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOr("POSTGRES_DB", "storefront"),
	}
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// cleanDocuments removes test documents by handle. Call in t.Cleanup().
func cleanDocuments(t *testing.T, db *sql.DB, handles ...string) {
	t.Helper()
	for _, h := range handles {
		db.Exec("DELETE FROM documents WHERE handle = $1", h)
	}
}

// restoreSettings snapshots the current settings and restores them when
// the test finishes.
func restoreSettings(t *testing.T, s *SiteSettingStore) {
	t.Helper()
	ctx := context.Background()
	before, err := s.All(ctx)
	if err != nil {
		t.Fatalf("snapshot settings: %v", err)
	}
	t.Cleanup(func() {
		keys := []string{
			models.SettingSiteDiscoverable, models.SettingAllowRobotsCrawling,
			models.SettingCustomRobotsDirectives, models.SettingSeoNote,
		}
		for _, k := range keys {
			if _, ok := before[k]; !ok {
				s.db.Exec("DELETE FROM site_settings WHERE key = $1", k)
			}
		}
		if len(before) > 0 {
			s.SetMany(ctx, before)
		}
	})
}
