// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/slug"
)

// DocumentStore handles CMS documents: editorial pages, products and
// collections share one table, differentiated by kind.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore creates a new DocumentStore with the given database connection.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

const documentColumns = `id, kind, handle, title, body, meta_description,
	seo_indexable, seo_followable, prevent_indexing, published,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*models.Document, error) {
	d := &models.Document{}
	err := row.Scan(
		&d.ID, &d.Kind, &d.Handle, &d.Title, &d.Body, &d.SEO.CustomMetaDescription,
		&d.SEO.Indexable, &d.SEO.Followable, &d.PreventIndexing, &d.Published,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// FindByID retrieves a document by its UUID. Returns nil if not found.
func (s *DocumentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	d, err := scanDocument(s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document by id: %w", err)
	}
	return d, nil
}

// FindByHandle retrieves a published document by kind and handle. Used for
// storefront rendering. Returns nil if not found.
func (s *DocumentStore) FindByHandle(ctx context.Context, kind models.DocumentKind, handle string) (*models.Document, error) {
	d, err := scanDocument(s.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE kind = $1 AND handle = $2 AND published = TRUE
	`, kind, handle))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document by handle: %w", err)
	}
	return d, nil
}

// ListPublished returns every published document ordered by kind and handle.
// Used for sitemap generation.
func (s *DocumentStore) ListPublished(ctx context.Context) ([]models.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE published = TRUE
		ORDER BY kind, handle
	`)
	if err != nil {
		return nil, fmt.Errorf("list published documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

// Create inserts a new document and returns it with the generated ID. An
// empty handle is derived from the title.
func (s *DocumentStore) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	if !d.Kind.Valid() {
		return nil, fmt.Errorf("create document: unknown kind %q", d.Kind)
	}
	handle := d.Handle
	if handle == "" {
		handle = slug.Generate(d.Title)
	}
	if !slug.Valid(handle) {
		return nil, fmt.Errorf("create document: invalid handle %q", handle)
	}

	created, err := scanDocument(s.db.QueryRowContext(ctx, `
		INSERT INTO documents (kind, handle, title, body, meta_description,
		                       seo_indexable, seo_followable, prevent_indexing, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+documentColumns,
		d.Kind, handle, d.Title, d.Body, d.SEO.CustomMetaDescription,
		d.SEO.Indexable, d.SEO.Followable, d.PreventIndexing, d.Published,
	))
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return created, nil
}

// Update modifies an existing document.
func (s *DocumentStore) Update(ctx context.Context, d *models.Document) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE documents SET
			handle = $1, title = $2, body = $3, meta_description = $4,
			seo_indexable = $5, seo_followable = $6, prevent_indexing = $7,
			published = $8, updated_at = NOW()
		WHERE id = $9
	`, d.Handle, d.Title, d.Body, d.SEO.CustomMetaDescription,
		d.SEO.Indexable, d.SEO.Followable, d.PreventIndexing, d.Published, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// Delete removes a document by ID.
func (s *DocumentStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
