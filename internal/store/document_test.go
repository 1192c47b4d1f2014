// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"storefront/internal/models"
)

func TestDocumentCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewDocumentStore(db)
	ctx := context.Background()

	handle := "__test-doc-create"
	cleanDocuments(t, db, handle)
	t.Cleanup(func() { cleanDocuments(t, db, handle) })

	desc := "Short description"
	created, err := s.Create(ctx, &models.Document{
		Kind:   models.DocumentKindProduct,
		Handle: handle,
		Title:  "Test Product",
		Body:   "Body",
		SEO: models.PageSeoOverride{
			Indexable:             true,
			Followable:            false,
			CustomMetaDescription: &desc,
		},
		Published: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Create should return a generated ID")
	}

	found, err := s.FindByHandle(ctx, models.DocumentKindProduct, handle)
	if err != nil {
		t.Fatalf("FindByHandle: %v", err)
	}
	if found == nil {
		t.Fatal("FindByHandle returned nil for a published document")
	}
	if found.SEO.Followable {
		t.Error("Followable should round-trip as false")
	}
	if found.MetaDescription() != desc {
		t.Errorf("MetaDescription = %q, want %q", found.MetaDescription(), desc)
	}

	other, err := s.FindByHandle(ctx, models.DocumentKindPage, handle)
	if err != nil {
		t.Fatalf("FindByHandle other kind: %v", err)
	}
	if other != nil {
		t.Error("FindByHandle should match the kind as well as the handle")
	}
}

func TestDocumentCreateDerivesHandle(t *testing.T) {
	db := testDB(t)
	s := NewDocumentStore(db)
	ctx := context.Background()

	cleanDocuments(t, db, "test-derived-handle")
	t.Cleanup(func() { cleanDocuments(t, db, "test-derived-handle") })

	created, err := s.Create(ctx, &models.Document{
		Kind:  models.DocumentKindPage,
		Title: "Test: Derived Handle!",
		SEO:   models.DefaultPageSeoOverride(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Handle != "test-derived-handle" {
		t.Errorf("Handle = %q, want %q", created.Handle, "test-derived-handle")
	}
}

func TestDocumentCreateRejectsUnknownKind(t *testing.T) {
	s := NewDocumentStore(nil)
	if _, err := s.Create(context.Background(), &models.Document{Kind: "blog"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestDocumentCreateRejectsInvalidHandle(t *testing.T) {
	s := NewDocumentStore(nil)
	for _, d := range []*models.Document{
		{Kind: models.DocumentKindPage, Handle: "Not A Handle"},
		{Kind: models.DocumentKindPage, Title: "!!!"},
	} {
		if _, err := s.Create(context.Background(), d); err == nil {
			t.Errorf("expected error for handle %q title %q", d.Handle, d.Title)
		}
	}
}

func TestDocumentUnpublishedHidden(t *testing.T) {
	db := testDB(t)
	s := NewDocumentStore(db)
	ctx := context.Background()

	handle := "__test-doc-draft"
	cleanDocuments(t, db, handle)
	t.Cleanup(func() { cleanDocuments(t, db, handle) })

	created, err := s.Create(ctx, &models.Document{
		Kind:   models.DocumentKindPage,
		Handle: handle,
		Title:  "Draft",
		SEO:    models.DefaultPageSeoOverride(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindByHandle(ctx, models.DocumentKindPage, handle)
	if err != nil {
		t.Fatalf("FindByHandle: %v", err)
	}
	if found != nil {
		t.Error("unpublished document should not be found by handle")
	}

	docs, err := s.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	for _, d := range docs {
		if d.ID == created.ID {
			t.Error("ListPublished returned an unpublished document")
		}
	}

	created.Published = true
	if err := s.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}
	found, err = s.FindByHandle(ctx, models.DocumentKindPage, handle)
	if err != nil || found == nil {
		t.Fatalf("FindByHandle after publish: %v, %v", found, err)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if gone != nil {
		t.Error("document should be gone after Delete")
	}
}
