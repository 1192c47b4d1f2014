// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests:
// in-memory settings and document sources plus chi request helpers.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront/internal/models"
	"storefront/internal/render"
)

const testBaseURL = "https://shop.example.com"

// fakeSettings returns a fixed snapshot or error.
type fakeSettings struct {
	controls *models.GlobalSeoControls
	err      error
}

func (f *fakeSettings) SeoControls(_ context.Context) (*models.GlobalSeoControls, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Hand out a copy so handlers cannot mutate the fixture.
	c := *f.controls
	return &c, nil
}

func openSettings() *fakeSettings {
	return &fakeSettings{controls: &models.GlobalSeoControls{SiteDiscoverable: true, AllowRobotsCrawling: true}}
}

func restrictedSettings() *fakeSettings {
	return &fakeSettings{controls: &models.GlobalSeoControls{SiteDiscoverable: true}}
}

func closedSettings() *fakeSettings {
	return &fakeSettings{controls: &models.GlobalSeoControls{AllowRobotsCrawling: true}}
}

func failingSettings() *fakeSettings {
	return &fakeSettings{err: errors.New("cms timeout")}
}

// fakeDocuments is an in-memory DocumentSource.
type fakeDocuments struct {
	docs    []models.Document
	listErr error
	findErr error
}

func (f *fakeDocuments) FindByHandle(_ context.Context, kind models.DocumentKind, handle string) (*models.Document, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.docs {
		d := f.docs[i]
		if d.Kind == kind && d.Handle == handle && d.Published {
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocuments) ListPublished(_ context.Context) ([]models.Document, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Document
	for _, d := range f.docs {
		if d.Published {
			out = append(out, d)
		}
	}
	return out, nil
}

// testCatalog mirrors the development seed.
func testCatalog() *fakeDocuments {
	updated := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	desc := "Members-only tea club."
	hidden := models.DefaultPageSeoOverride()
	hidden.Indexable = false

	home := models.DefaultPageSeoOverride()
	home.CustomMetaDescription = &desc

	return &fakeDocuments{docs: []models.Document{
		{Kind: models.DocumentKindPage, Handle: models.HomepageHandle, Title: "Home", Body: "# Welcome", SEO: home, Published: true, UpdatedAt: updated},
		{Kind: models.DocumentKindPage, Handle: "about", Title: "About us", Body: "We source **single-estate** teas.", SEO: models.DefaultPageSeoOverride(), Published: true, UpdatedAt: updated},
		{Kind: models.DocumentKindPage, Handle: "staff-notes", Title: "Staff notes", SEO: hidden, Published: true},
		{Kind: models.DocumentKindPage, Handle: "draft", Title: "Draft", SEO: models.DefaultPageSeoOverride()},
		{Kind: models.DocumentKindProduct, Handle: "alishan-oolong", Title: "Alishan Oolong", SEO: models.DefaultPageSeoOverride(), Published: true},
		{Kind: models.DocumentKindCollection, Handle: "members-picks", Title: "Members' picks", SEO: models.DefaultPageSeoOverride(), PreventIndexing: true, Published: true},
	}}
}

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rn, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return rn
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
