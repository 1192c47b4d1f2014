// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentKind distinguishes editorial pages from catalog documents.
type DocumentKind string

const (
	DocumentKindPage       DocumentKind = "page"
	DocumentKindProduct    DocumentKind = "product"
	DocumentKindCollection DocumentKind = "collection"
)

// HomepageHandle is the page handle served at the site root.
const HomepageHandle = "home"

// Valid reports whether k is one of the known document kinds.
func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindPage, DocumentKindProduct, DocumentKindCollection:
		return true
	}
	return false
}

// Document is a CMS document that renders as one storefront route.
type Document struct {
	ID     uuid.UUID    `json:"id"`
	Kind   DocumentKind `json:"kind"`
	Handle string       `json:"handle"`
	Title  string       `json:"title"`
	Body   string       `json:"body"` // Markdown

	SEO PageSeoOverride `json:"seo"`

	// PreventIndexing is set on collection documents embedded as blocks on
	// other pages. It forces noindex for this document only.
	PreventIndexing bool `json:"prevent_indexing"`

	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Path returns the storefront route for the document.
func (d *Document) Path() string {
	switch d.Kind {
	case DocumentKindProduct:
		return "/products/" + d.Handle
	case DocumentKindCollection:
		return "/collections/" + d.Handle
	default:
		if d.Handle == HomepageHandle {
			return "/"
		}
		return "/pages/" + d.Handle
	}
}

// RobotsOverride converts the stored page flags into resolver input.
func (d *Document) RobotsOverride() *RobotsOverride {
	return &RobotsOverride{
		Indexable:       Bool(d.SEO.Indexable),
		Followable:      Bool(d.SEO.Followable),
		PreventIndexing: Bool(d.PreventIndexing),
	}
}

// MetaDescription returns the custom meta description, or "" when unset.
func (d *Document) MetaDescription() string {
	if d.SEO.CustomMetaDescription == nil {
		return ""
	}
	return *d.SEO.CustomMetaDescription
}
