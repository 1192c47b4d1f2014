// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitemap builds sitemap.xml documents. Only routes the SEO
// resolver considers indexable are listed.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"storefront/internal/models"
	"storefront/internal/seo"
)

// Namespace is the sitemaps.org schema namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is the root element of a sitemap.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is a single sitemap entry.
type URL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Entry is a candidate route for the sitemap.
type Entry struct {
	Path     string
	LastMod  time.Time
	Override *models.RobotsOverride
}

// EntriesFromDocuments converts published documents into sitemap candidates.
// Unpublished documents are skipped.
func EntriesFromDocuments(docs []models.Document) []Entry {
	entries := make([]Entry, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		if !d.Published {
			continue
		}
		entries = append(entries, Entry{
			Path:     d.Path(),
			LastMod:  d.UpdatedAt,
			Override: d.RobotsOverride(),
		})
	}
	return entries
}

// Build returns the sitemap for the given candidates. An entry is included
// only when seo.ShouldNoIndexPage is false for it, so nil or undiscoverable
// settings produce an empty urlset. Duplicate paths are listed once.
func Build(baseURL string, entries []Entry, global *models.GlobalSeoControls) URLSet {
	set := URLSet{XMLNS: Namespace}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Path] {
			continue
		}
		if seo.ShouldNoIndexPage(e.Path, global, e.Override) {
			continue
		}
		seen[e.Path] = true

		u := URL{Loc: seo.AbsoluteURL(baseURL, e.Path)}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

// Write encodes the sitemap with the XML declaration.
func Write(w io.Writer, set URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return nil
}
