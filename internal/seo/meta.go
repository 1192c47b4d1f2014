// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"storefront/internal/models"
)

// MetaTags holds the head values rendered on a storefront page.
type MetaTags struct {
	Title       string
	Description string
	Robots      string
	Canonical   string
}

// BuildMeta assembles the head values for a document. baseURL is the public
// origin of the storefront, without a trailing slash.
func BuildMeta(doc *models.Document, global *models.GlobalSeoControls, baseURL string) MetaTags {
	path := doc.Path()
	desc := doc.MetaDescription()
	CheckMetaDescription(path, desc)

	return MetaTags{
		Title:       doc.Title,
		Description: desc,
		Robots:      DirectiveForPath(path, global, doc.RobotsOverride()),
		Canonical:   AbsoluteURL(baseURL, path),
	}
}

// CheckMetaDescription logs a warning when desc exceeds the soft length
// limit. It reports whether the description is within the limit.
func CheckMetaDescription(path, desc string) bool {
	n := utf8.RuneCountInString(desc)
	if n <= models.MaxMetaDescriptionLength {
		return true
	}
	slog.Warn("meta description exceeds recommended length",
		"path", path,
		"length", n,
		"limit", models.MaxMetaDescriptionLength,
	)
	return false
}

// AbsoluteURL joins the public origin and a route path.
func AbsoluteURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	return baseURL + path
}

// SitemapURL returns the absolute sitemap location for the origin.
func SitemapURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return AbsoluteURL(baseURL, "/sitemap.xml")
}
