// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"path"
	"strings"

	"storefront/internal/models"
)

// privatePrefixes are route prefixes that are never indexable, whatever the
// CMS settings say.
var privatePrefixes = []string{
	"/account",
	"/checkout",
	"/checkouts",
	"/admin",
	"/members",
	"/api",
}

// IsPrivatePath reports whether p falls under one of the always
// non-indexable route prefixes. A prefix matches the exact segment only:
// "/account" and "/account/orders" match, "/accounting" does not.
func IsPrivatePath(p string) bool {
	p = normalizePath(p)
	for _, prefix := range privatePrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// PrivatePrefixes returns a copy of the always non-indexable prefixes.
func PrivatePrefixes() []string {
	out := make([]string, len(privatePrefixes))
	copy(out, privatePrefixes)
	return out
}

// ShouldNoIndex reports whether the route must carry noindex given only the
// global controls. With crawling restricted, only the literal root path
// stays indexable.
func ShouldNoIndex(p string, global *models.GlobalSeoControls) bool {
	if global == nil || !global.SiteDiscoverable {
		return true
	}
	if IsPrivatePath(p) {
		return true
	}
	if !global.AllowRobotsCrawling && !isRoot(p) {
		return true
	}
	return !Resolve(global, nil).Index
}

// ShouldNoIndexPage is ShouldNoIndex narrowed by the page's own override.
// Sitemap membership is decided with this function.
func ShouldNoIndexPage(p string, global *models.GlobalSeoControls, override *models.RobotsOverride) bool {
	if ShouldNoIndex(p, global) {
		return true
	}
	return !Resolve(global, override).Index
}

// stripQuery drops the query string and fragment.
func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}

// isRoot reports whether p is exactly the homepage. Slash-only paths such as
// "//" and the empty path are not the root.
func isRoot(p string) bool {
	return stripQuery(p) == "/"
}

// normalizePath strips the query string and fragment, lower-cases, and
// cleans the path so repeated slashes and dot segments cannot hide a
// private prefix. The result always starts with a slash and has no trailing
// slash except for the root.
func normalizePath(p string) string {
	return strings.ToLower(path.Clean("/" + stripQuery(p)))
}
