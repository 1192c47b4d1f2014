// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug generates and validates storefront document handles, the last
// path segment of /pages/{handle}, /products/{handle} and /collections/{handle}.
package slug

import (
	"regexp"
	"strings"
)

// MaxLen is the longest handle the documents table accepts.
const MaxLen = 255

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace collapses runs of spaces, tabs and newlines.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a handle from a document title.
// Example: "Alishan Oolong (2026 harvest)" → "alishan-oolong-2026-harvest"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	if len(result) > MaxLen {
		result = result[:MaxLen]
	}
	return strings.Trim(result, "-")
}

// Valid reports whether h is a well-formed handle: lower-case ASCII letters,
// digits, hyphens and underscores, not starting or ending with a hyphen.
// Request handlers use it to reject junk before a database lookup.
func Valid(h string) bool {
	if h == "" || len(h) > MaxLen {
		return false
	}
	if h[0] == '-' || h[len(h)-1] == '-' {
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
