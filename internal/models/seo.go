// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// MaxMetaDescriptionLength is the soft limit for custom meta descriptions.
// Longer values are logged, not rejected.
const MaxMetaDescriptionLength = 160

// GlobalSeoControls are the site-wide discoverability switches managed in
// the CMS settings singleton. A snapshot is read once per request and never
// mutated afterwards.
type GlobalSeoControls struct {
	// SiteDiscoverable is the master switch. When false every route is
	// noindex, nofollow.
	SiteDiscoverable bool `json:"site_discoverable"`

	// AllowRobotsCrawling restricts crawling to the homepage when false.
	AllowRobotsCrawling bool `json:"allow_robots_crawling"`

	// CustomRobotsDirectives are appended verbatim to robots.txt.
	CustomRobotsDirectives []string `json:"custom_robots_directives,omitempty"`

	// SeoNote is informational only.
	SeoNote string `json:"seo_note,omitempty"`
}

// PageSeoOverride is attached to a single content, product or collection
// document. It can only narrow what the global controls allow.
type PageSeoOverride struct {
	Indexable             bool    `json:"indexable"`
	Followable            bool    `json:"followable"`
	CustomMetaDescription *string `json:"custom_meta_description,omitempty"`
}

// DefaultPageSeoOverride returns the permissive page defaults.
func DefaultPageSeoOverride() PageSeoOverride {
	return PageSeoOverride{Indexable: true, Followable: true}
}

// RobotsOverride is the optional page-level input to the directive resolver.
// Nil fields mean "not specified".
type RobotsOverride struct {
	Indexable       *bool
	Followable      *bool
	PreventIndexing *bool
}

// Bool returns a pointer to b, for building RobotsOverride literals.
func Bool(b bool) *bool {
	return &b
}
