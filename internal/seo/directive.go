// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo decides how crawlers may treat each storefront route. The
// decision functions are pure: they read an immutable settings snapshot and
// never fail. A nil snapshot means the settings could not be loaded and is
// treated as "site not discoverable".
package seo

import (
	"strings"

	"storefront/internal/models"
)

// Robots meta values.
const (
	DirectiveIndexFollow     = "index, follow"
	DirectiveNoIndexNoFollow = "noindex, nofollow"
	DirectiveNoIndex         = "noindex"
	DirectiveNoFollow        = "nofollow"
)

// Directive is a resolved crawler instruction for one page.
type Directive struct {
	Index  bool
	Follow bool
}

// String formats the directive as a robots meta tag value.
func (d Directive) String() string {
	if d.Index && d.Follow {
		return DirectiveIndexFollow
	}
	var parts []string
	if !d.Index {
		parts = append(parts, DirectiveNoIndex)
	}
	if !d.Follow {
		parts = append(parts, DirectiveNoFollow)
	}
	return strings.Join(parts, ", ")
}

// Resolve computes the directive for a page from the global controls and an
// optional page override. Page values narrow the global policy, never widen
// it.
func Resolve(global *models.GlobalSeoControls, override *models.RobotsOverride) Directive {
	if global == nil || !global.SiteDiscoverable {
		return Directive{}
	}

	indexable := true
	followable := true
	if override != nil {
		if override.Indexable != nil {
			indexable = *override.Indexable
		}
		if override.PreventIndexing != nil && *override.PreventIndexing {
			indexable = false
		}
		if override.Followable != nil {
			followable = *override.Followable
		}
	}

	return Directive{
		Index:  indexable,
		Follow: followable && global.AllowRobotsCrawling,
	}
}

// ResolveRobotsDirective returns the robots meta value for a page.
func ResolveRobotsDirective(global *models.GlobalSeoControls, override *models.RobotsOverride) string {
	return Resolve(global, override).String()
}

// DirectiveForPath resolves the meta value for a concrete route. On top of
// Resolve it applies the path rules of ShouldNoIndex, so a rendered page
// never says "index" where the sitemap and robots.txt exclude it.
func DirectiveForPath(path string, global *models.GlobalSeoControls, override *models.RobotsOverride) string {
	d := Resolve(global, override)
	if ShouldNoIndex(path, global) {
		d.Index = false
	}
	return d.String()
}
