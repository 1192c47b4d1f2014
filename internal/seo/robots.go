// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"strconv"
	"strings"

	"storefront/internal/models"
)

// Policy is the crawl policy selected by the global controls.
type Policy int

const (
	// PolicyClosed keeps every crawler out.
	PolicyClosed Policy = iota
	// PolicyHomepageOnly allows the exact homepage and nothing else.
	PolicyHomepageOnly
	// PolicyOpen allows everything except the platform's private routes.
	PolicyOpen
)

func (p Policy) String() string {
	switch p {
	case PolicyHomepageOnly:
		return "homepage-only"
	case PolicyOpen:
		return "open"
	default:
		return "closed"
	}
}

// Crawl delays, in seconds, for the restrictive templates.
const (
	closedCrawlDelay       = 86400
	homepageOnlyCrawlDelay = 3600
)

// platformDisallow are the storefront routes crawlers are kept out of even
// when the site is fully open: admin, cart, checkout, customer account,
// search and faceted-filter URL patterns.
var platformDisallow = []string{
	"/admin",
	"/cart",
	"/orders",
	"/checkouts/",
	"/checkout",
	"/account",
	"/members",
	"/api/",
	"/search",
	"/collections/*sort_by*",
	"/*/collections/*sort_by*",
	"/collections/*+*",
	"/collections/*%2B*",
	"/collections/*%2b*",
	"/*/collections/*+*",
	"/*/collections/*%2B*",
	"/*/collections/*%2b*",
	"/*?*filter.*",
	"/*?*oseid=*",
	"/*preview_theme_id*",
	"/*preview_script_id*",
}

// PolicyFor selects the crawl policy. A nil snapshot selects PolicyClosed.
func PolicyFor(global *models.GlobalSeoControls) Policy {
	switch {
	case global == nil || !global.SiteDiscoverable:
		return PolicyClosed
	case !global.AllowRobotsCrawling:
		return PolicyHomepageOnly
	default:
		return PolicyOpen
	}
}

// RenderRobotsTxt produces the robots.txt body for the given controls.
// sitemapURL is referenced by the homepage-only and open templates. Custom
// directives are appended verbatim after the generated body in every case.
func RenderRobotsTxt(global *models.GlobalSeoControls, sitemapURL string) string {
	var b strings.Builder

	switch PolicyFor(global) {
	case PolicyOpen:
		writeOpen(&b, sitemapURL)
	case PolicyHomepageOnly:
		writeHomepageOnly(&b, sitemapURL)
	default:
		writeClosed(&b)
	}

	if global != nil && len(global.CustomRobotsDirectives) > 0 {
		b.WriteString("\n")
		for _, line := range global.CustomRobotsDirectives {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeClosed(b *strings.Builder) {
	b.WriteString("# Site is not discoverable\n")
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /\n")
	b.WriteString("Crawl-delay: " + strconv.Itoa(closedCrawlDelay) + "\n")
}

func writeHomepageOnly(b *strings.Builder, sitemapURL string) {
	b.WriteString("# Crawling restricted to the homepage\n")
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /$\n")
	b.WriteString("Disallow: /\n")
	b.WriteString("Crawl-delay: " + strconv.Itoa(homepageOnlyCrawlDelay) + "\n")
	writeSitemap(b, sitemapURL)
}

func writeOpen(b *strings.Builder, sitemapURL string) {
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, p := range platformDisallow {
		b.WriteString("Disallow: " + p + "\n")
	}
	writeSitemap(b, sitemapURL)
}

func writeSitemap(b *strings.Builder, sitemapURL string) {
	if sitemapURL == "" {
		return
	}
	b.WriteString("\nSitemap: " + sitemapURL + "\n")
}
