// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strconv"
	"strings"
	"time"
)

// Setting keys written by the CMS for the global SEO controls.
const (
	SettingSiteDiscoverable       = "seo_site_discoverable"
	SettingAllowRobotsCrawling    = "seo_allow_robots_crawling"
	SettingCustomRobotsDirectives = "seo_custom_robots_directives"
	SettingSeoNote                = "seo_note"
)

// SiteSetting represents a single configuration key-value pair.
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings is a convenience map for accessing settings by key.
type SiteSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Bool parses a boolean setting. Missing or unparsable values yield the
// fallback.
func (s SiteSettings) Bool(key string, fallback bool) bool {
	v, ok := s[key]
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

// SeoControls converts the raw settings map into the global SEO controls.
// Both switches default to false so a half-written settings row never opens
// the site to crawlers.
func (s SiteSettings) SeoControls() *GlobalSeoControls {
	return &GlobalSeoControls{
		SiteDiscoverable:       s.Bool(SettingSiteDiscoverable, false),
		AllowRobotsCrawling:    s.Bool(SettingAllowRobotsCrawling, false),
		CustomRobotsDirectives: SplitDirectives(s[SettingCustomRobotsDirectives]),
		SeoNote:                s[SettingSeoNote],
	}
}

// SplitDirectives splits the stored newline-separated custom directives.
// Blank lines are dropped; the remaining lines keep their order and content.
func SplitDirectives(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// JoinDirectives is the inverse of SplitDirectives, used when writing settings.
func JoinDirectives(lines []string) string {
	return strings.Join(lines, "\n")
}
