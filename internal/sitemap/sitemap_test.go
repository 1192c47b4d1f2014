package sitemap

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"storefront/internal/models"
	"storefront/internal/seo"
)

const base = "https://shop.example.com"

func testDocuments() []models.Document {
	updated := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	hidden := models.DefaultPageSeoOverride()
	hidden.Indexable = false

	return []models.Document{
		{Kind: models.DocumentKindPage, Handle: models.HomepageHandle, SEO: models.DefaultPageSeoOverride(), Published: true, UpdatedAt: updated},
		{Kind: models.DocumentKindPage, Handle: "about", SEO: models.DefaultPageSeoOverride(), Published: true, UpdatedAt: updated},
		{Kind: models.DocumentKindPage, Handle: "draft", SEO: models.DefaultPageSeoOverride(), Published: false},
		{Kind: models.DocumentKindPage, Handle: "secret", SEO: hidden, Published: true},
		{Kind: models.DocumentKindProduct, Handle: "oolong", SEO: models.DefaultPageSeoOverride(), Published: true},
		{Kind: models.DocumentKindCollection, Handle: "picks", SEO: models.DefaultPageSeoOverride(), PreventIndexing: true, Published: true},
	}
}

func locs(set URLSet) []string {
	var out []string
	for _, u := range set.URLs {
		out = append(out, u.Loc)
	}
	return out
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		global *models.GlobalSeoControls
		want   []string
	}{
		{
			name:   "open",
			global: &models.GlobalSeoControls{SiteDiscoverable: true, AllowRobotsCrawling: true},
			want:   []string{base + "/", base + "/pages/about", base + "/products/oolong"},
		},
		{
			name:   "homepage only",
			global: &models.GlobalSeoControls{SiteDiscoverable: true},
			want:   []string{base + "/"},
		},
		{
			name:   "not discoverable",
			global: &models.GlobalSeoControls{AllowRobotsCrawling: true},
			want:   nil,
		},
		{
			name:   "settings unavailable",
			global: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Build(base, EntriesFromDocuments(testDocuments()), tt.global)
			if diff := cmp.Diff(tt.want, locs(set)); diff != "" {
				t.Errorf("sitemap locations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestBuild_NoFalseInclusions checks every listed location against the
// resolver for all global setting combinations.
func TestBuild_NoFalseInclusions(t *testing.T) {
	entries := EntriesFromDocuments(testDocuments())
	entries = append(entries,
		Entry{Path: "/account/orders"},
		Entry{Path: "/checkout"},
		Entry{Path: "/api/products.json"},
	)

	for _, discoverable := range []bool{false, true} {
		for _, crawl := range []bool{false, true} {
			g := &models.GlobalSeoControls{SiteDiscoverable: discoverable, AllowRobotsCrawling: crawl}
			set := Build(base, entries, g)
			for _, u := range set.URLs {
				path := strings.TrimPrefix(u.Loc, base)
				if seo.ShouldNoIndex(path, g) {
					t.Errorf("%+v: %s listed but ShouldNoIndex is true", g, u.Loc)
				}
			}
		}
	}
}

func TestBuild_DeduplicatesAndFormatsLastMod(t *testing.T) {
	when := time.Date(2026, 1, 2, 23, 30, 0, 0, time.FixedZone("X", -5*3600))
	entries := []Entry{
		{Path: "/pages/about", LastMod: when},
		{Path: "/pages/about"},
	}
	set := Build(base, entries, &models.GlobalSeoControls{SiteDiscoverable: true, AllowRobotsCrawling: true})
	want := []URL{{Loc: base + "/pages/about", LastMod: "2026-01-03"}}
	if diff := cmp.Diff(want, set.URLs); diff != "" {
		t.Errorf("URLs mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	set := Build(base, []Entry{{Path: "/"}}, &models.GlobalSeoControls{SiteDiscoverable: true, AllowRobotsCrawling: true})

	var buf bytes.Buffer
	if err := Write(&buf, set); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, xml.Header) {
		t.Errorf("missing XML declaration:\n%s", out)
	}
	if !strings.Contains(out, `xmlns="`+Namespace+`"`) {
		t.Errorf("missing sitemap namespace:\n%s", out)
	}

	var decoded URLSet
	if err := xml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if diff := cmp.Diff([]string{base + "/"}, locs(decoded)); diff != "" {
		t.Errorf("decoded locations mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Build(base, nil, nil)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "<url>") {
		t.Errorf("empty sitemap should have no entries:\n%s", buf.String())
	}
}
