// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for storefront pages.
// Every page shares the base layout, which carries the robots meta tag,
// meta description and canonical link.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/seo"
)

//go:embed templates/storefront/*.html
var storefrontFS embed.FS

// PageData holds all data passed to storefront templates.
type PageData struct {
	SiteName string        // Shown in the header and <title>
	Meta     seo.MetaTags  // Head values; Robots must always be set
	Body     template.HTML // Sanitised document body
}

// Renderer handles template parsing and execution for storefront pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing every storefront template paired with
// the base layout.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	entries, err := fs.ReadDir(storefrontFS, "templates/storefront")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").ParseFS(
			storefrontFS, "templates/storefront/base.html", "templates/storefront/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Page renders the named template with the given status code. The page is
// rendered into a buffer first so a template error still yields a clean 500.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		slog.Error("template not found", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// A page without a resolved directive must not go out as indexable.
	if data.Meta.Robots == "" {
		data.Meta.Robots = seo.DirectiveNoIndexNoFollow
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		slog.Error("render template failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
