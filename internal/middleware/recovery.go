// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"storefront/internal/seo"
)

// Recoverer turns a panic in a downstream handler into a 500 response. The
// error page is marked noindex and uncacheable so a transient failure never
// replaces an indexed page in search results or a CDN.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			slog.Error("panic recovered",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			h := w.Header()
			h.Set("Content-Type", "text/plain; charset=utf-8")
			h.Set("X-Robots-Tag", seo.DirectiveNoIndexNoFollow)
			h.Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, "Internal Server Error\n")
		}()

		next.ServeHTTP(w, r)
	})
}
