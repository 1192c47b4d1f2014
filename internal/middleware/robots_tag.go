// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"

	"storefront/internal/seo"
)

// RobotsTag marks responses on always-private routes (account, checkout,
// admin, members, api) with an X-Robots-Tag header. It covers non-HTML
// responses that cannot carry a robots meta tag.
func RobotsTag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seo.IsPrivatePath(r.URL.Path) {
			w.Header().Set("X-Robots-Tag", seo.DirectiveNoIndexNoFollow)
		}
		next.ServeHTTP(w, r)
	})
}
