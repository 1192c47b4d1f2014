// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// contentSecurityPolicy allows the storefront's own assets plus remote
// product imagery; framing is limited to the same origin.
const contentSecurityPolicy = "default-src 'self'; img-src 'self' data: https:; " +
	"style-src 'self' 'unsafe-inline'; frame-ancestors 'self'; base-uri 'self'"

// hstsPolicy is sent only on requests that arrived over HTTPS.
const hstsPolicy = "max-age=31536000; includeSubDomains"

// SecureHeaders adds security-related HTTP headers to every response.
// Strict-Transport-Security is added when the request reached the server,
// or the TLS-terminating proxy in front of it, over HTTPS.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "browsing-topics=(), camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy", contentSecurityPolicy)

		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			h.Set("Strict-Transport-Security", hstsPolicy)
		}

		next.ServeHTTP(w, r)
	})
}
