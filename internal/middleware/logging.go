// Package middleware provides HTTP middleware for the storefront SEO server.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// statusRecorder wraps http.ResponseWriter to capture the status code and
// the number of body bytes written.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.wroteHeader {
		sr.status = code
		sr.wroteHeader = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.wroteHeader {
		sr.WriteHeader(http.StatusOK)
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// knownCrawlers maps lower-case User-Agent fragments to the crawler name
// reported in the access log. Order matters: specific names come before
// the generic fragments at the end.
var knownCrawlers = []struct{ token, name string }{
	{"googlebot", "google"},
	{"adsbot-google", "google-ads"},
	{"bingbot", "bing"},
	{"duckduckbot", "duckduckgo"},
	{"yandex", "yandex"},
	{"baiduspider", "baidu"},
	{"applebot", "apple"},
	{"gptbot", "openai"},
	{"ccbot", "commoncrawl"},
	{"slurp", "yahoo"},
	{"bot/", "other"},
	{"crawler", "other"},
	{"spider", "other"},
}

// crawlerName returns the crawler family for a User-Agent, or "" for
// ordinary clients.
func crawlerName(ua string) string {
	ua = strings.ToLower(ua)
	for _, c := range knownCrawlers {
		if strings.Contains(ua, c.token) {
			return c.name
		}
	}
	return ""
}

// Logger writes one structured access log line per request. Crawler hits
// carry the crawler family and the X-Robots-Tag that was served, so
// discoverability changes can be traced in the logs. Server errors are
// logged at warn level.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start).String(),
			"remote", r.RemoteAddr,
		}
		if name := crawlerName(r.UserAgent()); name != "" {
			attrs = append(attrs, "crawler", name)
			if tag := rec.Header().Get("X-Robots-Tag"); tag != "" {
				attrs = append(attrs, "robots_tag", tag)
			}
		}

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "http request", attrs...)
	})
}
