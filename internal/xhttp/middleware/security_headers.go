package middleware

import (
	"net/http"

	"github.com/garrettladley/creem/internal/xhttp"
)

// SecurityHeaders sets headers for a JSON-only API that is never framed or cached.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(xhttp.XContentTypeOpts, "nosniff")
		h.Set(xhttp.XFrameOpts, "DENY")
		h.Set(xhttp.ReferrerPolicy, "no-referrer")
		h.Set(xhttp.CacheControl, "no-store")
		h.Set(xhttp.ContentSecurityPolicy, "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
