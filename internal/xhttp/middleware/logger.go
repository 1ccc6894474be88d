package middleware

import (
	"log/slog"
	"net/http"

	"github.com/garrettladley/creem/internal/xcontext"
	"github.com/garrettladley/creem/internal/xslog"
)

// Logger puts base, tagged with the request id, into the request context.
// Must run after RequestID.
func Logger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attrs := make([]slog.Attr, 0, 1)
			if id, ok := xcontext.GetRequestID(r.Context()); ok {
				attrs = append(attrs, xslog.RequestID(id))
			}
			ctx := xslog.WithLogger(r.Context(), base)
			ctx = xslog.WithAttrs(ctx, attrs...)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
