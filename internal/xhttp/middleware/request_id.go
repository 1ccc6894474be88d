package middleware

import (
	"net/http"

	"github.com/garrettladley/creem/internal/xcontext"
	"github.com/garrettladley/creem/internal/xhttp"
	"github.com/google/uuid"
)

// newRequestID reuses a well-formed inbound X-Request-ID so webhook deliveries
// can be correlated with the sender's logs.
func newRequestID(r *http.Request) string {
	if id := r.Header.Get(xhttp.XRequestID); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return uuid.New().String()
}

func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := newRequestID(r)
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
