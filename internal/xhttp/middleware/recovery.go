package middleware

import (
	"net/http"

	"github.com/garrettladley/creem/internal/xhttp"
	"github.com/garrettladley/creem/internal/xslog"
)

// Recovery turns a panic into a JSON 500 so webhook senders never see a
// dropped connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			xslog.FromContext(r.Context()).ErrorContext(r.Context(), "panic recovered",
				xslog.RequestGroup(r),
				xslog.ErrorGroupWithStack(rec),
			)
			xhttp.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
