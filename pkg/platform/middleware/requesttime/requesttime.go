// Package requesttime pins one "now" per HTTP request so the eligibility gate,
// form timestamps and log lines all agree on the same instant.
package requesttime

import (
	"net/http"
	"time"

	"apply/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
