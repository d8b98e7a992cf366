package middleware

import (
	"net/http"
	"time"

	"steam-insights/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics middleware records request latency and in-flight counts.
// The route pattern, not the raw path, labels the histogram so item IDs
// and developer names do not explode cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.TrackActiveRequest(true)
			defer metrics.TrackActiveRequest(false)

			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			metrics.RecordAPIRequest(r.Method, path, rw.statusCode, time.Since(start))
		})
	}
}
