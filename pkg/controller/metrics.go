package controller

import (
	"customers/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// WithMetrics returns a middleware recording every request on m. Requests are
// labelled with the matched chi route pattern rather than the raw path, so
// customer ids do not explode the label cardinality.
func WithMetrics(m *metrics.HTTPServer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			finished := false

			// a panicking handler is recorded as a 500 while the panic keeps
			// unwinding to the recover middleware
			defer func() {
				status := rec.status
				if !finished {
					status = http.StatusInternalServerError
				}

				route := "unmatched"
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					route = rctx.RoutePattern()
				}
				m.Record(r.Context(), r.Method, route, status, time.Since(start))
			}()

			next.ServeHTTP(rec, r)
			finished = true
		})
	}
}
