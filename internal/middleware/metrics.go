package middleware

import (
	"net/http"
	"time"

	"github.com/templui/goalplanner/internal/metrics"
)

// Metrics records request durations labelled by the matched route pattern.
// It must be the innermost middleware: http.ServeMux sets r.Pattern on the
// request it is handed, and the label is read from that same request.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
