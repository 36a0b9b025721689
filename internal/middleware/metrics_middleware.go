package middleware

import (
	"net/http"

	"github.com/joynutrics/json-assertions/internal/metrics"

	"github.com/gorilla/mux"
)

// RequestCount is a middleware function that counts each request by its route template and method.
func RequestCount() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			var route string
			if r := mux.CurrentRoute(req); r != nil {
				// Ignoring internal routing error that would have been ignored anyway
				route, _ = r.GetPathTemplate()
			}
			metrics.WithRouteCount(req.Context(), route, req.Method, func() {
				next.ServeHTTP(w, req)
			})
		})
	}
}
