package middleware

import (
	"net/http"
	"strings"

	"arenaku/pkg/logger"
)

// ContentTypeValidation rejects mutating requests whose body is not JSON.
func ContentTypeValidation(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if r.ContentLength > 0 {
					ct := r.Header.Get("Content-Type")
					if !strings.HasPrefix(ct, "application/json") {
						log.Warn("Unsupported content type", "content_type", ct, "path", r.URL.Path)
						w.Header().Set("Content-Type", "application/json")
						w.WriteHeader(http.StatusUnsupportedMediaType)
						_, _ = w.Write([]byte(`{"error":"Content-Type must be application/json"}`))
						return
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MaxRequestSize caps the request body.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
