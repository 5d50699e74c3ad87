package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// AdminAuth protects the stats surface with API key authentication. The key
// is supplied via X-Admin-Key or an Authorization Bearer header.
type AdminAuth struct {
	apiKey  string
	enabled bool
}

// NewAdminAuth creates the admin authentication middleware.
func NewAdminAuth(apiKey string, enabled bool) *AdminAuth {
	if enabled && apiKey == "" {
		log.Warn().Msg("Admin surface enabled but no API key configured - admin routes will be inaccessible")
	}
	return &AdminAuth{apiKey: apiKey, enabled: enabled}
}

// Protect wraps an HTTP handler with admin authentication.
func (a *AdminAuth) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.enabled {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Not found"}`))
			return
		}

		if a.apiKey == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"Admin authentication not configured"}`))
			return
		}

		providedKey := r.Header.Get("X-Admin-Key")
		if providedKey == "" {
			if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				providedKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if providedKey != a.apiKey {
			log.Warn().
				Str("path", r.URL.Path).
				Str("ip", ClientIP(r)).
				Msg("Admin route accessed with missing or invalid API key")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid admin API key"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
