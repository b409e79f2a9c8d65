package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

const apiKeyHeader = "X-API-Key"

// publicPaths skip the API key check: the chat page, health and metrics.
var publicPaths = map[string]bool{
	"/":           true,
	"/api/health": true,
	"/metrics":    true,
}

// APIKey guards the non-public routes with the X-API-Key header.
// An empty expectedKey disables the check. This key protects the server
// itself and is unrelated to the provider keys carried in form fields.
func APIKey(expectedKey string) func(http.Handler) http.Handler {
	if expectedKey == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	want := []byte(expectedKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			switch provided := r.Header.Get(apiKeyHeader); {
			case provided == "":
				jsonError(w, http.StatusUnauthorized, "missing API key")
			case subtle.ConstantTimeCompare([]byte(provided), want) != 1:
				jsonError(w, http.StatusUnauthorized, "invalid API key")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// jsonError writes {"error": msg} with code.
func jsonError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
