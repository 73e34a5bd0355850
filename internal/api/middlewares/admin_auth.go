package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/thirdfi/fund-orchestrator/internal/config"
)

// AdminAuthMiddleware gates the admin surface behind a static API key passed
// in the X-API-Key header. The comparison is constant time.
func AdminAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(cfg.Server.AdminApiKey)) != 1 {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
