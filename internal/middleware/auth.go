package middleware

import (
	"net/http"

	"github.com/newrban/cotizador-api/internal/auth"
)

// AdminTokenHeader carries the session token issued by the admin login
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth middleware restricts catalog editing to unlocked sessions.
// The token must have been issued by a successful password login.
func AdminAuth(sessions *auth.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)

			if token == "" {
				http.Error(w, "Unauthorized: admin token required", http.StatusUnauthorized)
				return
			}

			if !sessions.Validate(token) {
				http.Error(w, "Forbidden: invalid or expired admin token", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
