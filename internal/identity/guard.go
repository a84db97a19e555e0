package identity

import (
	"net/http"

	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/transport"
)

// RequireRole admits requests whose principal passes Guard for roles.
// With no roles any signed-in principal is admitted.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := Guard(middleware.PrincipalFromContext(r.Context()), roles...)
			if !d.Allowed {
				transport.WriteDenied(w, d.Status, d.Redirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
