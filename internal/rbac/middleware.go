package rbac

import (
	"net/http"

	auth "github.com/prepstack/prepstack-engine/internal/auth/middleware"
)

var defaultChecker = NewChecker(nil)

// Allowed reports whether a role holds a permission under the default grant
// table. Handlers that branch on capability use this instead of comparing role
// strings, so route gates and handler logic share one source of truth.
func Allowed(role, perm string) bool {
	return defaultChecker.Has(role, perm)
}

// Require gates a route on a permission, reading the role attached by the JWT
// middleware.
func Require(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := auth.RoleFromContext(r.Context())
			if !defaultChecker.Has(role, perm) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAny gates a route on any of several permissions.
func RequireAny(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := auth.RoleFromContext(r.Context())
			if !defaultChecker.Any(role, perms...) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
