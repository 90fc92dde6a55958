package middleware

import (
	"net/http"

	"team-analysis/standup/internal/auth"
)

// IsAdminMiddleware guards the administrative surface: roster changes,
// ignored-date edits, feature toggles, clear-all.
func IsAdminMiddleware(authorizer *auth.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil || !authorizer.IsAdmin(claims) {
				http.Error(w, "Unauthorized. Need admin perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CanEscalateMiddleware admits admins and registered product owners.
func CanEscalateMiddleware(authorizer *auth.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil || !authorizer.CanEscalate(r.Context(), claims) {
				http.Error(w, "Unauthorized. Need admin or product owner perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
