package middleware

import (
	"net/http"
	"strings"

	"team-analysis/standup/internal/auth"
	"team-analysis/standup/internal/config"
)

// AuthMiddleware authenticates every API request. The chat gateway presents
// the shared API key plus identity headers for the acting user;
// service-to-service callers present a signed bearer token.
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				token := strings.TrimPrefix(authHeader, "Bearer ")
				parsed, err := auth.ParseToken([]byte(cfg.JWTSecret), token)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				claims = parsed

			case apiKey != "":
				if cfg.GatewayAPIKey == "" || apiKey != cfg.GatewayAPIKey {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}

				userID := r.Header.Get("X-User-Id")
				if userID == "" {
					http.Error(w, "Unauthorized. Missing user identity", http.StatusUnauthorized)
					return
				}

				var roleIDs []string
				if raw := r.Header.Get("X-Role-Ids"); raw != "" {
					roleIDs = strings.Split(raw, ",")
				}
				claims = &auth.APIKeyClaims{UserIDValue: userID, RoleIDValues: roleIDs}

			default:
				http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
