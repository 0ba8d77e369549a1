package middleware

import (
	"context"
	"net/http"
	"strings"

	"viukon-cms/logging"
	"viukon-cms/utils"
)

// TokenAuthenticator validates a bearer token.
type TokenAuthenticator interface {
	Authenticate(token string) (*utils.Claims, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the claims stored by JWTAuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*utils.Claims)
	return claims, ok
}

func JWTAuthMiddleware(auth TokenAuthenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.Logger.Debugf("Event ID: JWT_AUTH_MIDDLEWARE_START, Description: Starting JWTAuthMiddleware for request to %s %s", r.Method, r.URL.Path)
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
				utils.WriteError(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				logging.Logger.Warnf("Event ID: JWT_AUTH_BEARER_PREFIX_MISSING, Description: Bearer prefix missing in Authorization header for request to %s %s", r.Method, r.URL.Path)
				utils.WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, err := auth.Authenticate(tokenStr)
			if err != nil {
				logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
				utils.WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			logging.Logger.Debugf("Event ID: JWT_AUTH_SUCCESS, Description: Token for %s validated for request to %s %s", claims.Username, r.Method, r.URL.Path)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}
