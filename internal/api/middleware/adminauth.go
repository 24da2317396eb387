package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/auth"
)

// AdminAuth creates middleware that validates admin session bearer tokens.
func AdminAuth(sessions *auth.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAdminUnauthorized(w, r, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if len(authHeader) < len(bearerPrefix) ||
				!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
				writeAdminUnauthorized(w, r, "invalid authorization header format")
				return
			}

			tokenString := authHeader[len(bearerPrefix):]
			if tokenString == "" {
				writeAdminUnauthorized(w, r, "missing bearer token")
				return
			}

			if _, err := sessions.ValidateSession(tokenString); err != nil {
				switch {
				case errors.Is(err, auth.ErrSessionExpired):
					writeAdminUnauthorized(w, r, "admin session has expired")
				case errors.Is(err, auth.ErrInvalidSessionToken):
					writeAdminUnauthorized(w, r, "invalid admin session token")
				default:
					writeAdminUnauthorized(w, r, "authentication failed")
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeAdminUnauthorized writes a 401 Unauthorized response.
// This is implemented directly here to avoid import cycle with response package.
func writeAdminUnauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	traceID := GetRequestID(r.Context())
	problem := models.NewUnauthorized(traceID, detail)
	problem.Instance = r.URL.Path
	problem.Write(w)
}
