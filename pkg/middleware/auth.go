package middleware

import (
	"net/http"
	"strings"

	"truetimeshare/pkg/token"
	"truetimeshare/pkg/utils"

	"go.uber.org/zap"
)

// AuthPrefix is the expected scheme in the Authorization header.
const AuthPrefix = "TrueTimeShare"

// Authorize validates the access JWT from the Authorization header and
// puts the caller's identity into the request context. Every failure
// answers 401 with the same message.
func Authorize(issuer *token.Issuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != AuthPrefix {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: "+AuthPrefix+" <token>")
				return
			}

			claims, err := issuer.Verify(parts[1], token.KindAccess)
			if err != nil {
				logger.Warn("Access token rejected",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if claims.Status != "active" {
				logger.Warn("Access token for inactive account",
					zap.String("user_id", claims.UserID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the role set by Authorize to be admin.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
