package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"task_tracker/internal/repository"
	"task_tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// AuthMiddleware gates every protected route: it verifies the bearer token,
// resolves the subject against the user directory and attaches the identity
// to the request context. It performs no business logic.
func AuthMiddleware(jwtUtil *utils.JWTUtil, users repository.UserRepository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "msg": "Token not found"})
			return
		}

		claims, err := jwtUtil.ValidateToken(rawToken(authHeader))
		if err != nil {
			// Malformed, bad signature and expired all look the same to the
			// caller; the wrapped error keeps them apart in logs.
			log.Debug("token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "msg": "Invalid token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			log.Error("failed to resolve token subject", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
			return
		}
		if user == nil {
			// Valid token for a deleted or unknown account.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "msg": "User not found"})
			return
		}

		c.Set(AuthUserKey, user.ID)
		c.Set(AuthRoleKey, user.Role)

		c.Next()
	}
}

// rawToken extracts the token from the Authorization header. Clients send the
// bare token; a "Bearer " prefix is tolerated for standard tooling.
func rawToken(header string) string {
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}
