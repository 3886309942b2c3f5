package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/user"
	"salonbook/utils"
)

// Context keys set by JWTAuthUserMiddleware.
const (
	ContextUserID  = "userID"
	ContextSession = "session"
)

// JWTAuthUserMiddleware resolves the bearer token to a session and stores it in the context.
func JWTAuthUserMiddleware(users user.UserService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}

		session, err := users.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if !errors.Is(err, user.ErrUnauthorized) {
				logger.Error("Authentication lookup failed", zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "Authentication error", "")
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "Token mismatch or expired", "")
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextSession, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by JWTAuthUserMiddleware.
func SessionFrom(c *gin.Context) (*user.Session, bool) {
	raw, exists := c.Get(ContextSession)
	if !exists {
		return nil, false
	}
	session, ok := raw.(*user.Session)
	return session, ok && session != nil
}
