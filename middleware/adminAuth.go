package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"katwate/services/auth"
	"katwate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionValidator resolves a bearer token to a live admin session.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*utils.AdminSession, error)
}

// AdminAuthMiddleware admits requests carrying the token of the latest admin
// sign-in and sets "uid", "email" and "role" on the context.
func AdminAuthMiddleware(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := sessions.ValidateSession(c.Request.Context(), tokenString)
		if errors.Is(err, auth.ErrSessionInvalid) {
			utils.JSONError(c, http.StatusUnauthorized, "Session expired, please sign in again", "")
			c.Abort()
			return
		}
		if err != nil {
			utils.GetLogger().Error("Session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Could not verify session"})
			return
		}

		c.Set("uid", session.UID)
		c.Set("email", session.Email)
		c.Set("role", session.Role)
		c.Next()
	}
}
