package middleware

import (
	"net/http"
	"strings"

	"medagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionIDKey is the gin context key carrying the authenticated session ID.
const SessionIDKey = "sessionID"

// SessionAuthMiddleware guards the wizard endpoints. StartSession hands the
// client a signed token naming its session; every later call must echo it,
// so one client cannot reach into another's draft.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		sessionID, err := utils.ExtractSessionIDFromToken(tokenString)
		if err != nil {
			zap.L().Warn("Rejected invalid session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
