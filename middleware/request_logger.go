package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggerKey is the gin context key handlers read their request-scoped
// logger from.
const LoggerKey = "logger"

// RequestLoggerMiddleware attaches a child logger tagged with a per-request
// id, method and path to the gin context so handler log lines are
// correlatable within one request.
func RequestLoggerMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LoggerKey, base.With(
			zap.String("requestID", uuid.NewString()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		))
		c.Next()
	}
}
