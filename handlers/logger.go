package handlers

import (
	"medagenda/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped Zap logger set by
// middleware.RequestLoggerMiddleware, falling back to the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
