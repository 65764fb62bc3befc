package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestLoggerMiddlewareSetsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLoggerMiddleware(zap.NewNop()))

	var got any
	router.GET("/probe", func(c *gin.Context) {
		got, _ = c.Get(LoggerKey)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	logger, ok := got.(*zap.Logger)
	require.True(t, ok, "context %q entry is not a *zap.Logger", LoggerKey)
	assert.NotNil(t, logger)
}
