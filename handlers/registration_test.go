package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPasswordCheckHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewRegistrationHandler(nil, zap.NewNop())
	router.POST("/password-check", h.PasswordCheckHandler)

	tests := []struct {
		name       string
		password   string
		strength   float64
		acceptable bool
	}{
		{"all criteria", "Abcdef1!", 5, true},
		{"missing special", "Abcdefg1", 4, true},
		{"weak", "abc", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(`{"password": "` + tt.password + `"}`)
			req := httptest.NewRequest(http.MethodPost, "/password-check", body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.strength, resp["strength"])
			assert.Equal(t, tt.acceptable, resp["acceptable"])

			criteria, ok := resp["criteria"].(map[string]any)
			require.True(t, ok)
			// All five criteria are always reported individually.
			assert.Len(t, criteria, 5)
		})
	}
}
