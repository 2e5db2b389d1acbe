package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidheexx/Nutrimate/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	token, err := utils.GenerateJWT("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{name: "missing header", authHeader: "", wantCode: http.StatusUnauthorized},
		{name: "not a bearer scheme", authHeader: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + token, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), "a@x.com")
			}
		})
	}
}
