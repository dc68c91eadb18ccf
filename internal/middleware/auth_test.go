package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/quote-service/internal/service"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validKeys := map[string]bool{"valid-key": true}

	tests := []struct {
		name       string
		keys       map[string]bool
		header     string
		query      string
		wantStatus int
	}{
		{name: "disabled when no keys configured", keys: nil, wantStatus: http.StatusOK},
		{name: "valid key in header", keys: validKeys, header: "valid-key", wantStatus: http.StatusOK},
		{name: "valid key in query", keys: validKeys, query: "valid-key", wantStatus: http.StatusOK},
		{name: "missing key", keys: validKeys, wantStatus: http.StatusUnauthorized},
		{name: "invalid key", keys: validKeys, header: "wrong", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(APIKeyAuth(tt.keys))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			target := "/test"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func newTestAuthService(t *testing.T) service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-value"), bcrypt.MinCost)
	require.NoError(t, err)
	return service.NewAuthService(map[string]string{"pricing-portal": string(hash)}, "test-signing-key", time.Minute)
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authService := newTestAuthService(t)
	token, err := authService.IssueToken("pricing-portal", "s3cret-value")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantClient string
	}{
		{name: "valid bearer token", authHeader: "Bearer " + token.AccessToken, wantStatus: http.StatusOK, wantClient: "pricing-portal"},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "missing bearer prefix", authHeader: token.AccessToken, wantStatus: http.StatusUnauthorized},
		{name: "empty token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClient string
			router := gin.New()
			router.Use(JWTAuth(authService))
			router.GET("/test", func(c *gin.Context) {
				gotClient = GetClientID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantClient, gotClient)
			}
		})
	}
}
