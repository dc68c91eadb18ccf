package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/service"
)

func newTestAuthService(t *testing.T) service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-value"), bcrypt.MinCost)
	require.NoError(t, err)
	return service.NewAuthService(map[string]string{"pricing-portal": string(hash)}, "test-signing-key", time.Minute)
}

func TestIssueToken(t *testing.T) {
	router := gin.New()
	router.POST("/api/auth/token", NewAuthHandler(newTestAuthService(t)).IssueToken)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       dto.TokenRequest{ClientID: "pricing-portal", ClientSecret: "s3cret-value"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong secret",
			body:       dto.TokenRequest{ClientID: "pricing-portal", ClientSecret: "wrong-secret"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown client",
			body:       dto.TokenRequest{ClientID: "nobody", ClientSecret: "s3cret-value"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "secret too short",
			body:       map[string]interface{}{"client_id": "pricing-portal", "client_secret": "short"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing client id",
			body:       map[string]interface{}{"client_secret": "s3cret-value"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/api/auth/token", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				data := decodeSuccess(t, w)
				assert.NotEmpty(t, data["access_token"])
				assert.Equal(t, "Bearer", data["token_type"])
			}
		})
	}
}
