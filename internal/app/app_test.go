//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Cache: config.CacheConfig{
					Size: 1000,
					TTL:  5 * time.Minute,
				},
			},
		},
		{
			name: "creates router with auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
		},
		{
			name: "creates router with cache disabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Cache:  config.CacheConfig{Size: 0},
			},
		},
		{
			name: "creates router with fallback box catalog",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Pricing: config.PricingConfig{
					BoxTypes: []model.BoxType{
						{Name: "medium", Length: 40, Width: 30, Height: 30, WeightLimit: 20},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			assert.NotNil(t, router)
		})
	}
}

func TestInitializeApp_HealthEndpoint(t *testing.T) {
	router := InitializeApp(config.Config{
		Server: config.ServerConfig{Port: "8080"},
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
