//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
)

type noopLoggingService struct{}

func (noopLoggingService) CreateLog(context.Context, *model.CalculationLog) error { return nil }
func (noopLoggingService) CreateLogs(context.Context, []*model.CalculationLog) error {
	return nil
}
func (noopLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]model.CalculationLog, error) {
	return nil, nil
}
func (noopLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router without database",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.Nil(t, components.Config.LoggingService)
				assert.Nil(t, components.Config.BoxTypesService)
				assert.Nil(t, components.Config.AuthService)
				assert.Equal(t, 100, components.Config.RateLimit)
			},
		},
		{
			name: "creates router with API key auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.True(t, components.Config.EnableAuth)
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
				assert.Nil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates auth service when clients configured",
			cfg: config.Config{
				Auth: config.AuthConfig{
					Enabled:      true,
					Clients:      map[string]string{"pricing-portal": "$2a$04$notarealbcrypthashvalue"},
					JWTSecretKey: "test-signing-key",
					TokenTTL:     15 * time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: &DatabaseComponents{
				BoxTypesRepo:   &fakeBoxTypesRepo{},
				LoggingService: noopLoggingService{},
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.BoxTypesService)
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(tt.cfg)
			defer services.Stop()

			components := InitializeRouter(services, tt.dbComponents, tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestInitializeRouter_FallbackBoxes(t *testing.T) {
	cfg := config.Config{
		Pricing: config.PricingConfig{
			BoxTypes: []model.BoxType{
				{Name: "medium", Length: 40, Width: 30, Height: 30, WeightLimit: 20},
			},
		},
	}

	services := InitializeServices(cfg)
	defer services.Stop()

	components := InitializeRouter(services, nil, cfg)
	assert.NotNil(t, components.Handler)
}

// Compile-time check that the fake repo satisfies the repository interface.
var _ repository.BoxTypesRepositoryInterface = (*fakeBoxTypesRepo)(nil)
