// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/http"
	"github.com/guttosm/quote-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var boxTypesService service.BoxTypesService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		boxTypesService = service.NewBoxTypesService(dbComponents.BoxTypesRepo)
	}

	handler := http.NewHandler(
		services.Estimator,
		services.Quoter,
		services.Packer,
		boxTypesService,
		cfg.Pricing.Snapshot,
		http.WithFallbackBoxes(cfg.Pricing.BoxTypes),
	)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterBreakerSource(services.CarrierClient.BreakerStats)

	if dbComponents != nil {
		if dbComponents.BoxTypesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_box_types", dbComponents.BoxTypesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.AddChecker("mongodb", http.HealthCheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return db.HealthCheck(ctx)
			}))
		}
	}

	// Token authentication requires configured clients.
	var authService service.AuthService
	if len(cfg.Auth.Clients) > 0 {
		authService = service.NewAuthService(cfg.Auth.Clients, cfg.Auth.JWTSecretKey, cfg.Auth.TokenTTL)
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		RequestTimeout:  cfg.Server.RequestTimeout,
		EnableAuth:      cfg.Auth.Enabled,
		APIKeys:         cfg.Auth.APIKeys,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		LoggingService:  loggingService,
		AuthService:     authService,
		BoxTypesService: boxTypesService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
