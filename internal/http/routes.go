package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/middleware"
)

// QuoteRoutes handles route registration for the pricing, quote and packing
// endpoints plus the catalog and operations surface.
type QuoteRoutes struct {
	handler         *Handler
	boxTypesHandler *BoxTypesHandler
	logsHandler     *LogsHandler
	authHandler     *AuthHandler
	cfg             *RouterConfig
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *Handler, cfg *RouterConfig) *QuoteRoutes {
	r := &QuoteRoutes{
		handler: handler,
		cfg:     cfg,
	}

	if cfg.BoxTypesService != nil {
		r.boxTypesHandler = NewBoxTypesHandler(cfg.BoxTypesService, handler)
	}
	if cfg.LoggingService != nil {
		r.logsHandler = NewLogsHandler(cfg.LoggingService)
	}
	if cfg.AuthService != nil {
		r.authHandler = NewAuthHandler(cfg.AuthService)
	}

	return r
}

// RegisterPublicRoutes registers all routes without token authentication.
func (r *QuoteRoutes) RegisterPublicRoutes(api *gin.RouterGroup) {
	if r.authHandler != nil {
		api.POST("/auth/token", r.authHandler.IssueToken)
	}
	r.registerBusinessRoutes(api)
}

// RegisterAuthenticatedRoutes registers the token endpoint publicly and the
// business routes behind JWT bearer authentication.
func (r *QuoteRoutes) RegisterAuthenticatedRoutes(api *gin.RouterGroup) {
	api.POST("/auth/token", r.authHandler.IssueToken)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(r.cfg.AuthService))

	r.registerBusinessRoutes(protected)
}

// registerBusinessRoutes registers the calculation and management endpoints
// on the given group.
func (r *QuoteRoutes) registerBusinessRoutes(rg *gin.RouterGroup) {
	if r.handler != nil {
		rg.POST("/price", r.handler.EstimatePrice)
		rg.POST("/quotes", r.handler.AggregateQuotes)
		rg.POST("/pack", r.handler.PackItems)
		rg.DELETE("/cache", r.handler.InvalidateCaches)
	}

	if r.boxTypesHandler != nil {
		rg.GET("/box-types", r.boxTypesHandler.GetActiveBoxTypes)
		rg.PUT("/box-types", r.boxTypesHandler.UpdateBoxTypes)
		rg.GET("/box-types/history", r.boxTypesHandler.ListBoxTypes)
	}

	if r.logsHandler != nil {
		rg.GET("/logs", r.logsHandler.QueryLogs)
	}
}
