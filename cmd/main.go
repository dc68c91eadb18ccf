// Package main is the entry point for the quote-service application.
//
// @title           Quote Service API
// @version         1.0.0
// @description     API for estimating shipping prices, aggregating carrier quotes and packing items into boxes.
//
//	This service computes tiered price estimates, collects quotes from carrier providers and plans box usage for shipments.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/quote-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT token issued by /api/auth/token. Format: "Bearer {token}".
//
// @tag.name        Pricing
// @tag.description Price estimation operations
//
// @tag.name        Quotes
// @tag.description Carrier quote aggregation
//
// @tag.name        Packing
// @tag.description Box packing operations
//
// @tag.name        BoxTypes
// @tag.description Box catalog management
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Operations
// @tag.description Operational endpoints (cache, logs)
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/quote-service/docs" // swagger docs

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
