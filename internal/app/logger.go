// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the server configuration.
func InitializeLogger(cfg config.ServerConfig) {
	logger.Init(cfg.LogLevel, cfg.LogPretty)
}
