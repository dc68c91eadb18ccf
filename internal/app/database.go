// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/circuitbreaker"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
	"github.com/guttosm/quote-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	BoxTypesRepo           repository.BoxTypesRepositoryInterface
	LoggingService         service.LoggingService
	BoxTypesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates required
// repositories and services. Returns nil if the database is disabled or the
// connection fails; the service then runs on configured defaults.
func InitializeDatabase(cfg config.DatabaseConfig, fallbackBoxes []model.BoxType) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	boxTypesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-box-types",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	boxTypesRepo := repository.NewBoxTypesRepository(db)
	boxTypesRepoWithCB := repository.NewBoxTypesRepositoryWithCircuitBreaker(boxTypesRepo, boxTypesCB)

	if err := initializeDefaultBoxCatalog(boxTypesRepoWithCB, fallbackBoxes); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default box catalog")
	}

	return &DatabaseComponents{
		DB:                     db,
		BoxTypesRepo:           boxTypesRepoWithCB,
		LoggingService:         loggingService,
		BoxTypesCircuitBreaker: boxTypesCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// initializeDefaultBoxCatalog creates the default box catalog configuration
// if none exists yet.
func initializeDefaultBoxCatalog(repo repository.BoxTypesRepositoryInterface, boxes []model.BoxType) error {
	if len(boxes) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		if _, err := repo.Create(ctx, repository.DocumentBoxes(boxes), "system"); err != nil {
			return err
		}
		log.Info().Int("boxes", len(boxes)).Msg("Created default box catalog")
	}

	return nil
}
