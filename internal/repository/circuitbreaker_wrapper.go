package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/circuitbreaker"
)

// BoxTypesRepositoryWithCircuitBreaker wraps BoxTypesRepository with circuit
// breaker protection. When the circuit is open, reads degrade to "no catalog
// configured" so the packer falls back to the config-file catalog.
type BoxTypesRepositoryWithCircuitBreaker struct {
	repo           *BoxTypesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxTypesRepositoryWithCircuitBreaker creates the wrapper.
func NewBoxTypesRepositoryWithCircuitBreaker(repo *BoxTypesRepository, cb *circuitbreaker.CircuitBreaker) *BoxTypesRepositoryWithCircuitBreaker {
	return &BoxTypesRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// GetActive returns the active catalog, or nil when the circuit is open.
func (r *BoxTypesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*BoxCatalogConfig, error) {
	var result *BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create creates a new catalog with circuit breaker protection.
func (r *BoxTypesRepositoryWithCircuitBreaker) Create(ctx context.Context, boxes []BoxTypeDocument, createdBy string) (*BoxCatalogConfig, error) {
	var result *BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, boxes, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates a catalog with circuit breaker protection.
func (r *BoxTypesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, boxes []BoxTypeDocument, updatedBy string) (*BoxCatalogConfig, error) {
	var result *BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, boxes, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns catalogs with circuit breaker protection.
func (r *BoxTypesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BoxCatalogConfig, error) {
	var result []BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker exposes the breaker for health checks.
func (r *BoxTypesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker
// protection. Writes fail silently when the circuit is open because
// calculation logging is non-critical.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates the wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a log entry, dropping it when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *CalculationLogDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores log entries, dropping them when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*CalculationLogDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*CalculationLogDocument, error) {
	var result []*CalculationLogDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker exposes the breaker for health checks.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
