package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoxTypesRepositoryInterface defines box catalog repository operations.
type BoxTypesRepositoryInterface interface {
	GetActive(ctx context.Context) (*BoxCatalogConfig, error)
	Create(ctx context.Context, boxes []BoxTypeDocument, createdBy string) (*BoxCatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, boxes []BoxTypeDocument, updatedBy string) (*BoxCatalogConfig, error)
	List(ctx context.Context, limit int) ([]BoxCatalogConfig, error)
}

// LogsRepositoryInterface defines calculation log repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *CalculationLogDocument) error
	CreateMany(ctx context.Context, entries []*CalculationLogDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*CalculationLogDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
