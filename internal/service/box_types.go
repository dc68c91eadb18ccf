package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when no repository is wired.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// BoxTypesService provides box catalog operations.
type BoxTypesService interface {
	GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error)
	// ActiveBoxes returns the active catalog as domain box types, or the
	// given fallback when none is stored.
	ActiveBoxes(ctx context.Context, fallback []model.BoxType) ([]model.BoxType, error)
	Create(ctx context.Context, boxes []model.BoxType, createdBy string) (*repository.BoxCatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, boxes []model.BoxType, updatedBy string) (*repository.BoxCatalogConfig, error)
	List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error)
}

// BoxTypesServiceImpl implements BoxTypesService.
type BoxTypesServiceImpl struct {
	repo repository.BoxTypesRepositoryInterface
}

// NewBoxTypesService creates a new box types service.
func NewBoxTypesService(repo repository.BoxTypesRepositoryInterface) BoxTypesService {
	return &BoxTypesServiceImpl{repo: repo}
}

func (s *BoxTypesServiceImpl) GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetActive(ctx)
}

func (s *BoxTypesServiceImpl) ActiveBoxes(ctx context.Context, fallback []model.BoxType) ([]model.BoxType, error) {
	if s.repo == nil {
		return fallback, nil
	}
	config, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil || len(config.Boxes) == 0 {
		return fallback, nil
	}
	return config.ModelBoxes(), nil
}

func (s *BoxTypesServiceImpl) Create(ctx context.Context, boxes []model.BoxType, createdBy string) (*repository.BoxCatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, repository.DocumentBoxes(boxes), createdBy)
}

func (s *BoxTypesServiceImpl) Update(ctx context.Context, id primitive.ObjectID, boxes []model.BoxType, updatedBy string) (*repository.BoxCatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Update(ctx, id, repository.DocumentBoxes(boxes), updatedBy)
}

func (s *BoxTypesServiceImpl) List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}
