package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
)

// fakeBoxTypesRepo returns a canned active catalog.
type fakeBoxTypesRepo struct {
	active  *repository.BoxCatalogConfig
	err     error
	created []repository.BoxTypeDocument
}

func (f *fakeBoxTypesRepo) GetActive(_ context.Context) (*repository.BoxCatalogConfig, error) {
	return f.active, f.err
}

func (f *fakeBoxTypesRepo) Create(_ context.Context, boxes []repository.BoxTypeDocument, createdBy string) (*repository.BoxCatalogConfig, error) {
	f.created = boxes
	return &repository.BoxCatalogConfig{Boxes: boxes, Active: true, Version: 1, CreatedBy: createdBy}, nil
}

func (f *fakeBoxTypesRepo) Update(_ context.Context, _ primitive.ObjectID, boxes []repository.BoxTypeDocument, _ string) (*repository.BoxCatalogConfig, error) {
	return &repository.BoxCatalogConfig{Boxes: boxes, Active: true, Version: 2}, nil
}

func (f *fakeBoxTypesRepo) List(_ context.Context, _ int) ([]repository.BoxCatalogConfig, error) {
	if f.active == nil {
		return nil, nil
	}
	return []repository.BoxCatalogConfig{*f.active}, nil
}

func fallbackBoxes() []model.BoxType {
	return []model.BoxType{{Name: "default", Length: 40, Width: 30, Height: 30, WeightLimit: 15}}
}

func TestBoxTypesService_ActiveBoxesFromRepository(t *testing.T) {
	repo := &fakeBoxTypesRepo{
		active: &repository.BoxCatalogConfig{
			Boxes: []repository.BoxTypeDocument{
				{Name: "small", Length: 20, Width: 15, Height: 10, WeightLimit: 5},
			},
			Active: true,
		},
	}
	svc := NewBoxTypesService(repo)

	boxes, err := svc.ActiveBoxes(context.Background(), fallbackBoxes())
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	assert.Equal(t, "small", boxes[0].Name)
}

func TestBoxTypesService_ActiveBoxesFallsBack(t *testing.T) {
	svc := NewBoxTypesService(&fakeBoxTypesRepo{})

	boxes, err := svc.ActiveBoxes(context.Background(), fallbackBoxes())
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	assert.Equal(t, "default", boxes[0].Name)
}

func TestBoxTypesService_ActiveBoxesWithoutRepository(t *testing.T) {
	svc := NewBoxTypesService(nil)

	boxes, err := svc.ActiveBoxes(context.Background(), fallbackBoxes())
	require.NoError(t, err)
	assert.Equal(t, fallbackBoxes(), boxes)

	_, err = svc.GetActive(context.Background())
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestBoxTypesService_ActiveBoxesPropagatesError(t *testing.T) {
	svc := NewBoxTypesService(&fakeBoxTypesRepo{err: errors.New("mongo down")})

	_, err := svc.ActiveBoxes(context.Background(), fallbackBoxes())
	assert.Error(t, err)
}

func TestBoxTypesService_CreateConvertsBoxes(t *testing.T) {
	repo := &fakeBoxTypesRepo{}
	svc := NewBoxTypesService(repo)

	config, err := svc.Create(context.Background(), fallbackBoxes(), "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, config.Version)
	assert.Equal(t, "admin", config.CreatedBy)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "default", repo.created[0].Name)
	assert.Equal(t, 15.0, repo.created[0].WeightLimit)
}
