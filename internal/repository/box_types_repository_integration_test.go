//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/circuitbreaker"
)

func testCatalogBoxes() []BoxTypeDocument {
	return []BoxTypeDocument{
		{Name: "small", Length: 20, Width: 15, Height: 10, WeightLimit: 5},
		{Name: "medium", Length: 40, Width: 30, Height: 30, WeightLimit: 15},
		{Name: "large", Length: 60, Width: 40, Height: 40, WeightLimit: 30},
	}
}

func TestBoxTypesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewBoxTypesRepository(db)

	t.Run("get active when none exists", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("create catalog", func(t *testing.T) {
		config, err := repo.Create(ctx, testCatalogBoxes(), "test-user")
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Len(t, config.Boxes, 3)
		assert.True(t, config.Active)
		assert.Equal(t, 1, config.Version)
		assert.Equal(t, "test-user", config.CreatedBy)
		assert.False(t, config.ID.IsZero())
	})

	t.Run("get active after create", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "small", active.Boxes[0].Name)

		boxes := active.ModelBoxes()
		require.Len(t, boxes, 3)
		assert.Equal(t, 15.0, boxes[1].WeightLimit)
	})

	t.Run("create new active deactivates old", func(t *testing.T) {
		oldActive, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, oldActive)

		newBoxes := []BoxTypeDocument{
			{Name: "envelope", Length: 35, Width: 25, Height: 2, WeightLimit: 1},
		}
		_, err = repo.Create(ctx, newBoxes, "test-user-2")
		require.NoError(t, err)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "envelope", active.Boxes[0].Name)
		assert.NotEqual(t, oldActive.ID, active.ID)
	})

	t.Run("update bumps version", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		updated, err := repo.Update(ctx, active.ID, testCatalogBoxes(), "test-updater")
		require.NoError(t, err)
		assert.Len(t, updated.Boxes, 3)
		assert.Equal(t, active.Version+1, updated.Version)
	})

	t.Run("list newest first", func(t *testing.T) {
		configs, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(configs), 2)
		assert.True(t, configs[0].CreatedAt.After(configs[len(configs)-1].CreatedAt) ||
			configs[0].CreatedAt.Equal(configs[len(configs)-1].CreatedAt))
	})
}

func TestBoxTypesRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("box-types-test"))
	repo := NewBoxTypesRepositoryWithCircuitBreaker(NewBoxTypesRepository(db), cb)

	config, err := repo.Create(ctx, testCatalogBoxes(), "cb-user")
	require.NoError(t, err)
	require.NotNil(t, config)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, config.ID, active.ID)
	assert.True(t, repo.GetCircuitBreaker().GetStats().IsHealthy)
}
