package postgres

import (
	"context"
	"testing"

	"intellieats/internal/domain/entity"
	"intellieats/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFood(name, barcode string) *entity.Food {
	return &entity.Food{
		ID:               uuid.New(),
		Name:             name,
		Barcode:          barcode,
		ServingSize:      "100g",
		ServingSizeGrams: 100,
		Nutrition:        entity.Nutrition{Calories: 100, Protein: 5},
		Source:           entity.FoodSourceUser,
	}
}

func TestFoodRepository_CreateAndFind(t *testing.T) {
	repo := NewFoodRepository(newTestDB(t))
	ctx := context.Background()

	food := newTestFood("Peanut Butter", "0123456789012")
	require.NoError(t, repo.CreateFood(ctx, food))

	byID, err := repo.FindFoodByID(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peanut Butter", byID.Name)
	assert.Equal(t, "0123456789012", byID.Barcode)

	byBarcode, err := repo.FindFoodByBarcode(ctx, "0123456789012")
	require.NoError(t, err)
	assert.Equal(t, food.ID, byBarcode.ID)
}

func TestFoodRepository_FindFoodByID_NotFound(t *testing.T) {
	repo := NewFoodRepository(newTestDB(t))

	_, err := repo.FindFoodByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrFoodNotFound)
}

func TestFoodRepository_DuplicateBarcode(t *testing.T) {
	repo := NewFoodRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateFood(ctx, newTestFood("First", "0123456789012")))

	err := repo.CreateFood(ctx, newTestFood("Second", "0123456789012"))
	require.ErrorIs(t, err, repository.ErrDuplicateFood)

	// The first write still wins.
	winner, err := repo.FindFoodByBarcode(ctx, "0123456789012")
	require.NoError(t, err)
	assert.Equal(t, "First", winner.Name)
}

func TestFoodRepository_EmptyBarcodesDoNotCollide(t *testing.T) {
	repo := NewFoodRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateFood(ctx, newTestFood("Homemade Soup", "")))
	require.NoError(t, repo.CreateFood(ctx, newTestFood("Homemade Bread", "")))
}

func TestFoodRepository_SearchFoodsByName(t *testing.T) {
	repo := NewFoodRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateFood(ctx, newTestFood("Chicken Breast", "")))
	require.NoError(t, repo.CreateFood(ctx, newTestFood("Roast chicken", "")))
	require.NoError(t, repo.CreateFood(ctx, newTestFood("Beef Steak", "")))

	foods, err := repo.SearchFoodsByName(ctx, "CHICKEN", 10)
	require.NoError(t, err)
	assert.Len(t, foods, 2)

	limited, err := repo.SearchFoodsByName(ctx, "chicken", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFoodRepository_FindFoodsBySourceIDs(t *testing.T) {
	repo := NewFoodRepository(newTestDB(t))
	ctx := context.Background()

	cached := newTestFood("Chicken Breast", "")
	cached.Source = entity.FoodSourceUSDA
	cached.SourceID = "171077"
	require.NoError(t, repo.CreateFood(ctx, cached))

	other := newTestFood("Oat Drink", "")
	other.Source = entity.FoodSourceOpenFoodFacts
	other.SourceID = "171077"
	require.NoError(t, repo.CreateFood(ctx, other))

	foods, err := repo.FindFoodsBySourceIDs(ctx, entity.FoodSourceUSDA, []string{"171077", "999999"})
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, cached.ID, foods[0].ID)

	none, err := repo.FindFoodsBySourceIDs(ctx, entity.FoodSourceUSDA, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
