package postgres

import (
	"context"
	"testing"
	"time"

	"intellieats/internal/domain/entity"
	"intellieats/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestEntry(userID, foodID uuid.UUID, eatenAt time.Time) *entity.Entry {
	return &entity.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		FoodID:    foodID,
		Servings:  1,
		MealType:  entity.MealLunch,
		EatenAt:   eatenAt,
		Nutrition: entity.Nutrition{Calories: 600, Protein: 45},
	}
}

func seedFood(t *testing.T, db *gorm.DB) *entity.Food {
	t.Helper()

	food := newTestFood("Chicken Breast", "")
	require.NoError(t, NewFoodRepository(db).CreateFood(context.Background(), food))

	return food
}

func TestEntryRepository_CreateAndFindWithFood(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	food := seedFood(t, db)
	userID := uuid.New()
	entry := newTestEntry(userID, food.ID, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateEntry(ctx, entry))

	found, err := repo.FindEntryByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)
	assert.InDelta(t, 600, found.Nutrition.Calories, 1e-9)
	require.NotNil(t, found.Food)
	assert.Equal(t, "Chicken Breast", found.Food.Name)
}

func TestEntryRepository_FindEntriesByUserAndRange_HalfOpenWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	food := seedFood(t, db)
	userID := uuid.New()

	dayStart := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	nextDayStart := dayStart.AddDate(0, 0, 1)

	inside := []*entity.Entry{
		newTestEntry(userID, food.ID, dayStart),                       // inclusive lower bound
		newTestEntry(userID, food.ID, dayStart.Add(12*time.Hour)),     // midday
		newTestEntry(userID, food.ID, nextDayStart.Add(-time.Second)), // last second of the day
	}
	outside := []*entity.Entry{
		newTestEntry(userID, food.ID, dayStart.Add(-time.Second)), // previous day
		newTestEntry(userID, food.ID, nextDayStart),               // exclusive upper bound
		newTestEntry(uuid.New(), food.ID, dayStart.Add(time.Hour)), // someone else's entry
	}
	for _, entry := range append(inside, outside...) {
		require.NoError(t, repo.CreateEntry(ctx, entry))
	}

	entries, err := repo.FindEntriesByUserAndRange(ctx, userID, dayStart, nextDayStart)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ordered chronologically.
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].EatenAt.Before(entries[i-1].EatenAt))
	}
}

func TestEntryRepository_DeleteEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	food := seedFood(t, db)
	userID := uuid.New()
	entry := newTestEntry(userID, food.ID, time.Now().UTC())
	require.NoError(t, repo.CreateEntry(ctx, entry))

	require.NoError(t, repo.DeleteEntry(ctx, userID, entry.ID))

	_, err := repo.FindEntryByID(ctx, entry.ID)
	require.ErrorIs(t, err, repository.ErrEntryNotFound)

	// The referenced food survives the entry.
	_, err = NewFoodRepository(db).FindFoodByID(ctx, food.ID)
	require.NoError(t, err)
}

func TestEntryRepository_DeleteEntry_WrongOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	food := seedFood(t, db)
	owner := uuid.New()
	entry := newTestEntry(owner, food.ID, time.Now().UTC())
	require.NoError(t, repo.CreateEntry(ctx, entry))

	err := repo.DeleteEntry(ctx, uuid.New(), entry.ID)
	require.ErrorIs(t, err, repository.ErrEntryNotFound)

	// Still there for the real owner.
	_, err = repo.FindEntryByID(ctx, entry.ID)
	require.NoError(t, err)
}

func TestEntryRepository_DeleteEntry_Missing(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))

	err := repo.DeleteEntry(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, repository.ErrEntryNotFound)
}
