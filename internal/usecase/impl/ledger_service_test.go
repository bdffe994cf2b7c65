package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"intellieats/internal/domain/entity"
	domainerrors "intellieats/internal/domain/errors"
	"intellieats/internal/domain/repository"
	mockRepo "intellieats/internal/mocks/repository"
	"intellieats/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ledgerServiceFixtures holds all test dependencies for ledger service tests.
type ledgerServiceFixtures struct {
	service   usecase.LedgerUsecase
	entryRepo *mockRepo.MockEntryRepository
	foodRepo  *mockRepo.MockFoodRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	entryRepo := mockRepo.NewMockEntryRepository(t)
	foodRepo := mockRepo.NewMockFoodRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewLedgerService(entryRepo, foodRepo, userRepo)

	return ledgerServiceFixtures{
		service:   service,
		entryRepo: entryRepo,
		foodRepo:  foodRepo,
		userRepo:  userRepo,
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Goals:    entity.DefaultGoals(),
	}
}

func TestLedgerService_LogEntry_FreezesScaledSnapshot(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	user := testUser()
	food := &entity.Food{
		ID:   uuid.New(),
		Name: "Chicken Breast",
		Nutrition: entity.Nutrition{
			Calories: 165,
			Protein:  31,
			Fat:      3.6,
		},
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.foodRepo.EXPECT().FindFoodByID(ctx, food.ID).Return(food, nil)
	fx.entryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).
		Return(nil)

	entry, err := fx.service.LogEntry(ctx, user.ID, &usecase.EntryInput{
		FoodID:   food.ID,
		Servings: 1.5,
		MealType: entity.MealLunch,
	})
	require.NoError(t, err)
	assert.InDelta(t, 247.5, entry.Nutrition.Calories, 1e-9)
	assert.InDelta(t, 46.5, entry.Nutrition.Protein, 1e-9)
	assert.InDelta(t, 5.4, entry.Nutrition.Fat, 1e-9)
	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, food.ID, entry.FoodID)
	assert.False(t, entry.EatenAt.IsZero())
}

func TestLedgerService_LogEntry_RejectsInvalidServings(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()

	for _, servings := range []float64{0, -1.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		entry, err := fx.service.LogEntry(ctx, userID, &usecase.EntryInput{
			FoodID:   uuid.New(),
			Servings: servings,
			MealType: entity.MealSnack,
		})
		require.Error(t, err)
		assert.Nil(t, entry)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_SERVINGS", appErr.ErrorCode())
	}
	// The repositories were never touched; expectations on the mocks are
	// asserted empty on cleanup.
}

func TestLedgerService_LogEntry_RejectsUnknownMealType(t *testing.T) {
	fx := createTestLedgerService(t)

	_, err := fx.service.LogEntry(context.Background(), uuid.New(), &usecase.EntryInput{
		FoodID:   uuid.New(),
		Servings: 1,
		MealType: entity.MealType("brunch"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_MEAL_TYPE", appErr.ErrorCode())
}

func TestLedgerService_LogEntry_UnknownFood(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	user := testUser()
	foodID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.foodRepo.EXPECT().FindFoodByID(ctx, foodID).Return(nil, repository.ErrFoodNotFound)

	_, err := fx.service.LogEntry(ctx, user.ID, &usecase.EntryInput{
		FoodID:   foodID,
		Servings: 2,
		MealType: entity.MealDinner,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FOOD_NOT_FOUND", appErr.ErrorCode())
}

func TestLedgerService_LogEntry_HonorsExplicitEatenAt(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	user := testUser()
	food := &entity.Food{ID: uuid.New(), Nutrition: entity.Nutrition{Calories: 100}}
	eatenAt := time.Date(2026, 8, 27, 7, 30, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.foodRepo.EXPECT().FindFoodByID(ctx, food.ID).Return(food, nil)
	fx.entryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).
		Return(nil)

	entry, err := fx.service.LogEntry(ctx, user.ID, &usecase.EntryInput{
		FoodID:   food.ID,
		Servings: 1,
		MealType: entity.MealBreakfast,
		EatenAt:  &eatenAt,
	})
	require.NoError(t, err)
	assert.True(t, entry.EatenAt.Equal(eatenAt))
}

func TestLedgerService_DeleteEntry_NotFound(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fx.entryRepo.EXPECT().
		DeleteEntry(ctx, userID, entryID).
		Return(repository.ErrEntryNotFound)

	err := fx.service.DeleteEntry(ctx, userID, entryID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ENTRY_NOT_FOUND", appErr.ErrorCode())
}

func TestLedgerService_DeleteEntry_LeavesCatalogUntouched(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fx.entryRepo.EXPECT().
		DeleteEntry(ctx, userID, entryID).
		Return(nil)

	require.NoError(t, fx.service.DeleteEntry(ctx, userID, entryID))
	// No expectation was set on foodRepo; a catalog write would fail the test.
}

func TestLedgerService_Aggregate_UsesHalfOpenDayWindow(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	user := testUser()
	day := time.Date(2026, 8, 28, 15, 42, 0, 0, time.UTC)
	wantFrom := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.entryRepo.EXPECT().
		FindEntriesByUserAndRange(ctx, user.ID, wantFrom, wantTo).
		Return([]*entity.Entry{
			{ID: uuid.New(), MealType: entity.MealLunch, Nutrition: entity.Nutrition{Calories: 600}},
		}, nil)

	summary, err := fx.service.Aggregate(ctx, user.ID, day)
	require.NoError(t, err)
	assert.True(t, summary.Date.Equal(wantFrom))
	assert.InDelta(t, 600, summary.Totals.Calories, 1e-9)
	assert.Equal(t, user.Goals, summary.Goals)
}

func TestLedgerService_Aggregate_UnknownUser(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Aggregate(ctx, userID, time.Now())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}
