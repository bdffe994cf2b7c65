package impl

import (
	"context"
	"math"
	"time"

	"intellieats/internal/domain/entity"
	domainerrors "intellieats/internal/domain/errors"
	"intellieats/internal/domain/repository"
	"intellieats/internal/errors"
	"intellieats/internal/usecase"

	"github.com/google/uuid"
)

type ledgerService struct {
	entryRepo repository.EntryRepository
	foodRepo  repository.FoodRepository
	userRepo  repository.UserRepository
}

// NewLedgerService creates a new ledger service instance
func NewLedgerService(
	entryRepo repository.EntryRepository,
	foodRepo repository.FoodRepository,
	userRepo repository.UserRepository,
) usecase.LedgerUsecase {
	return &ledgerService{
		entryRepo: entryRepo,
		foodRepo:  foodRepo,
		userRepo:  userRepo,
	}
}

// LogEntry records a consumption event. The entry's nutrition is the food's
// per-serving nutrition scaled by servings, frozen at logging time.
func (s *ledgerService) LogEntry(ctx context.Context, userID uuid.UUID, input *usecase.EntryInput) (*entity.Entry, error) {
	if input.Servings <= 0 || math.IsNaN(input.Servings) || math.IsInf(input.Servings, 0) {
		return nil, domainerrors.ErrInvalidServings
	}
	if !input.MealType.Valid() {
		return nil, domainerrors.ErrInvalidMealType
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	food, err := s.foodRepo.FindFoodByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food")
	}

	eatenAt := time.Now()
	if input.EatenAt != nil {
		eatenAt = *input.EatenAt
	}

	entry := &entity.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		FoodID:    food.ID,
		Food:      food,
		Servings:  input.Servings,
		MealType:  input.MealType,
		EatenAt:   eatenAt,
		Nutrition: food.Nutrition.Scaled(input.Servings),
	}

	if err := s.entryRepo.CreateEntry(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrEntryReferenceInvalid) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to create entry")
	}

	return entry, nil
}

// DeleteEntry removes one of the user's entries. The referenced catalog food
// is untouched.
func (s *ledgerService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if err := s.entryRepo.DeleteEntry(ctx, userID, entryID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return domainerrors.ErrEntryNotFound
		}

		return errors.Wrap(err, "failed to delete entry")
	}

	return nil
}

// Aggregate sums the user's entries whose eaten_at falls inside the calendar
// day containing day, evaluated in day's location, and compares the totals
// against the user's goals.
func (s *ledgerService) Aggregate(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.DailySummary, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	entries, err := s.entryRepo.FindEntriesByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find entries for day")
	}

	return entity.SummarizeDay(from, user.Goals, entries), nil
}
