package usecase

import (
	"context"
	"time"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
)

// EntryInput carries one consumption event to be logged.
type EntryInput struct {
	FoodID   uuid.UUID       `json:"food_id" validate:"required"`
	Servings float64         `json:"servings"`
	MealType entity.MealType `json:"meal_type" validate:"required"`
	EatenAt  *time.Time      `json:"eaten_at"`
}

// LedgerUsecase records what a user ate and aggregates it per day.
type LedgerUsecase interface {
	// LogEntry records a consumption event, freezing the nutrition
	// snapshot from the referenced food at logging time.
	LogEntry(ctx context.Context, userID uuid.UUID, input *EntryInput) (*entity.Entry, error)

	// DeleteEntry removes one of the user's entries. The referenced food
	// stays in the catalog.
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error

	// Aggregate sums the user's entries for the calendar day containing
	// day and compares the totals against the user's goals.
	Aggregate(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.DailySummary, error)
}
