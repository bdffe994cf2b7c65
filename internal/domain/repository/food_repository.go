// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for food persistence.
var (
	// ErrFoodNotFound is returned when a food record is not found.
	ErrFoodNotFound = errors.New("food not found")
	// ErrDuplicateFood is returned when an insert collides with the unique
	// barcode or (source, source_id) constraint. Callers absorb this by
	// re-reading the now-existing row.
	ErrDuplicateFood = errors.New("food already exists")
)

// FoodRepository defines the interface for food-catalog database operations.
// Foods are accumulation-only: there is no delete, so historical entries
// always resolve.
type FoodRepository interface {
	// CreateFood persists a new food record. The caller assigns the ID.
	CreateFood(ctx context.Context, food *entity.Food) error

	// FindFoodByID retrieves a food by its unique ID.
	FindFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// FindFoodByBarcode retrieves a food by exact barcode match.
	FindFoodByBarcode(ctx context.Context, barcode string) (*entity.Food, error)

	// FindFoodsBySourceIDs retrieves the cached foods from one external
	// source whose source ids appear in sourceIDs.
	FindFoodsBySourceIDs(ctx context.Context, source entity.FoodSource, sourceIDs []string) ([]*entity.Food, error)

	// SearchFoodsByName retrieves up to limit foods whose name contains the
	// query, case-insensitively.
	SearchFoodsByName(ctx context.Context, query string, limit int) ([]*entity.Food, error)
}
