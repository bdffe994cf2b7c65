// Package usecase defines the application service interfaces consumed by the
// delivery layer.
package usecase

import (
	"context"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
)

// FoodCandidate is one search hit. Cached foods carry their catalog ID;
// external hits that were never cached carry a nil ID and InDatabase false.
type FoodCandidate struct {
	ID               *uuid.UUID        `json:"id"`
	Name             string            `json:"name"`
	Brand            string            `json:"brand"`
	Barcode          string            `json:"barcode,omitempty"`
	ServingSize      string            `json:"serving_size"`
	ServingSizeGrams float64           `json:"serving_size_grams"`
	Nutrition        entity.Nutrition  `json:"nutrition"`
	Source           entity.FoodSource `json:"source"`
	SourceID         string            `json:"source_id,omitempty"`
	InDatabase       bool              `json:"in_database"`
}

// CreateFoodInput carries a caller-supplied food definition.
type CreateFoodInput struct {
	Name             string            `json:"name" validate:"required"`
	Brand            string            `json:"brand"`
	Barcode          string            `json:"barcode"`
	ServingSize      string            `json:"serving_size"`
	ServingSizeGrams float64           `json:"serving_size_grams" validate:"omitempty,gt=0"`
	Nutrition        entity.Nutrition  `json:"nutrition"`
	Source           entity.FoodSource `json:"source"`
	SourceID         string            `json:"source_id"`
}

// CatalogUsecase maintains the local food catalog and reconciles it against
// the external food databases.
type CatalogUsecase interface {
	// LookupByBarcode answers from the local catalog when possible and
	// otherwise fetches, caches and returns the external product.
	LookupByBarcode(ctx context.Context, barcode string) (*entity.Food, error)

	// Search merges local name matches with external hits, local first,
	// deduplicating external hits already cached locally.
	Search(ctx context.Context, query string) ([]*FoodCandidate, error)

	// CreateOrGetFood stores a food definition. When the barcode is
	// already taken the existing food wins and is returned unchanged.
	CreateOrGetFood(ctx context.Context, input *CreateFoodInput) (*entity.Food, error)
}
