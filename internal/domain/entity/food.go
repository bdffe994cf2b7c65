package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodSource identifies where a catalog record originally came from.
type FoodSource string

const (
	// FoodSourceUser marks a food submitted directly by a user.
	FoodSourceUser FoodSource = "user"
	// FoodSourceUSDA marks a food cached from USDA FoodData Central.
	FoodSourceUSDA FoodSource = "usda"
	// FoodSourceOpenFoodFacts marks a food cached from Open Food Facts.
	FoodSourceOpenFoodFacts FoodSource = "openfoodfacts"
)

// Valid reports whether s is one of the known source tags.
func (s FoodSource) Valid() bool {
	switch s {
	case FoodSourceUser, FoodSourceUSDA, FoodSourceOpenFoodFacts:
		return true
	default:
		return false
	}
}

// Food is a catalog entry describing one named, nutritionally-characterized
// food item. Records accumulate and are never deleted, so historical entries
// always resolve. Apart from the verification flag a food is immutable once
// persisted.
type Food struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Brand            string     `json:"brand,omitempty"`
	Barcode          string     `json:"barcode,omitempty"`           // globally unique among persisted records
	ServingSize      string     `json:"serving_size"`                // display descriptor, e.g. "1 cup", "100g"
	ServingSizeGrams float64    `json:"serving_size_grams,omitempty"` // gram equivalent of one serving
	Nutrition        Nutrition  `json:"nutrition"`                   // per one serving as described by ServingSize
	Source           FoodSource `json:"source"`
	SourceID         string     `json:"source_id,omitempty"` // identifier in the external source, for idempotent re-caching
	IsVerified       bool       `json:"is_verified"`
	CreatedAt        time.Time  `json:"created_at"`
}
