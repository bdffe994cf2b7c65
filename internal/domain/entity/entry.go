package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType is the meal slot an entry is logged against.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether m is one of the four meal slots.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

// Entry is a single logged consumption event. It references a Food but does
// not own its lifecycle. Nutrition is a denormalized snapshot computed as
// food.Nutrition.Scaled(Servings) at logging time and never recomputed, so
// history stays frozen even if the catalog record were later corrected.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FoodID    uuid.UUID `json:"food_id"`
	Food      *Food     `json:"food,omitempty"`
	Servings  float64   `json:"servings"`
	MealType  MealType  `json:"meal_type"`
	EatenAt   time.Time `json:"eaten_at"`
	Nutrition Nutrition `json:"nutrition"`
	CreatedAt time.Time `json:"created_at"`
}
