package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryModel is the GORM-specific struct for the 'food_entries' table.
// The nutrient columns are the snapshot frozen at logging time; they are
// written once and never updated.
type EntryModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_food_entries_user_eaten"`
	FoodID        uuid.UUID  `gorm:"type:uuid;not null"`
	Food          *FoodModel `gorm:"foreignKey:FoodID"`
	Servings      float64    `gorm:"not null"`
	MealType      string     `gorm:"type:varchar(20);not null"`
	EatenAt       time.Time  `gorm:"not null;index:idx_food_entries_user_eaten"`
	Calories      float64    `gorm:"not null;default:0"`
	Protein       float64    `gorm:"not null;default:0"`
	Carbohydrates float64    `gorm:"not null;default:0"`
	Fat           float64    `gorm:"not null;default:0"`
	Fiber         float64    `gorm:"not null;default:0"`
	Sugar         float64    `gorm:"not null;default:0"`
	Sodium        float64    `gorm:"not null;default:0"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "food_entries"
}
