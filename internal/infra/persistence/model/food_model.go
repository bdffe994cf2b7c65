package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodModel is the GORM-specific struct for the 'foods' table.
//
// Barcode and SourceID are pointers so that absent values persist as NULL and
// stay out of the unique indexes; the catalog relies on those indexes for its
// insert-race policy.
type FoodModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(200);not null"`
	Brand            string    `gorm:"type:varchar(100)"`
	Barcode          *string   `gorm:"type:varchar(50);uniqueIndex"`
	ServingSize      string    `gorm:"type:varchar(50)"`
	ServingSizeGrams float64
	Calories         float64 `gorm:"not null"`
	Protein          float64 `gorm:"not null;default:0"`
	Carbohydrates    float64 `gorm:"not null;default:0"`
	Fat              float64 `gorm:"not null;default:0"`
	Fiber            float64 `gorm:"not null;default:0"`
	Sugar            float64 `gorm:"not null;default:0"`
	Sodium           float64 `gorm:"not null;default:0"`
	Source           string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_foods_source_source_id"`
	SourceID         *string `gorm:"type:varchar(100);uniqueIndex:idx_foods_source_source_id"`
	IsVerified       bool    `gorm:"not null;default:false"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
