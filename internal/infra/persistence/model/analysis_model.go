package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisModel is the GORM-specific struct for the 'analyses' table.
type AnalysisModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AnalysisType string    `gorm:"type:varchar(20);not null"`
	AnalysisDate time.Time `gorm:"not null"`
	AnalysisText string    `gorm:"type:varchar(5000)"`
	AvgCalories  float64   `gorm:"not null;default:0"`
	AvgProtein   float64   `gorm:"not null;default:0"`
	AvgCarbs     float64   `gorm:"not null;default:0"`
	AvgFat       float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalysisModel) TableName() string {
	return "analyses"
}
