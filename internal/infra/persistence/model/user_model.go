// Package model contains the GORM-specific structs mapping the domain onto
// the relational schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CalorieGoal  int       `gorm:"not null;default:2000"`
	ProteinGoal  float64   `gorm:"not null;default:150"`
	CarbGoal     float64   `gorm:"not null;default:200"`
	FatGoal      float64   `gorm:"not null;default:65"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
