package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goals are a user's daily nutrition targets.
type Goals struct {
	CalorieGoal int     `json:"calorie_goal"`
	ProteinGoal float64 `json:"protein_goal"`
	CarbGoal    float64 `json:"carb_goal"`
	FatGoal     float64 `json:"fat_goal"`
}

// DefaultGoals returns the targets assigned to a freshly registered user.
func DefaultGoals() Goals {
	return Goals{
		CalorieGoal: 2000,
		ProteinGoal: 150,
		CarbGoal:    200,
		FatGoal:     65,
	}
}

// User is an account that owns ledger entries and goals. Authentication is
// handled outside the core; the core only threads the user's identity through
// every operation.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Goals        Goals     `json:"goals"`
	CreatedAt    time.Time `json:"created_at"`
}
