package usecase

import (
	"context"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries a new account request.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserUsecase manages the account and its daily nutrition goals.
type UserUsecase interface {
	// Register creates an account with the default daily goals.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// GetProfile retrieves a user by ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateGoals replaces the user's daily targets and returns the
	// updated profile.
	UpdateGoals(ctx context.Context, userID uuid.UUID, goals entity.Goals) (*entity.User, error)
}
