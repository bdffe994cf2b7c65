package impl

import (
	"context"

	"intellieats/internal/domain/entity"
	domainerrors "intellieats/internal/domain/errors"
	"intellieats/internal/domain/repository"
	"intellieats/internal/domain/service"
	"intellieats/internal/errors"
	"intellieats/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, hasher service.PasswordHasher) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Register creates an account with the default daily goals.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Goals:        entity.DefaultGoals(),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// GetProfile retrieves a user by ID.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateGoals replaces the user's daily targets and returns the updated
// profile.
func (s *userService) UpdateGoals(ctx context.Context, userID uuid.UUID, goals entity.Goals) (*entity.User, error) {
	if err := s.userRepo.UpdateGoals(ctx, userID, goals); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update goals")
	}

	return s.GetProfile(ctx, userID)
}
