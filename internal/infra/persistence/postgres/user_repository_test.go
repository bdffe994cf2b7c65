package postgres

import (
	"context"
	"testing"

	"intellieats/internal/domain/entity"
	"intellieats/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(username, email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$12$abcdefghijklmnopqrstuv",
		Goals:        entity.DefaultGoals(),
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("alice", "alice@example.com")
	require.NoError(t, repo.CreateUser(ctx, user))

	found, err := repo.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.Equal(t, 2000, found.Goals.CalorieGoal)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestUserRepository_FindUserByID_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindUserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice", "alice@example.com")))

	err := repo.CreateUser(ctx, newTestUser("alice", "other@example.com"))
	require.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice", "alice@example.com")))

	err := repo.CreateUser(ctx, newTestUser("bob", "alice@example.com"))
	require.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_UpdateGoals(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("alice", "alice@example.com")
	require.NoError(t, repo.CreateUser(ctx, user))

	goals := entity.Goals{CalorieGoal: 2500, ProteinGoal: 180, CarbGoal: 250, FatGoal: 80}
	require.NoError(t, repo.UpdateGoals(ctx, user.ID, goals))

	found, err := repo.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, goals, found.Goals)
}

func TestUserRepository_UpdateGoals_UnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.UpdateGoals(context.Background(), uuid.New(), entity.DefaultGoals())
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}
