package repository

import (
	"context"
	"time"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for entry persistence.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrEntryReferenceInvalid is returned when an entry references a user or
	// food that does not exist.
	ErrEntryReferenceInvalid = errors.New("entry references a missing user or food")
)

// EntryRepository defines the interface for ledger-entry database operations.
// Entries are append-only with point deletion; they are never updated.
type EntryRepository interface {
	// CreateEntry persists a new ledger entry. The caller assigns the ID and
	// the frozen nutrition snapshot.
	CreateEntry(ctx context.Context, entry *entity.Entry) error

	// FindEntryByID retrieves an entry by its unique ID.
	FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindEntriesByUserAndRange retrieves a user's entries with eaten_at in
	// [from, to), ordered by eaten_at, with the referenced food loaded.
	FindEntriesByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Entry, error)

	// DeleteEntry removes one of the user's entries (hard delete). An entry
	// that does not exist or belongs to another user is ErrEntryNotFound.
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
}
