package postgres

import (
	"context"
	"time"

	"intellieats/internal/domain/entity"
	domainerrors "intellieats/internal/domain/errors"
	"intellieats/internal/domain/repository"
	"intellieats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entryRepository implements the repository.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// CreateEntry persists a new ledger entry. A broken food or user reference
// surfaces as ErrEntryReferenceInvalid.
func (repo *entryRepository) CreateEntry(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEntryReferenceInvalid
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindEntryByID retrieves one entry by its unique ID.
func (repo *entryRepository) FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryM model.EntryModel

	if err := repo.db.WithContext(ctx).
		Preload("Food").
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by ID")
	}

	return toEntryDomain(&entryM), nil
}

// FindEntriesByUserAndRange retrieves the user's entries with eaten_at in
// [from, to), ordered chronologically, with the referenced food preloaded.
func (repo *entryRepository) FindEntriesByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Entry, error) {
	var entryModels []*model.EntryModel

	if err := repo.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, from, to).
		Order("eaten_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entries by user and range")
	}

	entries := make([]*entity.Entry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries, nil
}

// DeleteEntry removes one entry belonging to the given user. Deleting an
// entry that does not exist, or that belongs to someone else, returns
// ErrEntryNotFound.
func (repo *entryRepository) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.EntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete food entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEntryDomain converts a GORM EntryModel to a domain Entry entity.
func toEntryDomain(data *model.EntryModel) *entity.Entry {
	if data == nil {
		return nil
	}

	return &entity.Entry{
		ID:       data.ID,
		UserID:   data.UserID,
		FoodID:   data.FoodID,
		Food:     toFoodDomain(data.Food),
		Servings: data.Servings,
		MealType: entity.MealType(data.MealType),
		EatenAt:  data.EatenAt,
		Nutrition: entity.Nutrition{
			Calories:      data.Calories,
			Protein:       data.Protein,
			Carbohydrates: data.Carbohydrates,
			Fat:           data.Fat,
			Fiber:         data.Fiber,
			Sugar:         data.Sugar,
			Sodium:        data.Sodium,
		},
		CreatedAt: data.CreatedAt,
	}
}

// fromEntryDomain converts a domain Entry entity to a GORM EntryModel for persistence.
func fromEntryDomain(data *entity.Entry) *model.EntryModel {
	if data == nil {
		return nil
	}

	return &model.EntryModel{
		ID:            data.ID,
		UserID:        data.UserID,
		FoodID:        data.FoodID,
		Servings:      data.Servings,
		MealType:      string(data.MealType),
		EatenAt:       data.EatenAt,
		Calories:      data.Nutrition.Calories,
		Protein:       data.Nutrition.Protein,
		Carbohydrates: data.Nutrition.Carbohydrates,
		Fat:           data.Nutrition.Fat,
		Fiber:         data.Nutrition.Fiber,
		Sugar:         data.Nutrition.Sugar,
		Sodium:        data.Nutrition.Sodium,
		CreatedAt:     data.CreatedAt,
	}
}
