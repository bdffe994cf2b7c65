package postgres

import (
	"context"

	"intellieats/internal/domain/entity"
	domainerrors "intellieats/internal/domain/errors"
	"intellieats/internal/domain/repository"
	"intellieats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodRepository implements the repository.FoodRepository interface.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

// CreateFood persists a new food record. A collision on the barcode or
// (source, source_id) unique index surfaces as ErrDuplicateFood so the
// catalog can re-read the winning row instead of failing.
func (repo *foodRepository) CreateFood(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFood
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required food information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	food.CreatedAt = foodM.CreatedAt

	return nil
}

// FindFoodByID retrieves a food by its unique ID.
func (repo *foodRepository) FindFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by ID")
	}

	return toFoodDomain(&foodM), nil
}

// FindFoodByBarcode retrieves a food by exact barcode match.
func (repo *foodRepository) FindFoodByBarcode(ctx context.Context, barcode string) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by barcode")
	}

	return toFoodDomain(&foodM), nil
}

// FindFoodsBySourceIDs retrieves the cached foods from one external source
// whose source ids appear in sourceIDs.
func (repo *foodRepository) FindFoodsBySourceIDs(ctx context.Context, source entity.FoodSource, sourceIDs []string) ([]*entity.Food, error) {
	if len(sourceIDs) == 0 {
		return nil, nil
	}

	var foodModels []*model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("source = ? AND source_id IN ?", string(source), sourceIDs).
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find foods by source ids")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// SearchFoodsByName retrieves up to limit foods whose name contains the
// query, case-insensitively.
func (repo *foodRepository) SearchFoodsByName(ctx context.Context, query string, limit int) ([]*entity.Food, error) {
	var foodModels []*model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search foods by name")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// --- Mapper Functions ---

// toFoodDomain converts a GORM FoodModel to a domain Food entity.
func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:               data.ID,
		Name:             data.Name,
		Brand:            data.Brand,
		Barcode:          stringFromPtr(data.Barcode),
		ServingSize:      data.ServingSize,
		ServingSizeGrams: data.ServingSizeGrams,
		Nutrition: entity.Nutrition{
			Calories:      data.Calories,
			Protein:       data.Protein,
			Carbohydrates: data.Carbohydrates,
			Fat:           data.Fat,
			Fiber:         data.Fiber,
			Sugar:         data.Sugar,
			Sodium:        data.Sodium,
		},
		Source:     entity.FoodSource(data.Source),
		SourceID:   stringFromPtr(data.SourceID),
		IsVerified: data.IsVerified,
		CreatedAt:  data.CreatedAt,
	}
}

// fromFoodDomain converts a domain Food entity to a GORM FoodModel for persistence.
func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:               data.ID,
		Name:             data.Name,
		Brand:            data.Brand,
		Barcode:          ptrFromString(data.Barcode),
		ServingSize:      data.ServingSize,
		ServingSizeGrams: data.ServingSizeGrams,
		Calories:         data.Nutrition.Calories,
		Protein:          data.Nutrition.Protein,
		Carbohydrates:    data.Nutrition.Carbohydrates,
		Fat:              data.Nutrition.Fat,
		Fiber:            data.Nutrition.Fiber,
		Sugar:            data.Nutrition.Sugar,
		Sodium:           data.Nutrition.Sodium,
		Source:           string(data.Source),
		SourceID:         ptrFromString(data.SourceID),
		IsVerified:       data.IsVerified,
		CreatedAt:        data.CreatedAt,
	}
}

// ptrFromString stores empty strings as NULL so they never collide in a
// unique index.
func ptrFromString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func stringFromPtr(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
