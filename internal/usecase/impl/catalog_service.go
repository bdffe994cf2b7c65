// Package impl contains the concrete application services behind the usecase
// interfaces.
package impl

import (
	"context"
	"log/slog"

	"intellieats/internal/domain/entity"
	domainerrors "intellieats/internal/domain/errors"
	"intellieats/internal/domain/repository"
	"intellieats/internal/domain/service"
	"intellieats/internal/errors"
	"intellieats/internal/usecase"

	"github.com/google/uuid"
)

const (
	// localSearchLimit caps how many catalog rows one search returns.
	localSearchLimit = 10
	// totalSearchLimit caps the merged local-plus-external result set.
	totalSearchLimit = 20

	defaultServingSize      = "100g"
	defaultServingSizeGrams = 100
)

type catalogService struct {
	logger        *slog.Logger
	foodRepo      repository.FoodRepository
	barcodeSource service.BarcodeSource
	searchSource  service.TextSearchSource
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	logger *slog.Logger,
	foodRepo repository.FoodRepository,
	barcodeSource service.BarcodeSource,
	searchSource service.TextSearchSource,
) usecase.CatalogUsecase {
	return &catalogService{
		logger:        logger,
		foodRepo:      foodRepo,
		barcodeSource: barcodeSource,
		searchSource:  searchSource,
	}
}

// LookupByBarcode serves the food from the local catalog when cached, and
// otherwise fetches it from the barcode source and caches it. Repeated
// lookups of the same barcode converge on one catalog record, including under
// concurrent first lookups.
func (s *catalogService) LookupByBarcode(ctx context.Context, barcode string) (*entity.Food, error) {
	food, err := s.foodRepo.FindFoodByBarcode(ctx, barcode)
	if err == nil {
		return food, nil
	}
	if !errors.Is(err, repository.ErrFoodNotFound) {
		return nil, errors.Wrap(err, "failed to check local catalog")
	}

	raw, err := s.barcodeSource.LookupBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, service.ErrNotFoundInSource) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	}

	food = foodFromRaw(raw, entity.FoodSourceOpenFoodFacts)

	if err := s.foodRepo.CreateFood(ctx, food); err != nil {
		// A concurrent lookup of the same barcode may have cached the
		// product first; that row wins.
		if errors.Is(err, repository.ErrDuplicateFood) {
			return s.foodRepo.FindFoodByBarcode(ctx, barcode)
		}

		return nil, errors.Wrap(err, "failed to cache barcode lookup")
	}

	return food, nil
}

// Search merges case-insensitive local name matches with external text-search
// hits. Local matches come first; external hits already cached locally are
// dropped. When the external source fails the local matches are still served.
func (s *catalogService) Search(ctx context.Context, query string) ([]*usecase.FoodCandidate, error) {
	localFoods, err := s.foodRepo.SearchFoodsByName(ctx, query, localSearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search local catalog")
	}

	candidates := make([]*usecase.FoodCandidate, 0, totalSearchLimit)
	for _, food := range localFoods {
		candidates = append(candidates, candidateFromFood(food))
	}

	externalFoods, err := s.searchSource.SearchFoods(ctx, query)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "external food search degraded to local results",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)

		return candidates, nil
	}

	cached, err := s.cachedSourceIDs(ctx, externalFoods)
	if err != nil {
		return nil, err
	}

	for _, raw := range externalFoods {
		if len(candidates) >= totalSearchLimit {
			break
		}
		if raw.SourceID != "" && cached[raw.SourceID] {
			continue
		}
		candidates = append(candidates, candidateFromRaw(raw, entity.FoodSourceUSDA))
	}

	return candidates, nil
}

// CreateOrGetFood stores a caller-supplied food. When the barcode is already
// taken, by an earlier call or a concurrent one, the existing record is
// returned unchanged.
func (s *catalogService) CreateOrGetFood(ctx context.Context, input *usecase.CreateFoodInput) (*entity.Food, error) {
	if input.Barcode != "" {
		existing, err := s.foodRepo.FindFoodByBarcode(ctx, input.Barcode)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrFoodNotFound) {
			return nil, errors.Wrap(err, "failed to check barcode")
		}
	}

	food := foodFromInput(input)

	if err := s.foodRepo.CreateFood(ctx, food); err != nil {
		if errors.Is(err, repository.ErrDuplicateFood) {
			return s.resolveDuplicate(ctx, input)
		}

		return nil, errors.Wrap(err, "failed to create food")
	}

	return food, nil
}

// resolveDuplicate re-reads the record that won a duplicate-key race.
func (s *catalogService) resolveDuplicate(ctx context.Context, input *usecase.CreateFoodInput) (*entity.Food, error) {
	if input.Barcode != "" {
		return s.foodRepo.FindFoodByBarcode(ctx, input.Barcode)
	}

	if input.SourceID != "" {
		foods, err := s.foodRepo.FindFoodsBySourceIDs(ctx, normalizeSource(input.Source), []string{input.SourceID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve duplicate food")
		}
		if len(foods) > 0 {
			return foods[0], nil
		}
	}

	return nil, domainerrors.ErrBarcodeConflict
}

// cachedSourceIDs answers which of the external hits already live in the
// catalog, with a single query.
func (s *catalogService) cachedSourceIDs(ctx context.Context, raws []*service.RawFood) (map[string]bool, error) {
	sourceIDs := make([]string, 0, len(raws))
	for _, raw := range raws {
		if raw.SourceID != "" {
			sourceIDs = append(sourceIDs, raw.SourceID)
		}
	}

	cached := make(map[string]bool, len(sourceIDs))
	if len(sourceIDs) == 0 {
		return cached, nil
	}

	foods, err := s.foodRepo.FindFoodsBySourceIDs(ctx, entity.FoodSourceUSDA, sourceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check cached source ids")
	}

	for _, food := range foods {
		cached[food.SourceID] = true
	}

	return cached, nil
}

func foodFromRaw(raw *service.RawFood, source entity.FoodSource) *entity.Food {
	return &entity.Food{
		ID:               uuid.New(),
		Name:             raw.Name,
		Brand:            raw.Brand,
		Barcode:          raw.Barcode,
		ServingSize:      raw.ServingSize,
		ServingSizeGrams: raw.ServingSizeGrams,
		Nutrition: entity.Nutrition{
			Calories:      raw.Calories,
			Protein:       raw.Protein,
			Carbohydrates: raw.Carbohydrates,
			Fat:           raw.Fat,
			Fiber:         raw.Fiber,
			Sugar:         raw.Sugar,
			Sodium:        raw.Sodium,
		},
		Source:     source,
		SourceID:   raw.SourceID,
		IsVerified: true,
	}
}

func foodFromInput(input *usecase.CreateFoodInput) *entity.Food {
	food := &entity.Food{
		ID:               uuid.New(),
		Name:             input.Name,
		Brand:            input.Brand,
		Barcode:          input.Barcode,
		ServingSize:      input.ServingSize,
		ServingSizeGrams: input.ServingSizeGrams,
		Nutrition:        input.Nutrition,
		Source:           normalizeSource(input.Source),
		SourceID:         input.SourceID,
		IsVerified:       input.Source != entity.FoodSourceUser && input.Source != "",
	}

	if food.ServingSize == "" {
		food.ServingSize = defaultServingSize
	}
	if food.ServingSizeGrams <= 0 {
		food.ServingSizeGrams = defaultServingSizeGrams
	}

	return food
}

func normalizeSource(source entity.FoodSource) entity.FoodSource {
	if !source.Valid() {
		return entity.FoodSourceUser
	}

	return source
}

func candidateFromFood(food *entity.Food) *usecase.FoodCandidate {
	id := food.ID

	return &usecase.FoodCandidate{
		ID:               &id,
		Name:             food.Name,
		Brand:            food.Brand,
		Barcode:          food.Barcode,
		ServingSize:      food.ServingSize,
		ServingSizeGrams: food.ServingSizeGrams,
		Nutrition:        food.Nutrition,
		Source:           food.Source,
		SourceID:         food.SourceID,
		InDatabase:       true,
	}
}

func candidateFromRaw(raw *service.RawFood, source entity.FoodSource) *usecase.FoodCandidate {
	return &usecase.FoodCandidate{
		Name:             raw.Name,
		Brand:            raw.Brand,
		Barcode:          raw.Barcode,
		ServingSize:      raw.ServingSize,
		ServingSizeGrams: raw.ServingSizeGrams,
		Nutrition: entity.Nutrition{
			Calories:      raw.Calories,
			Protein:       raw.Protein,
			Carbohydrates: raw.Carbohydrates,
			Fat:           raw.Fat,
			Fiber:         raw.Fiber,
			Sugar:         raw.Sugar,
			Sodium:        raw.Sodium,
		},
		Source:     source,
		SourceID:   raw.SourceID,
		InDatabase: false,
	}
}
