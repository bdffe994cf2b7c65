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

// analysisRepository implements the repository.AnalysisRepository interface.
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository is the constructor for analysisRepository.
func NewAnalysisRepository(db *gorm.DB) repository.AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// CreateAnalysis persists a generated analysis.
func (repo *analysisRepository) CreateAnalysis(ctx context.Context, analysis *entity.Analysis) error {
	analysisM := fromAnalysisDomain(analysis)

	if err := repo.db.WithContext(ctx).Create(analysisM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create analysis")
	}

	analysis.CreatedAt = analysisM.CreatedAt

	return nil
}

// FindAnalysesByUser retrieves the user's analyses, newest first. An empty
// kind returns every analysis regardless of kind.
func (repo *analysisRepository) FindAnalysesByUser(ctx context.Context, userID uuid.UUID, kind entity.AnalysisKind) ([]*entity.Analysis, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != "" {
		query = query.Where("analysis_type = ?", string(kind))
	}

	var analysisModels []*model.AnalysisModel

	if err := query.Order("created_at DESC").Find(&analysisModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find analyses by user")
	}

	analyses := make([]*entity.Analysis, 0, len(analysisModels))
	for _, analysisM := range analysisModels {
		analyses = append(analyses, toAnalysisDomain(analysisM))
	}

	return analyses, nil
}

// --- Mapper Functions ---

// toAnalysisDomain converts a GORM AnalysisModel to a domain Analysis entity.
func toAnalysisDomain(data *model.AnalysisModel) *entity.Analysis {
	if data == nil {
		return nil
	}

	return &entity.Analysis{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         entity.AnalysisKind(data.AnalysisType),
		AnalysisDate: data.AnalysisDate,
		Text:         data.AnalysisText,
		AvgCalories:  data.AvgCalories,
		AvgProtein:   data.AvgProtein,
		AvgCarbs:     data.AvgCarbs,
		AvgFat:       data.AvgFat,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAnalysisDomain converts a domain Analysis entity to a GORM AnalysisModel for persistence.
func fromAnalysisDomain(data *entity.Analysis) *model.AnalysisModel {
	if data == nil {
		return nil
	}

	return &model.AnalysisModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AnalysisType: string(data.Kind),
		AnalysisDate: data.AnalysisDate,
		AnalysisText: data.Text,
		AvgCalories:  data.AvgCalories,
		AvgProtein:   data.AvgProtein,
		AvgCarbs:     data.AvgCarbs,
		AvgFat:       data.AvgFat,
		CreatedAt:    data.CreatedAt,
	}
}
