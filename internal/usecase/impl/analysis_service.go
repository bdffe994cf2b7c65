package impl

import (
	"context"
	"time"

	"intellieats/internal/domain/entity"
	domainerrors "intellieats/internal/domain/errors"
	"intellieats/internal/domain/repository"
	"intellieats/internal/errors"
	"intellieats/internal/usecase"

	"github.com/google/uuid"
)

type analysisService struct {
	analysisRepo repository.AnalysisRepository
	userRepo     repository.UserRepository
	ledger       usecase.LedgerUsecase
}

// NewAnalysisService creates a new analysis service instance
func NewAnalysisService(
	analysisRepo repository.AnalysisRepository,
	userRepo repository.UserRepository,
	ledger usecase.LedgerUsecase,
) usecase.AnalysisUsecase {
	return &analysisService{
		analysisRepo: analysisRepo,
		userRepo:     userRepo,
		ledger:       ledger,
	}
}

// BuildAnalysisContext assembles the day's intake, goals and progress. The
// digest is what an analysis generator consumes; building it is read-only.
func (s *analysisService) BuildAnalysisContext(ctx context.Context, userID uuid.UUID, day time.Time) (*usecase.AnalysisContext, error) {
	summary, err := s.ledger.Aggregate(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	return &usecase.AnalysisContext{
		Date:     summary.Date,
		Totals:   summary.Totals,
		Goals:    summary.Goals,
		Progress: &summary.Progress,
		Entries:  summary.Entries,
	}, nil
}

// SaveAnalysis stores a generated analysis against the user.
func (s *analysisService) SaveAnalysis(ctx context.Context, userID uuid.UUID, input *usecase.AnalysisInput) (*entity.Analysis, error) {
	if !input.Kind.Valid() {
		return nil, domainerrors.ErrInvalidAnalysisKind
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	analysisDate := input.AnalysisDate
	if analysisDate.IsZero() {
		analysisDate = time.Now()
	}

	analysis := &entity.Analysis{
		ID:           uuid.New(),
		UserID:       userID,
		Kind:         input.Kind,
		AnalysisDate: analysisDate,
		Text:         input.Text,
		AvgCalories:  input.AvgCalories,
		AvgProtein:   input.AvgProtein,
		AvgCarbs:     input.AvgCarbs,
		AvgFat:       input.AvgFat,
	}

	if err := s.analysisRepo.CreateAnalysis(ctx, analysis); err != nil {
		return nil, errors.Wrap(err, "failed to create analysis")
	}

	return analysis, nil
}

// ListAnalyses retrieves the user's stored analyses, newest first.
func (s *analysisService) ListAnalyses(ctx context.Context, userID uuid.UUID, kind entity.AnalysisKind) ([]*entity.Analysis, error) {
	if kind != "" && !kind.Valid() {
		return nil, domainerrors.ErrInvalidAnalysisKind
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	analyses, err := s.analysisRepo.FindAnalysesByUser(ctx, userID, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find analyses")
	}

	return analyses, nil
}
