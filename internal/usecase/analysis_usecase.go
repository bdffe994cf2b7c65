package usecase

import (
	"context"
	"time"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalysisContext is the structured digest of a day handed to whichever
// client generates the narrative analysis.
type AnalysisContext struct {
	Date     time.Time              `json:"date"`
	Totals   entity.Nutrition       `json:"totals"`
	Goals    entity.Goals           `json:"goals"`
	Progress *entity.ProgressReport `json:"progress"`
	Entries  []*entity.Entry        `json:"entries"`
}

// AnalysisInput carries a generated analysis to be stored.
type AnalysisInput struct {
	Kind         entity.AnalysisKind `json:"analysis_type" validate:"required"`
	AnalysisDate time.Time           `json:"analysis_date"`
	Text         string              `json:"analysis_text" validate:"required"`
	AvgCalories  float64             `json:"avg_calories"`
	AvgProtein   float64             `json:"avg_protein"`
	AvgCarbs     float64             `json:"avg_carbs"`
	AvgFat       float64             `json:"avg_fat"`
}

// AnalysisUsecase prepares analysis inputs and stores generated analyses.
type AnalysisUsecase interface {
	// BuildAnalysisContext assembles the day's intake, goals and progress
	// for analysis generation.
	BuildAnalysisContext(ctx context.Context, userID uuid.UUID, day time.Time) (*AnalysisContext, error)

	// SaveAnalysis stores a generated analysis against the user.
	SaveAnalysis(ctx context.Context, userID uuid.UUID, input *AnalysisInput) (*entity.Analysis, error)

	// ListAnalyses retrieves the user's stored analyses, newest first.
	// An empty kind returns all of them.
	ListAnalyses(ctx context.Context, userID uuid.UUID, kind entity.AnalysisKind) ([]*entity.Analysis, error)
}
