package repository

import (
	"context"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalysisRepository defines the interface for stored narrative analyses.
type AnalysisRepository interface {
	// CreateAnalysis persists a new analysis record. The caller assigns the ID.
	CreateAnalysis(ctx context.Context, analysis *entity.Analysis) error

	// FindAnalysesByUser retrieves a user's analyses, newest first, optionally
	// filtered by kind (empty kind means all).
	FindAnalysesByUser(ctx context.Context, userID uuid.UUID, kind entity.AnalysisKind) ([]*entity.Analysis, error)
}
