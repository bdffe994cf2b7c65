package postgres

import (
	"context"
	"testing"
	"time"

	"intellieats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalysis(userID uuid.UUID, kind entity.AnalysisKind, createdAt time.Time) *entity.Analysis {
	return &entity.Analysis{
		ID:           uuid.New(),
		UserID:       userID,
		Kind:         kind,
		AnalysisDate: createdAt.Truncate(24 * time.Hour),
		Text:         "You hit your protein target most days this period.",
		AvgCalories:  1850,
		AvgProtein:   142,
		AvgCarbs:     190,
		AvgFat:       60,
		CreatedAt:    createdAt,
	}
}

func TestAnalysisRepository_CreateAndFind(t *testing.T) {
	repo := NewAnalysisRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	analysis := newTestAnalysis(userID, entity.AnalysisDaily, time.Now().UTC())
	require.NoError(t, repo.CreateAnalysis(ctx, analysis))

	analyses, err := repo.FindAnalysesByUser(ctx, userID, entity.AnalysisDaily)
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, analysis.ID, analyses[0].ID)
	assert.Equal(t, entity.AnalysisDaily, analyses[0].Kind)
	assert.InDelta(t, 1850, analyses[0].AvgCalories, 1e-9)
}

func TestAnalysisRepository_FindAnalysesByUser_NewestFirst(t *testing.T) {
	repo := NewAnalysisRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

	oldest := newTestAnalysis(userID, entity.AnalysisDaily, base)
	middle := newTestAnalysis(userID, entity.AnalysisDaily, base.AddDate(0, 0, 1))
	newest := newTestAnalysis(userID, entity.AnalysisDaily, base.AddDate(0, 0, 2))
	for _, analysis := range []*entity.Analysis{middle, oldest, newest} {
		require.NoError(t, repo.CreateAnalysis(ctx, analysis))
	}

	analyses, err := repo.FindAnalysesByUser(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, analyses, 3)
	assert.Equal(t, newest.ID, analyses[0].ID)
	assert.Equal(t, middle.ID, analyses[1].ID)
	assert.Equal(t, oldest.ID, analyses[2].ID)
}

func TestAnalysisRepository_FindAnalysesByUser_FiltersByKind(t *testing.T) {
	repo := NewAnalysisRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now().UTC()
	require.NoError(t, repo.CreateAnalysis(ctx, newTestAnalysis(userID, entity.AnalysisDaily, now)))
	require.NoError(t, repo.CreateAnalysis(ctx, newTestAnalysis(userID, entity.AnalysisWeekly, now.Add(time.Minute))))
	require.NoError(t, repo.CreateAnalysis(ctx, newTestAnalysis(uuid.New(), entity.AnalysisDaily, now)))

	weekly, err := repo.FindAnalysesByUser(ctx, userID, entity.AnalysisWeekly)
	require.NoError(t, err)
	require.Len(t, weekly, 1)
	assert.Equal(t, entity.AnalysisWeekly, weekly[0].Kind)

	all, err := repo.FindAnalysesByUser(ctx, userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAnalysisRepository_FindAnalysesByUser_EmptyResult(t *testing.T) {
	repo := NewAnalysisRepository(newTestDB(t))

	analyses, err := repo.FindAnalysesByUser(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.Empty(t, analyses)
}
