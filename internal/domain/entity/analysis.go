package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisKind is the period a narrative analysis covers.
type AnalysisKind string

const (
	AnalysisDaily  AnalysisKind = "daily"
	AnalysisWeekly AnalysisKind = "weekly"
)

// Valid reports whether k is a known analysis kind.
func (k AnalysisKind) Valid() bool {
	return k == AnalysisDaily || k == AnalysisWeekly
}

// Analysis is a stored narrative nutrition analysis produced by the external
// language-model collaborator, together with the period's average intake.
// The core only persists and serves these; it never calls the model itself.
type Analysis struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"user_id"`
	Kind         AnalysisKind `json:"kind"`
	AnalysisDate time.Time    `json:"analysis_date"`
	Text         string       `json:"text"`
	AvgCalories  float64      `json:"avg_calories"`
	AvgProtein   float64      `json:"avg_protein"`
	AvgCarbs     float64      `json:"avg_carbs"`
	AvgFat       float64      `json:"avg_fat"`
	CreatedAt    time.Time    `json:"created_at"`
}
