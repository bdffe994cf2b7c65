package entity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(meal MealType, nutrition Nutrition) *Entry {
	return &Entry{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		FoodID:    uuid.New(),
		Servings:  1,
		MealType:  meal,
		EatenAt:   time.Now(),
		Nutrition: nutrition,
	}
}

func TestSummarizeDay_EmptyDay(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	goals := DefaultGoals()

	summary := SummarizeDay(date, goals, nil)

	require.NotNil(t, summary)
	assert.Equal(t, Nutrition{}, summary.Totals)
	assert.NotNil(t, summary.Entries)
	assert.Empty(t, summary.Entries)
	assert.Empty(t, summary.Meals)
	// Empty day against default goals: nothing met, nothing over.
	assert.Zero(t, summary.Progress.Calories.Percentage)
	assert.False(t, summary.Progress.Calories.OverGoal)
}

func TestSummarizeDay_SumsSnapshots(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		newTestEntry(MealBreakfast, Nutrition{Calories: 350, Protein: 12}),
		newTestEntry(MealLunch, Nutrition{Calories: 600, Protein: 45}),
		newTestEntry(MealDinner, Nutrition{Calories: 700, Protein: 50}),
		newTestEntry(MealSnack, Nutrition{Calories: 197, Protein: 13}),
	}

	summary := SummarizeDay(date, DefaultGoals(), entries)

	assert.InDelta(t, 1847, summary.Totals.Calories, 1e-6)
	assert.InDelta(t, 120, summary.Totals.Protein, 1e-6)
	assert.Len(t, summary.Entries, 4)
	assert.InDelta(t, 92.35, summary.Progress.Calories.Percentage, 1e-6)
}

func TestSummarizeDay_GroupsByMealWithoutAffectingTotals(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		newTestEntry(MealSnack, Nutrition{Calories: 100}),
		newTestEntry(MealSnack, Nutrition{Calories: 150}),
		newTestEntry(MealBreakfast, Nutrition{Calories: 400}),
	}

	summary := SummarizeDay(date, DefaultGoals(), entries)

	assert.Len(t, summary.Meals[MealSnack], 2)
	assert.Len(t, summary.Meals[MealBreakfast], 1)
	assert.NotContains(t, summary.Meals, MealDinner)
	assert.InDelta(t, 650, summary.Totals.Calories, 1e-6)
}

func TestSummarizeDay_OrderInvariant(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		newTestEntry(MealBreakfast, Nutrition{Calories: 123.45, Protein: 1.25, Fat: 0.33}),
		newTestEntry(MealLunch, Nutrition{Calories: 678.9, Protein: 44.1, Fat: 12.7}),
		newTestEntry(MealDinner, Nutrition{Calories: 555.55, Protein: 30.6, Fat: 9.01}),
		newTestEntry(MealSnack, Nutrition{Calories: 88.8, Protein: 2.2, Fat: 4.4}),
	}

	base := SummarizeDay(date, DefaultGoals(), entries)

	shuffled := make([]*Entry, len(entries))
	copy(shuffled, entries)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		summary := SummarizeDay(date, DefaultGoals(), shuffled)

		assert.InDelta(t, base.Totals.Calories, summary.Totals.Calories, 1e-6)
		assert.InDelta(t, base.Totals.Protein, summary.Totals.Protein, 1e-6)
		assert.InDelta(t, base.Totals.Fat, summary.Totals.Fat, 1e-6)
	}
}
