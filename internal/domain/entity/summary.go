package entity

import "time"

// DailySummary is the derived aggregate of one user's entries for one day.
// It is recomputed on every request and never persisted, since entries can be
// deleted between requests.
type DailySummary struct {
	Date     time.Time             `json:"date"`
	Totals   Nutrition             `json:"totals"`
	Goals    Goals                 `json:"goals"`
	Progress ProgressReport        `json:"progress"`
	Entries  []*Entry              `json:"entries"`
	Meals    map[MealType][]*Entry `json:"meals"`
}

// SummarizeDay sums the entries' frozen nutrition snapshots and groups them by
// meal slot. Grouping is for display only and does not affect the totals.
// An empty day yields zero totals and an empty entry list.
func SummarizeDay(date time.Time, goals Goals, entries []*Entry) *DailySummary {
	summary := &DailySummary{
		Date:    date,
		Goals:   goals,
		Entries: make([]*Entry, 0, len(entries)),
		Meals:   make(map[MealType][]*Entry),
	}

	for _, entry := range entries {
		summary.Entries = append(summary.Entries, entry)
		summary.Totals = summary.Totals.Add(entry.Nutrition)
		summary.Meals[entry.MealType] = append(summary.Meals[entry.MealType], entry)
	}

	summary.Progress = CompareGoals(summary.Totals, goals)

	return summary
}
