package entity

import "math"

// GoalDimension is the progress of one tracked nutrient against its goal.
//
// Percentage is for display and is clamped to [0, 100]; Ratio is the raw
// unclamped total/goal so callers can see how far over goal a user went.
// When Goal is zero Ratio carries no meaning and is left at 0; OverGoal is
// the only signal in that case.
type GoalDimension struct {
	Total      float64 `json:"total"`
	Goal       float64 `json:"goal"`
	Ratio      float64 `json:"ratio"`
	Percentage float64 `json:"percentage"`
	OverGoal   bool    `json:"over_goal"`
}

// ProgressReport compares a day's totals against the user's goals across the
// four tracked dimensions.
type ProgressReport struct {
	Calories      GoalDimension `json:"calories"`
	Protein       GoalDimension `json:"protein"`
	Carbohydrates GoalDimension `json:"carbohydrates"`
	Fat           GoalDimension `json:"fat"`
}

// CompareGoals is a pure function mapping (totals, goals) to a progress
// report. It never divides by a zero goal.
func CompareGoals(totals Nutrition, goals Goals) ProgressReport {
	return ProgressReport{
		Calories:      compareDimension(totals.Calories, float64(goals.CalorieGoal)),
		Protein:       compareDimension(totals.Protein, goals.ProteinGoal),
		Carbohydrates: compareDimension(totals.Carbohydrates, goals.CarbGoal),
		Fat:           compareDimension(totals.Fat, goals.FatGoal),
	}
}

func compareDimension(total, goal float64) GoalDimension {
	d := GoalDimension{Total: total, Goal: goal}

	if goal <= 0 {
		// Zero goal: nothing consumed counts as met, anything else as over.
		d.Percentage = 100
		if total > 0 {
			d.OverGoal = true
		} else {
			d.Ratio = 1
		}

		return d
	}

	d.Ratio = total / goal
	d.Percentage = math.Min(d.Ratio*100, 100)
	d.OverGoal = total > goal

	return d
}
