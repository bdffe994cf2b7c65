// Package entity contains the core business objects of the nutrition ledger,
// each representing a unique, identifiable concept within the domain.
package entity

// Nutrition is an immutable bundle of macro/micro nutrient quantities.
// Values are interpreted against the owning food's serving descriptor
// (typically "per 100g" or "per one serving"). Sodium is in milligrams,
// everything else in grams except Calories (kcal).
type Nutrition struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	Sodium        float64 `json:"sodium"`
}

// Scaled returns a copy of n with every field multiplied by factor.
// The receiver is never modified. A non-positive factor is a caller error;
// the ledger rejects it before Scaled is ever reached.
func (n Nutrition) Scaled(factor float64) Nutrition {
	return Nutrition{
		Calories:      n.Calories * factor,
		Protein:       n.Protein * factor,
		Carbohydrates: n.Carbohydrates * factor,
		Fat:           n.Fat * factor,
		Fiber:         n.Fiber * factor,
		Sugar:         n.Sugar * factor,
		Sodium:        n.Sodium * factor,
	}
}

// Add returns the field-by-field sum of n and other.
func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories:      n.Calories + other.Calories,
		Protein:       n.Protein + other.Protein,
		Carbohydrates: n.Carbohydrates + other.Carbohydrates,
		Fat:           n.Fat + other.Fat,
		Fiber:         n.Fiber + other.Fiber,
		Sugar:         n.Sugar + other.Sugar,
		Sodium:        n.Sodium + other.Sodium,
	}
}
