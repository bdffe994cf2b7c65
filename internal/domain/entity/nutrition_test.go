package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNutrition_Scaled(t *testing.T) {
	chickenBreast := Nutrition{
		Calories:      165,
		Protein:       31,
		Carbohydrates: 0,
		Fat:           3.6,
	}

	scaled := chickenBreast.Scaled(1.5)

	assert.InDelta(t, 247.5, scaled.Calories, 1e-9)
	assert.InDelta(t, 46.5, scaled.Protein, 1e-9)
	assert.InDelta(t, 0, scaled.Carbohydrates, 1e-9)
	assert.InDelta(t, 5.4, scaled.Fat, 1e-9)
}

func TestNutrition_Scaled_DoesNotModifyReceiver(t *testing.T) {
	original := Nutrition{Calories: 100, Protein: 10, Sodium: 250}

	_ = original.Scaled(3)

	assert.Equal(t, Nutrition{Calories: 100, Protein: 10, Sodium: 250}, original)
}

func TestNutrition_Scaled_AllFields(t *testing.T) {
	n := Nutrition{
		Calories:      10,
		Protein:       20,
		Carbohydrates: 30,
		Fat:           40,
		Fiber:         50,
		Sugar:         60,
		Sodium:        70,
	}

	doubled := n.Scaled(2)

	assert.Equal(t, Nutrition{
		Calories:      20,
		Protein:       40,
		Carbohydrates: 60,
		Fat:           80,
		Fiber:         100,
		Sugar:         120,
		Sodium:        140,
	}, doubled)
}

func TestNutrition_Add(t *testing.T) {
	breakfast := Nutrition{Calories: 350, Protein: 12, Carbohydrates: 60, Fat: 8}
	lunch := Nutrition{Calories: 600, Protein: 45, Carbohydrates: 40, Fat: 25}

	total := breakfast.Add(lunch)

	assert.InDelta(t, 950, total.Calories, 1e-9)
	assert.InDelta(t, 57, total.Protein, 1e-9)
	assert.InDelta(t, 100, total.Carbohydrates, 1e-9)
	assert.InDelta(t, 33, total.Fat, 1e-9)
}

func TestNutrition_Add_ZeroIsIdentity(t *testing.T) {
	n := Nutrition{Calories: 123, Protein: 4.5, Sodium: 890}

	assert.Equal(t, n, n.Add(Nutrition{}))
	assert.Equal(t, n, Nutrition{}.Add(n))
}
