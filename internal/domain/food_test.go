package domain

import "testing"

func fp(v float64) *float64 { return &v }

func TestSumMacros(t *testing.T) {
	t.Parallel()

	entries := []FoodEntry{
		{Macros: MacroNutrients{Calories: fp(300), Protein: fp(20), Carbohydrates: fp(30), Fat: fp(10)}},
		{Macros: MacroNutrients{Calories: fp(150), Fat: fp(5)}},
		{Macros: MacroNutrients{}},
	}

	got := SumMacros(entries)

	want := DailyMacros{Calories: 450, Protein: 20, Carbs: 30, Fat: 15}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSumMacrosEmpty(t *testing.T) {
	t.Parallel()

	if got := SumMacros(nil); got != (DailyMacros{}) {
		t.Fatalf("expected zero macros, got %+v", got)
	}
}

func TestCreateShapeValidation(t *testing.T) {
	t.Parallel()

	size := 100.0
	valid := FoodEntryCreate{FoodName: "Oats", ServingSize: &size, ServingUnit: "g", MealType: "breakfast"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}

	missingSize := FoodEntryCreate{FoodName: "Oats", ServingUnit: "g", MealType: "breakfast"}
	if err := missingSize.Validate(); err == nil {
		t.Fatal("expected error for missing serving_size")
	}

	zeroSize := valid
	zero := 0.0
	zeroSize.ServingSize = &zero
	if err := zeroSize.Validate(); err != nil {
		t.Fatalf("explicit zero serving_size is present, not absent: %v", err)
	}
}
