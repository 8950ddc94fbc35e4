package domain

import (
	"errors"
	"time"
)

// MacroNutrients holds per-serving macro values. Every field is optional;
// an absent macro is unknown, not zero.
type MacroNutrients struct {
	Calories      *float64 `bson:"calories,omitempty" json:"calories"`
	Protein       *float64 `bson:"protein,omitempty" json:"protein"`
	Carbohydrates *float64 `bson:"carbohydrates,omitempty" json:"carbohydrates"`
	Fat           *float64 `bson:"fat,omitempty" json:"fat"`
	Fiber         *float64 `bson:"fiber,omitempty" json:"fiber"`
	Sugar         *float64 `bson:"sugar,omitempty" json:"sugar"`
	Sodium        *float64 `bson:"sodium,omitempty" json:"sodium"`
}

// FoodEntry is one logged meal item.
type FoodEntry struct {
	ID          string         `bson:"id" json:"id"`
	UserID      string         `bson:"user_id" json:"user_id"`
	FoodName    string         `bson:"food_name" json:"food_name"`
	ServingSize float64        `bson:"serving_size" json:"serving_size"`
	ServingUnit string         `bson:"serving_unit" json:"serving_unit"`
	Macros      MacroNutrients `bson:"macros" json:"macros"`
	MealType    string         `bson:"meal_type" json:"meal_type"`
	Date        time.Time      `bson:"date" json:"date"`
}

type FoodEntryCreate struct {
	FoodName    string         `json:"food_name"`
	ServingSize *float64       `json:"serving_size"`
	ServingUnit string         `json:"serving_unit"`
	Macros      MacroNutrients `json:"macros"`
	MealType    string         `json:"meal_type"`
}

func (c *FoodEntryCreate) Validate() error {
	if c.FoodName == "" {
		return errors.New("food_name is required")
	}
	if c.ServingSize == nil {
		return errors.New("serving_size is required")
	}
	if c.ServingUnit == "" {
		return errors.New("serving_unit is required")
	}
	if c.MealType == "" {
		return errors.New("meal_type is required")
	}
	return nil
}

// DailyMacros is the dashboard's same-day nutrient summary.
type DailyMacros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// SumMacros totals the tracked macros across entries. Absent macro fields
// count as zero here; that rule applies to the summary only, stored entries
// keep them nil.
func SumMacros(entries []FoodEntry) DailyMacros {
	var totals DailyMacros
	for _, e := range entries {
		totals.Calories += deref(e.Macros.Calories)
		totals.Protein += deref(e.Macros.Protein)
		totals.Carbs += deref(e.Macros.Carbohydrates)
		totals.Fat += deref(e.Macros.Fat)
	}
	return totals
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
