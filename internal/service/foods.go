package service

import "strings"

// FoodItem is one row of the built-in nutrition lookup table, per 100g.
type FoodItem struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
}

var foodTable = []FoodItem{
	{"Chicken Breast", 165, 31, 0, 3.6},
	{"Brown Rice", 112, 2.6, 23, 0.9},
	{"Broccoli", 34, 2.8, 7, 0.4},
	{"Salmon", 208, 25, 0, 12},
	{"Sweet Potato", 86, 1.6, 20, 0.1},
	{"Oats", 389, 16.9, 66.3, 6.9},
	{"Banana", 89, 1.1, 23, 0.3},
	{"Greek Yogurt", 59, 10, 3.6, 0.4},
	{"Almonds", 579, 21.2, 21.6, 49.9},
	{"Eggs", 155, 13, 1.1, 11},
}

// SearchFoods returns up to 10 table entries whose name contains the query,
// case-insensitively, in table order.
func SearchFoods(query string) []FoodItem {
	q := strings.ToLower(query)
	matches := []FoodItem{}
	for _, food := range foodTable {
		if strings.Contains(strings.ToLower(food.Name), q) {
			matches = append(matches, food)
			if len(matches) == 10 {
				break
			}
		}
	}
	return matches
}
