package model

import "time"

// PlannedDay is one persisted planned-meals record: a week-day index
// (0=Monday..6=Sunday) and the recipe ids assigned to that day. Days with no
// recipes are never persisted.
type PlannedDay struct {
	DayIndex  int      `json:"dayIndex"`
	RecipeIDs []string `json:"recipeIds"`
}

// Profile is the single per-user document. The list fields hold encoded
// records in the flat persisted formats; the codec package is the only place
// that reads or writes those formats.
type Profile struct {
	UserID              string       `json:"user_id"`
	DisplayName         string       `json:"display_name"`
	Username            string       `json:"username"`
	DietaryPreferences  []string     `json:"dietary_preferences"`
	GroceryList         []string     `json:"grocery_list"`
	CurrentInventory    []string     `json:"current_inventory"`
	GeneratedMeals      []string     `json:"generated_meals"`
	PlannedMeals        []PlannedDay `json:"planned_meals"`
	PlannedMealsWeekKey string       `json:"planned_meals_week_key"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}
