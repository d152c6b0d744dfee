package model

// RecipeIngredient is one ingredient reference inside a catalog recipe. The
// FoodID names a food catalog entry; quantity and unit are informational only
// and never compared against inventory quantities.
type RecipeIngredient struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// RecipeCatalogEntry is one read-only recipe document from the catalog.
type RecipeCatalogEntry struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	Emoji               string             `json:"emoji"`
	Description         string             `json:"description"`
	Calories            int                `json:"calories"`
	PrepTimeMinutes     int                `json:"prepTimeMinutes"`
	Difficulty          int                `json:"difficulty"`
	Ingredients         []RecipeIngredient `json:"ingredients"`
	DietaryFlags        map[string]bool    `json:"dietaryFlags"`
	DietaryRestrictions []string           `json:"dietaryRestrictions"`
}

// FoodCatalogEntry is one read-only food document from the catalog.
type FoodCatalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category"`
	DefaultUnit string `json:"defaultUnit"`
}

// DisplayRecipe is the ranker's projection of a catalog recipe for display
// and for persistence as a generated meal. Its ID is always the catalog id.
type DisplayRecipe struct {
	ID         string `json:"id"`
	Emoji      string `json:"emoji"`
	Name       string `json:"name"`
	Calories   int    `json:"calories"`
	Minutes    int    `json:"minutes"`
	MatchBadge string `json:"match_badge"`
}
