package match

import (
	"sort"

	"github.com/savrlabs/savr/internal/model"
)

// TopN is how many ranked recipes are kept for display and persistence.
const TopN = 7

// Rank scores every catalog recipe against the inventory, discards recipes
// that match nothing (score exactly 0), sorts by score descending, and
// returns at most TopN results projected for display. Equal scores keep
// catalog order; no secondary sort key is guaranteed.
//
// The returned DisplayRecipe ids are always the catalog ids. Rank is pure:
// identical catalog, inventory, and item statuses always produce the same
// ordered list.
func Rank(catalog []model.RecipeCatalogEntry, inventory []model.InventoryItem) []model.DisplayRecipe {
	byName := Index(inventory)

	type scored struct {
		recipe model.RecipeCatalogEntry
		score  float64
	}
	ranked := make([]scored, 0, len(catalog))
	for _, r := range catalog {
		if s := Score(r, byName); s > 0 {
			ranked = append(ranked, scored{recipe: r, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}

	out := make([]model.DisplayRecipe, 0, len(ranked))
	for _, sr := range ranked {
		out = append(out, model.DisplayRecipe{
			ID:         sr.recipe.ID,
			Emoji:      sr.recipe.Emoji,
			Name:       sr.recipe.Title,
			Calories:   sr.recipe.Calories,
			Minutes:    sr.recipe.PrepTimeMinutes,
			MatchBadge: Badge(sr.recipe, byName),
		})
	}
	return out
}
