// Package match scores and ranks catalog recipes against the user's current
// inventory, favoring recipes that use up ingredients closest to expiry.
package match

import (
	"fmt"
	"strings"

	"github.com/savrlabs/savr/internal/expiry"
	"github.com/savrlabs/savr/internal/model"
)

// Urgency bonuses are spaced by two orders of magnitude so they dominate the
// coverage term completely: any recipe using an urgent ingredient outranks
// every recipe that uses none, and so on down the tiers. Match percentage
// only breaks ties within a tier.
const (
	bonusUrgent  = 1000
	bonusWarning = 100
	bonusFresh   = 10
)

// Index reduces an inventory to a lowercased name lookup for the scorer.
// When two items share a lowercased name, the later one wins; the earlier
// item is unreachable for matching.
func Index(items []model.InventoryItem) map[string]model.InventoryItem {
	byName := make(map[string]model.InventoryItem, len(items))
	for _, it := range items {
		byName[strings.ToLower(it.Name)] = it
	}
	return byName
}

// Score computes the desirability of one recipe against the inventory index.
// A recipe with no ingredients scores 0. Each ingredient whose food id
// (lowercased) is present in the index counts as matched and contributes a
// bonus by that item's urgency tier; quantity is never compared, presence is
// everything. The result is matchedFraction*100 plus the summed bonuses.
func Score(recipe model.RecipeCatalogEntry, byName map[string]model.InventoryItem) float64 {
	if len(recipe.Ingredients) == 0 {
		return 0
	}

	var bonus float64
	matched := 0
	for _, ing := range recipe.Ingredients {
		it, ok := byName[strings.ToLower(ing.FoodID)]
		if !ok {
			continue
		}
		matched++
		switch it.Status {
		case expiry.StatusUrgent:
			bonus += bonusUrgent
		case expiry.StatusWarning:
			bonus += bonusWarning
		case expiry.StatusFresh:
			bonus += bonusFresh
		}
	}

	pct := float64(matched) / float64(len(recipe.Ingredients))
	return pct*100 + bonus
}

// Badge returns the match badge text shown on a generated recipe card.
func Badge(recipe model.RecipeCatalogEntry, byName map[string]model.InventoryItem) string {
	matched := 0
	for _, ing := range recipe.Ingredients {
		if _, ok := byName[strings.ToLower(ing.FoodID)]; ok {
			matched++
		}
	}
	switch {
	case matched == len(recipe.Ingredients):
		return "✓ All ingredients"
	case matched > 0:
		return fmt.Sprintf("✓ %d/%d ingredients", matched, len(recipe.Ingredients))
	default:
		return "✓ Available"
	}
}
