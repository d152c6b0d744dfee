package codec

import (
	"strconv"
	"strings"

	"github.com/savrlabs/savr/internal/model"
)

// EncodeRecipe produces the persisted form of a generated meal:
//
//	id|emoji|name|calories|minutes|matchBadgeText
func EncodeRecipe(r model.DisplayRecipe) string {
	return strings.Join([]string{
		r.ID,
		r.Emoji,
		r.Name,
		strconv.Itoa(r.Calories),
		strconv.Itoa(r.Minutes),
		r.MatchBadge,
	}, Delimiter)
}

// DecodeRecipe parses an encoded generated meal. Non-numeric calorie or
// minute fields fall back to zero instead of failing the record; records with
// fewer than six fields are dropped (ok=false).
func DecodeRecipe(encoded string) (model.DisplayRecipe, bool) {
	parts := strings.Split(encoded, Delimiter)
	if len(parts) < 6 {
		return model.DisplayRecipe{}, false
	}
	calories, _ := strconv.Atoi(parts[3])
	minutes, _ := strconv.Atoi(parts[4])
	return model.DisplayRecipe{
		ID:         parts[0],
		Emoji:      parts[1],
		Name:       parts[2],
		Calories:   calories,
		Minutes:    minutes,
		MatchBadge: parts[5],
	}, true
}

// EncodeRecipes encodes a generated-meals snapshot in order.
func EncodeRecipes(recipes []model.DisplayRecipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, EncodeRecipe(r))
	}
	return out
}

// DecodeRecipes decodes a persisted generated-meals list, silently dropping
// malformed records.
func DecodeRecipes(encoded []string) []model.DisplayRecipe {
	out := make([]model.DisplayRecipe, 0, len(encoded))
	for _, s := range encoded {
		if r, ok := DecodeRecipe(s); ok {
			out = append(out, r)
		}
	}
	return out
}
