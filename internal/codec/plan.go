package codec

import (
	"sort"

	"github.com/savrlabs/savr/internal/model"
)

// EncodePlannedMeals serializes day-to-recipe assignments as a list of day
// records, one per non-empty day in ascending day order. Days whose recipe
// set is empty are omitted entirely, never stored as an empty record. Recipe
// ids are deduplicated, preserving first occurrence, since a set is the
// logical type.
func EncodePlannedMeals(byDay map[int][]string) []model.PlannedDay {
	days := make([]int, 0, len(byDay))
	for day, ids := range byDay {
		if len(ids) > 0 {
			days = append(days, day)
		}
	}
	sort.Ints(days)

	out := make([]model.PlannedDay, 0, len(days))
	for _, day := range days {
		out = append(out, model.PlannedDay{DayIndex: day, RecipeIDs: dedupe(byDay[day])})
	}
	return out
}

// DecodePlannedMeals converts raw day records, as unmarshaled from a JSON
// document into generic maps, back to day-to-recipe assignments. Malformed
// sub-fields default instead of failing: a missing or wrong-typed dayIndex
// reads as day 0, and non-string entries in recipeIds are skipped. A record
// never fails as a whole. When two records claim the same day the later one
// wins.
func DecodePlannedMeals(records []map[string]any) map[int][]string {
	byDay := make(map[int][]string, len(records))
	for _, rec := range records {
		day := asInt(rec["dayIndex"])
		var ids []string
		if raw, ok := rec["recipeIds"].([]any); ok {
			for _, v := range raw {
				if s, ok := v.(string); ok {
					ids = append(ids, s)
				}
			}
		}
		byDay[day] = dedupe(ids)
	}
	return byDay
}

// PlannedByDay converts the persisted list form to the in-memory map form.
func PlannedByDay(days []model.PlannedDay) map[int][]string {
	byDay := make(map[int][]string, len(days))
	for _, d := range days {
		byDay[d.DayIndex] = dedupe(d.RecipeIDs)
	}
	return byDay
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// asInt coerces the numeric types a generic JSON or document decode can
// produce; anything else reads as zero.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}
