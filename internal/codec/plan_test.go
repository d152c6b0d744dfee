package codec

import (
	"reflect"
	"testing"

	"github.com/savrlabs/savr/internal/model"
)

func TestEncodePlannedMealsOmitsEmptyDays(t *testing.T) {
	byDay := map[int][]string{
		0: {},
		1: {"r1", "r2"},
	}
	got := EncodePlannedMeals(byDay)
	want := []model.PlannedDay{{DayIndex: 1, RecipeIDs: []string{"r1", "r2"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestEncodePlannedMealsSortsAndDedupes(t *testing.T) {
	byDay := map[int][]string{
		5: {"r3"},
		2: {"r1", "r1", "r2"},
	}
	got := EncodePlannedMeals(byDay)
	want := []model.PlannedDay{
		{DayIndex: 2, RecipeIDs: []string{"r1", "r2"}},
		{DayIndex: 5, RecipeIDs: []string{"r3"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodePlannedMeals(t *testing.T) {
	records := []map[string]any{
		{"dayIndex": float64(1), "recipeIds": []any{"r1", "r2"}},
		{"dayIndex": float64(4), "recipeIds": []any{"r3"}},
	}
	got := DecodePlannedMeals(records)
	want := map[int][]string{
		1: {"r1", "r2"},
		4: {"r3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodePlannedMealsMalformedRecords(t *testing.T) {
	records := []map[string]any{
		{"recipeIds": []any{"r1"}},                             // missing dayIndex -> 0
		{"dayIndex": "three", "recipeIds": []any{"r2", 7, nil}}, // bad index -> 0 (last wins), bad ids skipped
		{"dayIndex": float64(2), "recipeIds": "not-a-list"},    // bad list -> empty
		{},
	}
	got := DecodePlannedMeals(records)

	// Both malformed-index records collapse onto day 0; the later one wins.
	if ids := got[0]; !reflect.DeepEqual(ids, []string{"r2"}) {
		t.Errorf("day 0 ids = %v, want [r2]", ids)
	}
	if ids := got[2]; len(ids) != 0 {
		t.Errorf("day 2 ids = %v, want empty", ids)
	}
}

func TestPlannedRoundTrip(t *testing.T) {
	days := []model.PlannedDay{
		{DayIndex: 0, RecipeIDs: []string{"r1"}},
		{DayIndex: 6, RecipeIDs: []string{"r2", "r3"}},
	}
	byDay := PlannedByDay(days)
	if !reflect.DeepEqual(EncodePlannedMeals(byDay), days) {
		t.Errorf("round trip mismatch: %+v", EncodePlannedMeals(byDay))
	}
}
