package store

import (
	"testing"

	"github.com/savrlabs/savr/internal/database"
)

func setupCatalogTestDB(t *testing.T) *CatalogStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewCatalogStore(db)
}

func TestRecipeSeedData(t *testing.T) {
	cs := setupCatalogTestDB(t)

	recipes, err := cs.ListRecipes()
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	if len(recipes) == 0 {
		t.Fatal("expected seeded recipes")
	}
	for _, r := range recipes {
		if r.ID == "" || r.Title == "" {
			t.Errorf("recipe missing id or title: %+v", r)
		}
		if len(r.Ingredients) == 0 {
			t.Errorf("recipe %s has no ingredients", r.ID)
		}
	}
}

func TestFoodSeedData(t *testing.T) {
	cs := setupCatalogTestDB(t)

	foods, err := cs.ListFoods()
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) == 0 {
		t.Fatal("expected seeded foods")
	}
	for _, f := range foods {
		if f.Name == "" || f.Category == "" {
			t.Errorf("food missing name or category: %+v", f)
		}
	}
}

func TestGetRecipe(t *testing.T) {
	cs := setupCatalogTestDB(t)

	r, err := cs.GetRecipe("banana_oatmeal")
	if err != nil {
		t.Fatalf("get recipe: %v", err)
	}
	if r == nil {
		t.Fatal("expected banana_oatmeal recipe")
	}
	if r.Title != "Banana Oatmeal" {
		t.Errorf("title = %q", r.Title)
	}
	if r.Calories != 320 || r.PrepTimeMinutes != 10 {
		t.Errorf("calories/minutes = %d/%d", r.Calories, r.PrepTimeMinutes)
	}

	missing, err := cs.GetRecipe("nonexistent")
	if err != nil {
		t.Fatalf("get missing recipe: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing recipe, got %+v", missing)
	}
}

func TestMalformedCatalogDocsAreSkipped(t *testing.T) {
	cs := setupCatalogTestDB(t)

	before, err := cs.ListRecipes()
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}

	seed := []struct{ id, doc string }{
		{"broken_json", `{not json`},
		{"blank_title", `{"id":"blank_title","title":""}`},
	}
	for _, s := range seed {
		if _, err := cs.db.Exec(`INSERT INTO recipe_catalog (id, doc) VALUES (?, ?)`, s.id, s.doc); err != nil {
			t.Fatalf("seed %s: %v", s.id, err)
		}
	}

	after, err := cs.ListRecipes()
	if err != nil {
		t.Fatalf("list recipes after seed: %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("malformed docs not skipped: %d recipes, want %d", len(after), len(before))
	}
}
