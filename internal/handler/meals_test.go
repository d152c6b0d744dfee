package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/savrlabs/savr/internal/model"
)

func TestMealsGenerateEmptyInventory(t *testing.T) {
	env := setupEnv(t)
	h := NewMealsHandler(env.profiles, env.catalog, env.hub, env.logger)

	rec := httptest.NewRecorder()
	h.Generate(rec, jsonRequest(t, "POST", "/api/meals/generate", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	meals := decodeBody[[]model.DisplayRecipe](t, rec)
	if len(meals) != 0 {
		t.Errorf("got %d meals from empty inventory, want 0", len(meals))
	}
}

func TestMealsGeneratePersistsSnapshot(t *testing.T) {
	env := setupEnv(t)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	inv := newInventoryHandler(t, env, today)
	for _, it := range []map[string]string{
		{"name": "Banana", "quantity": "3", "expiry_date": "11/03/2026"},
		{"name": "Oatmeal", "quantity": "1 box", "expiry_date": "01/06/2026"},
		{"name": "Honey", "quantity": "1 jar", "expiry_date": "01/06/2027"},
	} {
		rec := httptest.NewRecorder()
		inv.Create(rec, jsonRequest(t, "POST", "/api/inventory/items", it))
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed inventory status = %d", rec.Code)
		}
	}

	h := NewMealsHandler(env.profiles, env.catalog, env.hub, env.logger)
	h.now = func() time.Time { return today }

	rec := httptest.NewRecorder()
	h.Generate(rec, jsonRequest(t, "POST", "/api/meals/generate", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d: %s", rec.Code, rec.Body.String())
	}

	meals := decodeBody[[]model.DisplayRecipe](t, rec)
	if len(meals) == 0 {
		t.Fatal("expected at least one ranked meal")
	}
	if len(meals) > 7 {
		t.Errorf("got %d meals, want at most 7", len(meals))
	}

	// Banana oatmeal is fully matched with an urgent banana, so it ranks first
	if meals[0].ID != "banana_oatmeal" {
		t.Errorf("top meal = %q, want banana_oatmeal", meals[0].ID)
	}
	if meals[0].Calories != 320 || meals[0].Minutes != 10 {
		t.Errorf("top meal projection = %+v", meals[0])
	}

	// The list endpoint returns the persisted snapshot unchanged
	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/meals", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	persisted := decodeBody[[]model.DisplayRecipe](t, rec)
	if len(persisted) != len(meals) {
		t.Fatalf("persisted %d meals, generated %d", len(persisted), len(meals))
	}
	for i := range meals {
		if persisted[i] != meals[i] {
			t.Errorf("meal %d: persisted %+v, generated %+v", i, persisted[i], meals[i])
		}
	}
}

func TestMealsGenerateReplacesPreviousSnapshot(t *testing.T) {
	env := setupEnv(t)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	inv := newInventoryHandler(t, env, today)
	rec := httptest.NewRecorder()
	inv.Create(rec, jsonRequest(t, "POST", "/api/inventory/items", map[string]string{
		"name": "Banana", "quantity": "3", "expiry_date": "01/06/2026",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed status = %d", rec.Code)
	}

	h := NewMealsHandler(env.profiles, env.catalog, env.hub, env.logger)
	h.now = func() time.Time { return today }

	rec = httptest.NewRecorder()
	h.Generate(rec, jsonRequest(t, "POST", "/api/meals/generate", nil))
	first := decodeBody[[]model.DisplayRecipe](t, rec)

	// Empty the inventory and regenerate
	req := httptest.NewRequest("DELETE", "/api/inventory/items/0", nil)
	req.SetPathValue("index", "0")
	rec = httptest.NewRecorder()
	inv.Delete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Generate(rec, jsonRequest(t, "POST", "/api/meals/generate", nil))
	second := decodeBody[[]model.DisplayRecipe](t, rec)

	if len(first) == 0 {
		t.Fatal("first generation should match something")
	}
	if len(second) != 0 {
		t.Errorf("second generation = %d meals, want 0", len(second))
	}

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/meals", nil))
	if got := decodeBody[[]model.DisplayRecipe](t, rec); len(got) != 0 {
		t.Errorf("persisted snapshot = %d meals, want 0 after replacement", len(got))
	}
}
