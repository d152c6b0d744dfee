package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/savrlabs/savr/internal/model"
)

// CatalogStore reads the seeded recipe and food catalogs. Catalog documents
// are decoded tolerantly: a document that fails to parse, or a recipe with a
// blank title, or a food with a blank name, is skipped rather than failing
// the whole fetch.
type CatalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) ListRecipes() ([]model.RecipeCatalogEntry, error) {
	rows, err := s.db.Query(`SELECT id, doc FROM recipe_catalog ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.RecipeCatalogEntry
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}

		var r model.RecipeCatalogEntry
		if err := json.Unmarshal([]byte(doc), &r); err != nil {
			slog.Debug("skipping malformed recipe document", "id", id, "error", err)
			continue
		}
		if r.Title == "" {
			continue
		}
		if r.ID == "" {
			r.ID = id
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

func (s *CatalogStore) GetRecipe(id string) (*model.RecipeCatalogEntry, error) {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM recipe_catalog WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	var r model.RecipeCatalogEntry
	if err := json.Unmarshal([]byte(doc), &r); err != nil || r.Title == "" {
		return nil, nil
	}
	if r.ID == "" {
		r.ID = id
	}
	return &r, nil
}

func (s *CatalogStore) ListFoods() ([]model.FoodCatalogEntry, error) {
	rows, err := s.db.Query(`SELECT id, doc FROM food_catalog ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	var foods []model.FoodCatalogEntry
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}

		var f model.FoodCatalogEntry
		if err := json.Unmarshal([]byte(doc), &f); err != nil {
			slog.Debug("skipping malformed food document", "id", id, "error", err)
			continue
		}
		if f.Name == "" {
			continue
		}
		if f.ID == "" {
			f.ID = id
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (s *CatalogStore) GetFood(id string) (*model.FoodCatalogEntry, error) {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM food_catalog WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}

	var f model.FoodCatalogEntry
	if err := json.Unmarshal([]byte(doc), &f); err != nil || f.Name == "" {
		return nil, nil
	}
	if f.ID == "" {
		f.ID = id
	}
	return &f, nil
}
