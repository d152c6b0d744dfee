package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/savrlabs/savr/internal/codec"
	"github.com/savrlabs/savr/internal/model"
)

// ProfileStore persists one document per user. List fields inside the
// document hold encoded records in the flat persisted formats; this store
// never interprets them beyond JSON framing.
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// profileDoc is the JSON shape stored in the doc column. Field names match
// the persisted document format, not the Go API.
type profileDoc struct {
	DisplayName         string             `json:"displayName"`
	Username            string             `json:"username"`
	DietaryPreferences  []string           `json:"dietaryPreferences"`
	GroceryList         []string           `json:"groceryList"`
	CurrentInventory    []string           `json:"currentInventory"`
	GeneratedMeals      []string           `json:"generatedMeals"`
	PlannedMeals        []model.PlannedDay `json:"plannedMeals"`
	PlannedMealsWeekKey string             `json:"plannedMealsWeekKey"`
}

// rawProfileDoc is the tolerant read-side shape: plannedMeals is decoded
// field by field so one malformed record never fails the whole profile.
type rawProfileDoc struct {
	DisplayName         string          `json:"displayName"`
	Username            string          `json:"username"`
	DietaryPreferences  []string        `json:"dietaryPreferences"`
	GroceryList         []string        `json:"groceryList"`
	CurrentInventory    []string        `json:"currentInventory"`
	GeneratedMeals      []string        `json:"generatedMeals"`
	PlannedMeals        json.RawMessage `json:"plannedMeals"`
	PlannedMealsWeekKey string          `json:"plannedMealsWeekKey"`
}

// Get returns the profile for the given user, or (nil, nil) when absent.
func (s *ProfileStore) Get(userID string) (*model.Profile, error) {
	var doc string
	var createdAt, updatedAt time.Time
	err := s.db.QueryRow(
		`SELECT doc, created_at, updated_at FROM profiles WHERE user_id = ?`, userID,
	).Scan(&doc, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return decodeProfile(userID, doc, createdAt, updatedAt)
}

// GetOrCreate returns the profile for the given user, creating an empty one
// when none exists.
func (s *ProfileStore) GetOrCreate(userID string) (*model.Profile, error) {
	p, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (user_id, doc) VALUES (?, '{}') ON CONFLICT(user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return s.Get(userID)
}

// Put writes the whole profile document back.
func (s *ProfileStore) Put(p *model.Profile) error {
	doc := profileDoc{
		DisplayName:         p.DisplayName,
		Username:            p.Username,
		DietaryPreferences:  p.DietaryPreferences,
		GroceryList:         p.GroceryList,
		CurrentInventory:    p.CurrentInventory,
		GeneratedMeals:      p.GeneratedMeals,
		PlannedMeals:        p.PlannedMeals,
		PlannedMealsWeekKey: p.PlannedMealsWeekKey,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal profile doc: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (user_id, doc, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		p.UserID, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// UpdateGroceryList replaces the grocery list field (read-modify-write).
func (s *ProfileStore) UpdateGroceryList(userID string, encoded []string) (*model.Profile, error) {
	return s.update(userID, func(p *model.Profile) {
		p.GroceryList = encoded
	})
}

// UpdateInventory replaces the current inventory field.
func (s *ProfileStore) UpdateInventory(userID string, encoded []string) (*model.Profile, error) {
	return s.update(userID, func(p *model.Profile) {
		p.CurrentInventory = encoded
	})
}

// UpdateGeneratedMeals replaces the generated meals snapshot.
func (s *ProfileStore) UpdateGeneratedMeals(userID string, encoded []string) (*model.Profile, error) {
	return s.update(userID, func(p *model.Profile) {
		p.GeneratedMeals = encoded
	})
}

// UpdatePlan replaces the planned meals and the week key they belong to.
func (s *ProfileStore) UpdatePlan(userID string, days []model.PlannedDay, weekKey string) (*model.Profile, error) {
	return s.update(userID, func(p *model.Profile) {
		p.PlannedMeals = days
		p.PlannedMealsWeekKey = weekKey
	})
}

func (s *ProfileStore) update(userID string, mutate func(*model.Profile)) (*model.Profile, error) {
	p, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	mutate(p)
	if err := s.Put(p); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func decodeProfile(userID, doc string, createdAt, updatedAt time.Time) (*model.Profile, error) {
	var raw rawProfileDoc
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("decode profile doc: %w", err)
	}

	// Planned meals survive malformed records: decode what can be decoded,
	// then re-encode to normalize (empty days dropped, ids deduped).
	var records []map[string]any
	if len(raw.PlannedMeals) > 0 {
		json.Unmarshal(raw.PlannedMeals, &records)
	}
	planned := codec.EncodePlannedMeals(codec.DecodePlannedMeals(records))

	return &model.Profile{
		UserID:              userID,
		DisplayName:         raw.DisplayName,
		Username:            raw.Username,
		DietaryPreferences:  raw.DietaryPreferences,
		GroceryList:         raw.GroceryList,
		CurrentInventory:    raw.CurrentInventory,
		GeneratedMeals:      raw.GeneratedMeals,
		PlannedMeals:        planned,
		PlannedMealsWeekKey: raw.PlannedMealsWeekKey,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}
