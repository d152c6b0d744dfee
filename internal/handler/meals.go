package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/savrlabs/savr/internal/codec"
	"github.com/savrlabs/savr/internal/match"
	"github.com/savrlabs/savr/internal/middleware"
	"github.com/savrlabs/savr/internal/store"
	"github.com/savrlabs/savr/internal/websocket"
)

type MealsHandler struct {
	profiles *store.ProfileStore
	catalog  *store.CatalogStore
	hub      *websocket.Hub
	logger   *slog.Logger
	now      func() time.Time
}

func NewMealsHandler(ps *store.ProfileStore, cs *store.CatalogStore, hub *websocket.Hub, logger *slog.Logger) *MealsHandler {
	return &MealsHandler{profiles: ps, catalog: cs, hub: hub, logger: logger, now: time.Now}
}

// Generate handles POST /api/meals/generate. It ranks the recipe catalog
// against the caller's inventory and persists the result as the generated
// meals snapshot, replacing any previous one.
func (h *MealsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	catalog, err := h.catalog.ListRecipes()
	if err != nil {
		h.logger.Error("list recipe catalog", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load recipe catalog")
		return
	}

	inventory := codec.DecodeInventoryItems(profile.CurrentInventory, h.now())
	ranked := match.Rank(catalog, inventory)

	if _, err := h.profiles.UpdateGeneratedMeals(userID, codec.EncodeRecipes(ranked)); err != nil {
		h.logger.Error("update generated meals", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save generated meals")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("meals", "generated", userID, map[string]any{
		"count": len(ranked),
	}))

	writeJSON(w, http.StatusOK, ranked)
}

// List handles GET /api/meals, returning the persisted generated-meals
// snapshot decoded for display.
func (h *MealsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, codec.DecodeRecipes(profile.GeneratedMeals))
}
