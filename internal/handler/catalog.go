package handler

import (
	"log/slog"
	"net/http"

	"github.com/savrlabs/savr/internal/store"
)

type CatalogHandler struct {
	catalog *store.CatalogStore
	logger  *slog.Logger
}

func NewCatalogHandler(cs *store.CatalogStore, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: cs, logger: logger}
}

// ListRecipes handles GET /api/catalog/recipes.
func (h *CatalogHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.catalog.ListRecipes()
	if err != nil {
		h.logger.Error("list recipe catalog", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load recipe catalog")
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// ListFoods handles GET /api/catalog/foods.
func (h *CatalogHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.catalog.ListFoods()
	if err != nil {
		h.logger.Error("list food catalog", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load food catalog")
		return
	}
	writeJSON(w, http.StatusOK, foods)
}
