package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/savrlabs/savr/internal/category"
	"github.com/savrlabs/savr/internal/codec"
	"github.com/savrlabs/savr/internal/middleware"
	"github.com/savrlabs/savr/internal/model"
	"github.com/savrlabs/savr/internal/store"
	"github.com/savrlabs/savr/internal/websocket"
)

type InventoryHandler struct {
	profiles *store.ProfileStore
	hub      *websocket.Hub
	logger   *slog.Logger
	now      func() time.Time
}

func NewInventoryHandler(ps *store.ProfileStore, hub *websocket.Hub, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{profiles: ps, hub: hub, logger: logger, now: time.Now}
}

type inventoryItemRequest struct {
	Emoji      string `json:"emoji"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   string `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
}

// validate rejects fields that would corrupt the delimited record format.
func (req *inventoryItemRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "name is required"
	}
	for _, f := range []string{req.Emoji, req.Name, req.Category, req.Quantity, req.ExpiryDate} {
		if strings.Contains(f, codec.Delimiter) {
			return "fields must not contain the '|' character"
		}
	}
	return ""
}

// List handles GET /api/inventory/items. Urgency tiers are recomputed against
// today on every read; the persisted tier is ignored.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load inventory")
		return
	}

	items := codec.DecodeInventoryItems(profile.CurrentInventory, h.now())
	writeJSON(w, http.StatusOK, items)
}

// Groups handles GET /api/inventory/groups. Every required category header is
// present even when empty.
func (h *InventoryHandler) Groups(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load inventory")
		return
	}

	items := codec.DecodeInventoryItems(profile.CurrentInventory, h.now())
	// Group under the raw record label. Item ids are positions in the
	// encoded list, so each item indexes back to its own record.
	key := func(it model.InventoryItem) string {
		label, _ := codec.InventoryCategory(profile.CurrentInventory[it.ID])
		return label
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"headers": category.Headers(items, key),
		"groups":  category.Group(items, key),
	})
}

// Create handles POST /api/inventory/items.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req inventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Auto-categorize if no category provided
	if req.Category == "" {
		req.Category = category.Categorize(req.Name)
	}

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load inventory")
		return
	}

	encoded := codec.EncodeInventoryItem(model.InventoryItem{
		Emoji:      req.Emoji,
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
		ExpiryDate: req.ExpiryDate,
	})
	updated := append(profile.CurrentInventory, encoded)

	if _, err := h.profiles.UpdateInventory(userID, updated); err != nil {
		h.logger.Error("update inventory", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save inventory")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("inventory", "created", userID, nil))

	item, _ := codec.DecodeInventoryItem(encoded, len(updated)-1, h.now())
	writeJSON(w, http.StatusCreated, item)
}

// Delete handles DELETE /api/inventory/items/{index}. Items are addressed by
// position, so deleting one shifts the ids of everything after it.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	idx, err := parseIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load inventory")
		return
	}
	if idx >= len(profile.CurrentInventory) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	updated := append(profile.CurrentInventory[:idx:idx], profile.CurrentInventory[idx+1:]...)
	if _, err := h.profiles.UpdateInventory(userID, updated); err != nil {
		h.logger.Error("update inventory", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save inventory")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("inventory", "deleted", userID, nil))

	w.WriteHeader(http.StatusNoContent)
}
