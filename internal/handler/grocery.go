package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/savrlabs/savr/internal/category"
	"github.com/savrlabs/savr/internal/codec"
	"github.com/savrlabs/savr/internal/middleware"
	"github.com/savrlabs/savr/internal/model"
	"github.com/savrlabs/savr/internal/store"
	"github.com/savrlabs/savr/internal/websocket"
)

type GroceryHandler struct {
	profiles *store.ProfileStore
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewGroceryHandler(ps *store.ProfileStore, hub *websocket.Hub, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{profiles: ps, hub: hub, logger: logger}
}

type groceryItemRequest struct {
	Emoji    string `json:"emoji"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

func (req *groceryItemRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "name is required"
	}
	for _, f := range []string{req.Emoji, req.Name, req.Category, req.Quantity} {
		if strings.Contains(f, codec.Delimiter) {
			return "fields must not contain the '|' character"
		}
	}
	return ""
}

func decodeGroceryList(encoded []string) []model.GroceryItem {
	items := make([]model.GroceryItem, 0, len(encoded))
	for i, s := range encoded {
		if it, ok := codec.DecodeGroceryItem(s, i, codec.GroceryChecked(s)); ok {
			items = append(items, it)
		}
	}
	return items
}

// List handles GET /api/grocery/items.
func (h *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load grocery list")
		return
	}

	writeJSON(w, http.StatusOK, decodeGroceryList(profile.GroceryList))
}

// Groups handles GET /api/grocery/groups. Items are grouped under the
// category label carried in their encoded record.
func (h *GroceryHandler) Groups(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load grocery list")
		return
	}

	type labeled struct {
		model.GroceryItem
		Category string `json:"category"`
	}
	items := make([]labeled, 0, len(profile.GroceryList))
	for i, s := range profile.GroceryList {
		it, ok := codec.DecodeGroceryItem(s, i, codec.GroceryChecked(s))
		if !ok {
			continue
		}
		label, _ := codec.GroceryCategory(s)
		items = append(items, labeled{GroceryItem: it, Category: label})
	}

	key := func(it labeled) string { return it.Category }
	writeJSON(w, http.StatusOK, map[string]any{
		"headers": category.Headers(items, key),
		"groups":  category.Group(items, key),
	})
}

// Create handles POST /api/grocery/items.
func (h *GroceryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req groceryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if req.Category == "" {
		req.Category = category.Categorize(req.Name)
	}

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load grocery list")
		return
	}

	encoded := codec.EncodeGroceryItem(model.GroceryItem{
		Emoji:    req.Emoji,
		Name:     req.Name,
		Quantity: req.Quantity,
	}, req.Category)
	updated := append(profile.GroceryList, encoded)

	if _, err := h.profiles.UpdateGroceryList(userID, updated); err != nil {
		h.logger.Error("update grocery list", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save grocery list")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("grocery", "created", userID, nil))

	item, _ := codec.DecodeGroceryItem(encoded, len(updated)-1, false)
	writeJSON(w, http.StatusCreated, item)
}

// Delete handles DELETE /api/grocery/items/{index}.
func (h *GroceryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	idx, err := parseIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load grocery list")
		return
	}
	if idx >= len(profile.GroceryList) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	updated := append(profile.GroceryList[:idx:idx], profile.GroceryList[idx+1:]...)
	if _, err := h.profiles.UpdateGroceryList(userID, updated); err != nil {
		h.logger.Error("update grocery list", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save grocery list")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("grocery", "deleted", userID, nil))

	w.WriteHeader(http.StatusNoContent)
}

// ToggleChecked handles POST /api/grocery/items/{index}/check.
func (h *GroceryHandler) ToggleChecked(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	idx, err := parseIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load grocery list")
		return
	}
	if idx >= len(profile.GroceryList) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	record := profile.GroceryList[idx]
	checked := !codec.GroceryChecked(record)
	updated := append([]string(nil), profile.GroceryList...)
	updated[idx] = codec.SetGroceryChecked(record, checked)

	if _, err := h.profiles.UpdateGroceryList(userID, updated); err != nil {
		h.logger.Error("update grocery list", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save grocery list")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("grocery", "checked", userID, nil))

	item, _ := codec.DecodeGroceryItem(updated[idx], idx, checked)
	writeJSON(w, http.StatusOK, item)
}
