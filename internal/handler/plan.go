package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/savrlabs/savr/internal/codec"
	"github.com/savrlabs/savr/internal/middleware"
	"github.com/savrlabs/savr/internal/model"
	"github.com/savrlabs/savr/internal/plan"
	"github.com/savrlabs/savr/internal/store"
	"github.com/savrlabs/savr/internal/websocket"
)

type PlanHandler struct {
	profiles *store.ProfileStore
	hub      *websocket.Hub
	logger   *slog.Logger
	now      func() time.Time
}

func NewPlanHandler(ps *store.ProfileStore, hub *websocket.Hub, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{profiles: ps, hub: hub, logger: logger, now: time.Now}
}

type planResponse struct {
	WeekKey string             `json:"week_key"`
	Days    []model.PlannedDay `json:"days"`
}

// currentPlan loads the caller's plan, clearing it first when the stored week
// key belongs to a previous week.
func (h *PlanHandler) currentPlan(userID string) (*model.Profile, string, error) {
	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, "", err
	}

	weekKey := plan.WeekKey(h.now())
	if profile.PlannedMealsWeekKey != weekKey {
		profile, err = h.profiles.UpdatePlan(userID, nil, weekKey)
		if err != nil {
			return nil, "", err
		}
	}
	return profile, weekKey, nil
}

// Get handles GET /api/plan.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, weekKey, err := h.currentPlan(userID)
	if err != nil {
		h.logger.Error("load plan", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load plan")
		return
	}

	days := profile.PlannedMeals
	if days == nil {
		days = []model.PlannedDay{}
	}
	writeJSON(w, http.StatusOK, planResponse{WeekKey: weekKey, Days: days})
}

// SetDay handles PUT /api/plan/days/{day}. Day indexes run 0 (Monday) to
// 6 (Sunday). Assigning an empty recipe list removes the day's record.
func (h *PlanHandler) SetDay(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || !plan.ValidDay(day) {
		writeError(w, http.StatusBadRequest, "day must be between 0 and 6")
		return
	}

	var req struct {
		RecipeIDs []string `json:"recipeIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	profile, weekKey, err := h.currentPlan(userID)
	if err != nil {
		h.logger.Error("load plan", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load plan")
		return
	}

	byDay := codec.PlannedByDay(profile.PlannedMeals)
	byDay[day] = req.RecipeIDs
	days := codec.EncodePlannedMeals(byDay)

	if _, err := h.profiles.UpdatePlan(userID, days, weekKey); err != nil {
		h.logger.Error("update plan", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save plan")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("plan", "updated", userID, map[string]any{
		"day": day,
	}))

	writeJSON(w, http.StatusOK, planResponse{WeekKey: weekKey, Days: days})
}
