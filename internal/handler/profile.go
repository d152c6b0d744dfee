package handler

import (
	"log/slog"
	"net/http"

	"github.com/savrlabs/savr/internal/middleware"
	"github.com/savrlabs/savr/internal/store"
)

type ProfileHandler struct {
	profiles *store.ProfileStore
	logger   *slog.Logger
}

func NewProfileHandler(ps *store.ProfileStore, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: ps, logger: logger}
}

// Get handles GET /api/profile. A first request for an unknown user creates
// an empty profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetOrCreate(userID)
	if err != nil {
		h.logger.Error("get profile", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
