package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/journey-app/journey/internal/mission"
)

// MissionHandler serves the mission catalog, progress and reward claims
type MissionHandler struct {
	service mission.Service
}

// NewMissionHandler creates a new MissionHandler
func NewMissionHandler(service mission.Service) *MissionHandler {
	return &MissionHandler{service: service}
}

// HandleListMissions returns the active mission catalog
// @Summary List missions
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Mission
// @Router /api/v1/missions [get]
func (h *MissionHandler) HandleListMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := h.service.ListMissions(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListMissions, err)
		return
	}
	respondJSON(w, http.StatusOK, missions)
}

// HandleGetProgress returns the caller's progress on every active mission
// @Summary Mission progress
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.MissionProgress
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/missions/progress [get]
func (h *MissionHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, OpGetProgress, err)
		return
	}
	respondJSON(w, http.StatusOK, progress)
}

// HandleClaimMission claims the reward of a completed mission for the current window
// @Summary Claim mission reward
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} domain.ClaimOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/missions/{id}/claim [post]
func (h *MissionHandler) HandleClaimMission(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	missionID, ok := missionIDParam(w, r)
	if !ok {
		return
	}

	outcome, err := h.service.ClaimMission(r.Context(), userID, missionID)
	if err != nil {
		respondServiceError(w, r, OpClaimMission, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleGetClaimState reports the latest claim state for polling clients
// @Summary Claim state
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} domain.ClaimState
// @Router /api/v1/missions/{id}/claim [get]
func (h *MissionHandler) HandleGetClaimState(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	missionID, ok := missionIDParam(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.service.GetClaimState(r.Context(), userID, missionID))
}

func missionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 64 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMissionID)
		return "", false
	}
	return id, true
}
