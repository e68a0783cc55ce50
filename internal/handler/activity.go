package handler

import (
	"net/http"

	"github.com/journey-app/journey/internal/activity"
	"github.com/journey-app/journey/internal/domain"
)

// ActivityHandler records user activity feeding mission progress
type ActivityHandler struct {
	service activity.Service
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(service activity.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// RecordActivityRequest names the activity log to append to
type RecordActivityRequest struct {
	Source string `json:"source" validate:"required,activity_source"`
}

// HandleRecordActivity appends one activity for the caller
// @Summary Record activity
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordActivityRequest true "Activity"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/activity [post]
func (h *ActivityHandler) HandleRecordActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req RecordActivityRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRecordActivity); err != nil {
		return
	}

	if err := h.service.Record(r.Context(), userID, domain.ActivitySource(req.Source)); err != nil {
		respondServiceError(w, r, OpRecordActivity, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{
		Message: "Activity recorded",
		Data:    req,
	})
}
