package handler

import (
	"net/http"
	"time"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/raffle"
)

// RaffleHandler serves raffle listing, entry and the admin draw endpoints
type RaffleHandler struct {
	service raffle.Service
}

// NewRaffleHandler creates a new RaffleHandler
func NewRaffleHandler(service raffle.Service) *RaffleHandler {
	return &RaffleHandler{service: service}
}

// EnterRaffleRequest is the body of an entry. Weight is the ticket count.
type EnterRaffleRequest struct {
	Weight int    `json:"weight" validate:"min=1,max=1000000"`
	Email  string `json:"email" validate:"omitempty,email,max=254"`
}

// CreateRaffleRequest is the admin body for a new raffle
type CreateRaffleRequest struct {
	Title        string     `json:"title" validate:"required,max=200,excludesall=\x00\n\r\t"`
	WinnersCount int        `json:"winners_count" validate:"min=1,max=1000"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
}

// HandleListRaffles lists raffles, optionally filtered by status
// @Summary List raffles
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Param status query string false "active or drawn"
// @Success 200 {array} domain.Raffle
// @Router /api/v1/raffles [get]
func (h *RaffleHandler) HandleListRaffles(w http.ResponseWriter, r *http.Request) {
	status := GetOptionalQueryParam(r, "status", "")
	if err := GetValidator().ValidateVar(status, "raffle_status"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidStatus)
		return
	}

	raffles, err := h.service.ListRaffles(r.Context(), domain.RaffleStatus(status))
	if err != nil {
		respondServiceError(w, r, OpListRaffles, err)
		return
	}
	respondJSON(w, http.StatusOK, raffles)
}

// HandleGetRaffle returns one raffle
// @Summary Get raffle
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {object} domain.Raffle
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/raffles/{id} [get]
func (h *RaffleHandler) HandleGetRaffle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRaffleID(w, r)
	if !ok {
		return
	}

	rf, err := h.service.GetRaffle(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetRaffle, err)
		return
	}
	respondJSON(w, http.StatusOK, rf)
}

// HandleEnterRaffle enters the caller into an active raffle
// @Summary Enter raffle
// @Tags raffles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Param request body EnterRaffleRequest true "Entry"
// @Success 201 {object} domain.RaffleParticipant
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/raffles/{id}/enter [post]
func (h *RaffleHandler) HandleEnterRaffle(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseRaffleID(w, r)
	if !ok {
		return
	}

	var req EnterRaffleRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpEnterRaffle); err != nil {
		return
	}

	participant, err := h.service.EnterRaffle(r.Context(), id, userID, req.Weight, req.Email)
	if err != nil {
		respondServiceError(w, r, OpEnterRaffle, err)
		return
	}
	respondJSON(w, http.StatusCreated, participant)
}

// HandleCreateRaffle creates a raffle (admin)
// @Summary Create raffle
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRaffleRequest true "Raffle"
// @Success 201 {object} domain.Raffle
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/raffles [post]
func (h *RaffleHandler) HandleCreateRaffle(w http.ResponseWriter, r *http.Request) {
	var req CreateRaffleRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateRaffle); err != nil {
		return
	}

	rf, err := h.service.CreateRaffle(r.Context(), req.Title, req.WinnersCount, req.EndsAt)
	if err != nil {
		respondServiceError(w, r, OpCreateRaffle, err)
		return
	}

	logger.FromContext(r.Context()).Info("Raffle created", "raffle_id", rf.ID, "winners_count", rf.WinnersCount)
	respondJSON(w, http.StatusCreated, rf)
}

// HandleListParticipants lists every entry of a raffle (admin)
// @Summary List raffle participants
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {array} domain.RaffleParticipant
// @Router /api/v1/admin/raffles/{id}/participants [get]
func (h *RaffleHandler) HandleListParticipants(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRaffleID(w, r)
	if !ok {
		return
	}

	participants, err := h.service.ListParticipants(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpListParticipants, err)
		return
	}
	respondJSON(w, http.StatusOK, participants)
}

// HandleDrawRaffle draws the winners of an active raffle (admin)
// @Summary Draw raffle winners
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {object} domain.DrawResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/raffles/{id}/draw [post]
func (h *RaffleHandler) HandleDrawRaffle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRaffleID(w, r)
	if !ok {
		return
	}

	result, err := h.service.DrawWinners(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpDrawRaffle, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
