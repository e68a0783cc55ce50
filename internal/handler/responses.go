package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped user-facing error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Mission messages
	ErrMsgMissionNotFoundError   = "Mission not found"
	ErrMsgMissionIncompleteError = "Mission is not complete yet"
	ErrMsgAlreadyClaimedError    = "You already claimed this reward"
	ErrMsgClaimPendingError      = "A claim for this mission is already in progress"
	ErrMsgUnknownSourceError     = "Unknown activity source"

	// Raffle messages
	ErrMsgRaffleNotFoundError      = "Raffle not found"
	ErrMsgRaffleNotActiveError     = "Raffle is no longer accepting entries"
	ErrMsgRaffleAlreadyDrawnError  = "Raffle has already been drawn"
	ErrMsgAlreadyEnteredError      = "You have already entered this raffle"
	ErrMsgNoParticipantsError      = "Raffle has no participants"
	ErrMsgInvalidWinnersCountError = "Winners count must be at least 1"

	// Input messages
	ErrMsgInvalidInputError = "Invalid input"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// users can act upon. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, ErrMsgMissionNotFoundError
	case errors.Is(err, domain.ErrRaffleNotFound):
		return http.StatusNotFound, ErrMsgRaffleNotFoundError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrClaimPending):
		return http.StatusConflict, ErrMsgClaimPendingError
	case errors.Is(err, domain.ErrAlreadyEntered):
		return http.StatusConflict, ErrMsgAlreadyEnteredError
	case errors.Is(err, domain.ErrRaffleAlreadyDrawn):
		return http.StatusConflict, ErrMsgRaffleAlreadyDrawnError
	case errors.Is(err, domain.ErrMissionIncomplete):
		return http.StatusBadRequest, ErrMsgMissionIncompleteError
	case errors.Is(err, domain.ErrRaffleNotActive):
		return http.StatusBadRequest, ErrMsgRaffleNotActiveError
	case errors.Is(err, domain.ErrNoParticipants):
		return http.StatusBadRequest, ErrMsgNoParticipantsError
	case errors.Is(err, domain.ErrInvalidWinnersCount):
		return http.StatusBadRequest, ErrMsgInvalidWinnersCountError
	case errors.Is(err, domain.ErrUnknownSource):
		return http.StatusBadRequest, ErrMsgUnknownSourceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
