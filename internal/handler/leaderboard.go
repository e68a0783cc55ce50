package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/economy"
	"github.com/journey-app/journey/internal/leaderboard"
)

// LeaderboardReader exposes the current ranked snapshot
type LeaderboardReader interface {
	Snapshot(ctx context.Context) (*leaderboard.Snapshot, error)
}

// LeaderboardHandler serves the ranked Spirit XP leaderboard and the caller's wallet
type LeaderboardHandler struct {
	store   LeaderboardReader
	economy economy.Service
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(store LeaderboardReader, economySvc economy.Service) *LeaderboardHandler {
	return &LeaderboardHandler{store: store, economy: economySvc}
}

// LeaderboardResponse is a page of the current snapshot
type LeaderboardResponse struct {
	Entries     []domain.LeaderboardEntry `json:"entries"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

// WalletResponse is the caller's Spirit XP balance
type WalletResponse struct {
	UserID   string `json:"user_id"`
	SpiritXP int64  `json:"spirit_xp"`
	Level    int    `json:"level"`
}

// HandleGetLeaderboard returns the top entries of the current snapshot
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Entries to return (1-100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", DefaultLeaderboardLimit, ErrMsgInvalidLimit)
	if !ok {
		return
	}
	if limit < 1 || limit > MaxLeaderboardLimit {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	snap, err := h.store.Snapshot(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetLeaderboard, err)
		return
	}

	respondJSON(w, http.StatusOK, LeaderboardResponse{
		Entries:     snap.Top(limit),
		GeneratedAt: snap.GeneratedAt,
	})
}

// HandleGetWallet returns the caller's Spirit XP balance and level
// @Summary Wallet balance
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WalletResponse
// @Router /api/v1/wallet [get]
func (h *LeaderboardHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	balance, err := h.economy.Balance(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, OpGetBalance, err)
		return
	}

	respondJSON(w, http.StatusOK, WalletResponse{
		UserID:   userID,
		SpiritXP: balance,
		Level:    domain.LevelForXP(balance),
	})
}
