package domain

import (
	"time"

	"github.com/google/uuid"
)

// RaffleStatus represents the lifecycle state of a raffle
type RaffleStatus string

const (
	RaffleStatusActive RaffleStatus = "active"
	RaffleStatusDrawn  RaffleStatus = "drawn"
)

// Raffle is a giveaway drawn once by weighted selection
type Raffle struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	WinnersCount int          `json:"winners_count"`
	Status       RaffleStatus `json:"status"`
	WinnerIDs    []string     `json:"winner_ids"`
	EndsAt       *time.Time   `json:"ends_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	DrawnAt      *time.Time   `json:"drawn_at,omitempty"`
}

// RaffleParticipant is an entry in a raffle. Weight is the ticket count.
type RaffleParticipant struct {
	RaffleID  uuid.UUID `json:"raffle_id"`
	UserID    string    `json:"user_id"`
	Weight    int       `json:"weight"`
	Email     string    `json:"email,omitempty"`
	EnteredAt time.Time `json:"entered_at"`
}

// DrawResult is the persisted outcome of a raffle draw
type DrawResult struct {
	RaffleID         uuid.UUID `json:"raffle_id"`
	WinnerIDs        []string  `json:"winner_ids"`
	ParticipantCount int       `json:"participant_count"`
	TotalWeight      int64     `json:"total_weight"`
	DrawnAt          time.Time `json:"drawn_at"`
}
