package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/journey-app/journey/internal/domain"
)

// Raffle defines the interface for raffle persistence
type Raffle interface {
	CreateRaffle(ctx context.Context, raffle *domain.Raffle) error
	GetRaffle(ctx context.Context, id uuid.UUID) (*domain.Raffle, error)
	// ListRaffles filters by status; an empty status lists all raffles
	ListRaffles(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error)
	// ListDueRaffles returns active raffles whose ends_at is at or before now
	ListDueRaffles(ctx context.Context, now time.Time) ([]domain.Raffle, error)

	// AddParticipant returns domain.ErrAlreadyEntered when the user already has an entry
	// and domain.ErrRaffleNotActive when the raffle left the active state first
	AddParticipant(ctx context.Context, participant *domain.RaffleParticipant) error
	GetParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.RaffleParticipant, error)

	BeginRaffleTx(ctx context.Context) (RaffleTx, error)
}

// RaffleTx persists a draw atomically
type RaffleTx interface {
	Tx

	// CompleteDrawIfActive moves the raffle to drawn only if it is still active.
	// Returns the number of rows updated; 0 means another draw already won.
	CompleteDrawIfActive(ctx context.Context, id uuid.UUID, winnerIDs []string, drawnAt time.Time) (int64, error)
}
