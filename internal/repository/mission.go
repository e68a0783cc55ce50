package repository

import (
	"context"

	"github.com/journey-app/journey/internal/domain"
)

// Mission defines the interface for mission catalog and claim persistence
type Mission interface {
	GetActiveMissions(ctx context.Context) ([]domain.Mission, error)

	// GetClaims returns the user's claims whose reset key is one of resetKeys
	GetClaims(ctx context.Context, userID string, resetKeys []string) ([]domain.MissionClaim, error)

	BeginClaimTx(ctx context.Context) (MissionClaimTx, error)
}

// MissionClaimTx wraps the claim insert and the reward grant in one transaction
type MissionClaimTx interface {
	Tx
	LedgerTx

	// InsertClaim returns domain.ErrAlreadyClaimed when the (user, mission, reset key) row exists
	InsertClaim(ctx context.Context, claim *domain.MissionClaim) error
}
