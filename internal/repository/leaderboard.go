package repository

import (
	"context"

	"github.com/journey-app/journey/internal/domain"
)

// Leaderboard defines the ranking query backing leaderboard snapshots
type Leaderboard interface {
	// GetTopUsers returns users ordered by Spirit XP descending. Rank is left unset.
	GetTopUsers(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
