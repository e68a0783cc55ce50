package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/journey-app/journey/internal/domain"
)

// LeaderboardRepository implements repository.Leaderboard for PostgreSQL
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// GetTopUsers returns users with the most Spirit XP; ties are ordered by user id
func (r *LeaderboardRepository) GetTopUsers(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT user_id, username, spirit_xp
		FROM users
		WHERE spirit_xp > 0
		ORDER BY spirit_xp DESC, user_id
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTopUsers, err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.SpiritXP); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanLeaderboard, err)
		}
		e.Level = domain.LevelForXP(e.SpiritXP)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTopUsers, err)
	}
	return entries, nil
}
