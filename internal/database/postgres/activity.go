package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/journey-app/journey/internal/domain"
)

// sourceTables maps each activity source to its log table.
// Table names are never taken from input, only from this map.
var sourceTables = map[domain.ActivitySource]string{
	domain.SourceChatMessages: "chat_messages",
	domain.SourceForgeHistory: "forge_history",
	domain.SourceDevotionals:  "devotional_completions",
	domain.SourceMarketBuys:   "market_purchases",
	domain.SourceRaffleEntry:  "raffle_participants",
	domain.SourceCommunities:  "community_members",
}

// ActivityRepository implements repository.Activity for PostgreSQL
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// CountSince counts the user's rows in source; a nil since counts all time
func (r *ActivityRepository) CountSince(ctx context.Context, source domain.ActivitySource, userID string, since *time.Time) (int, error) {
	table, ok := sourceTables[source]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownSource, source)
	}

	query := `SELECT COUNT(*) FROM ` + table + ` WHERE user_id = $1`
	args := []any{userID}
	if since != nil {
		query += ` AND created_at >= $2`
		args = append(args, *since)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s %s: %w", ErrMsgFailedToCountActivity, source, err)
	}
	return count, nil
}

// RecordActivity appends one row to a recordable log
func (r *ActivityRepository) RecordActivity(ctx context.Context, userID string, source domain.ActivitySource) error {
	table, ok := sourceTables[source]
	if !ok || !domain.RecordableSources[source] {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSource, source)
	}

	if _, err := r.db.Exec(ctx, `INSERT INTO `+table+` (user_id) VALUES ($1)`, userID); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToRecordActivity, source, err)
	}
	return nil
}

// GetUserSnapshot reads the scalar attributes missions compare against.
// A user without a profile row yet is reported at level 1 with zero counts.
func (r *ActivityRepository) GetUserSnapshot(ctx context.Context, userID string) (*domain.UserSnapshot, error) {
	snapshot := &domain.UserSnapshot{UserID: userID}
	err := r.db.QueryRow(ctx, `
		SELECT spirit_xp, collected_verses, referral_count
		FROM users
		WHERE user_id = $1`,
		userID,
	).Scan(&snapshot.SpiritXP, &snapshot.CollectedVerses, &snapshot.ReferralCount)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserSnapshot, err)
	}
	snapshot.Level = domain.LevelForXP(snapshot.SpiritXP)
	return snapshot, nil
}
