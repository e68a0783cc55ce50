package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetBalance returns the user's Spirit XP. Unknown users have a zero balance.
func (r *LedgerRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, `SELECT spirit_xp FROM users WHERE user_id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return balance, nil
}

// addSpiritXP upserts the user's balance and appends the ledger row in q's transaction
func addSpiritXP(ctx context.Context, q querier, userID string, amount int64, reason, ref string) (int64, error) {
	var balance int64
	err := q.QueryRow(ctx, `
		INSERT INTO users (user_id, spirit_xp)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET spirit_xp = users.spirit_xp + EXCLUDED.spirit_xp,
		    updated_at = NOW()
		RETURNING spirit_xp`,
		userID, amount,
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToAddSpiritXP, err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO xp_ledger (user_id, amount, reason, ref, balance_after)
		VALUES ($1, $2, $3, $4, $5)`,
		userID, amount, reason, ref, balance,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertLedgerRow, err)
	}

	return balance, nil
}
