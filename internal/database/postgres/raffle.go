package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/repository"
)

const raffleColumns = `raffle_id, title, winners_count, status, winner_ids, ends_at, created_at, drawn_at`

// RaffleRepository implements repository.Raffle for PostgreSQL
type RaffleRepository struct {
	db *pgxpool.Pool
}

// NewRaffleRepository creates a new RaffleRepository
func NewRaffleRepository(db *pgxpool.Pool) *RaffleRepository {
	return &RaffleRepository{db: db}
}

// raffleTx implements repository.RaffleTx
type raffleTx struct {
	tx pgx.Tx
}

// CreateRaffle inserts a new raffle
func (r *RaffleRepository) CreateRaffle(ctx context.Context, raffle *domain.Raffle) error {
	winners := raffle.WinnerIDs
	if winners == nil {
		winners = []string{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO raffles (raffle_id, title, winners_count, status, winner_ids, ends_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		raffle.ID, raffle.Title, raffle.WinnersCount, string(raffle.Status), winners, raffle.EndsAt, raffle.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateRaffle, err)
	}
	return nil
}

// GetRaffle returns the raffle or nil when it does not exist
func (r *RaffleRepository) GetRaffle(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	row := r.db.QueryRow(ctx, `SELECT `+raffleColumns+` FROM raffles WHERE raffle_id = $1`, id)
	raffle, err := scanRaffle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRaffle, err)
	}
	return raffle, nil
}

// ListRaffles lists raffles newest first, optionally filtered by status
func (r *RaffleRepository) ListRaffles(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+raffleColumns+`
		FROM raffles
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC`,
		string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaffles, err)
	}
	return collectRaffles(rows)
}

// ListDueRaffles returns active raffles whose end time has passed
func (r *RaffleRepository) ListDueRaffles(ctx context.Context, now time.Time) ([]domain.Raffle, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+raffleColumns+`
		FROM raffles
		WHERE status = 'active' AND ends_at IS NOT NULL AND ends_at <= $1
		ORDER BY ends_at`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaffles, err)
	}
	return collectRaffles(rows)
}

// AddParticipant records an entry while the raffle is still active.
// A second entry by the same user is rejected by the primary key.
func (r *RaffleRepository) AddParticipant(ctx context.Context, p *domain.RaffleParticipant) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO raffle_participants (raffle_id, user_id, weight, email, created_at)
		SELECT $1::uuid, $2::text, $3::integer, $4::text, $5::timestamptz
		WHERE EXISTS (
			SELECT 1 FROM raffles WHERE raffle_id = $1::uuid AND status = 'active' FOR SHARE
		)`,
		p.RaffleID, p.UserID, p.Weight, p.Email, p.EnteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyEntered
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddParticipant, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRaffleNotActive
	}
	return nil
}

// GetParticipants returns entries in entry order
func (r *RaffleRepository) GetParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.RaffleParticipant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT raffle_id, user_id, weight, email, created_at
		FROM raffle_participants
		WHERE raffle_id = $1
		ORDER BY created_at, user_id`,
		raffleID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipants, err)
	}
	defer rows.Close()

	participants := make([]domain.RaffleParticipant, 0)
	for rows.Next() {
		var p domain.RaffleParticipant
		if err := rows.Scan(&p.RaffleID, &p.UserID, &p.Weight, &p.Email, &p.EnteredAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanParticipant, err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipants, err)
	}
	return participants, nil
}

// BeginRaffleTx starts a draw transaction
func (r *RaffleRepository) BeginRaffleTx(ctx context.Context) (repository.RaffleTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &raffleTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *raffleTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *raffleTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// CompleteDrawIfActive performs a compare-and-swap from active to drawn.
// Returns the number of rows affected (0 if the raffle was no longer active).
func (t *raffleTx) CompleteDrawIfActive(ctx context.Context, id uuid.UUID, winnerIDs []string, drawnAt time.Time) (int64, error) {
	if winnerIDs == nil {
		winnerIDs = []string{}
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE raffles
		SET status = 'drawn', winner_ids = $2, drawn_at = $3
		WHERE raffle_id = $1 AND status = 'active'`,
		id, winnerIDs, drawnAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCompleteDraw, err)
	}
	return tag.RowsAffected(), nil
}

func scanRaffle(row pgx.Row) (*domain.Raffle, error) {
	var raffle domain.Raffle
	var status string
	if err := row.Scan(
		&raffle.ID, &raffle.Title, &raffle.WinnersCount, &status, &raffle.WinnerIDs,
		&raffle.EndsAt, &raffle.CreatedAt, &raffle.DrawnAt,
	); err != nil {
		return nil, err
	}
	raffle.Status = domain.RaffleStatus(status)
	if raffle.WinnerIDs == nil {
		raffle.WinnerIDs = []string{}
	}
	return &raffle, nil
}

func collectRaffles(rows pgx.Rows) ([]domain.Raffle, error) {
	defer rows.Close()

	raffles := make([]domain.Raffle, 0)
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRaffle, err)
		}
		raffles = append(raffles, *raffle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaffles, err)
	}
	return raffles, nil
}
