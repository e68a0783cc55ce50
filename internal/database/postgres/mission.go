package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/repository"
)

// MissionRepository implements repository.Mission for PostgreSQL
type MissionRepository struct {
	db *pgxpool.Pool
}

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository(db *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{db: db}
}

// missionClaimTx implements repository.MissionClaimTx
type missionClaimTx struct {
	tx pgx.Tx
}

// GetActiveMissions returns the active catalog in display order
func (r *MissionRepository) GetActiveMissions(ctx context.Context) ([]domain.Mission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT mission_id, mission_type, action_key, target_count, threshold, reward_xp,
		       icon, title, description, active
		FROM missions
		WHERE active
		ORDER BY sort_order, mission_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMissions, err)
	}
	defer rows.Close()

	missions := make([]domain.Mission, 0)
	for rows.Next() {
		var m domain.Mission
		var missionType, actionKey string
		if err := rows.Scan(
			&m.ID, &missionType, &actionKey, &m.TargetCount, &m.Threshold, &m.RewardXP,
			&m.Icon, &m.Title, &m.Description, &m.Active,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanMission, err)
		}
		m.Type = domain.MissionType(missionType)
		m.ActionKey = domain.ActionKey(actionKey)
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMissions, err)
	}
	return missions, nil
}

// GetClaims returns the user's claims stamped with any of resetKeys
func (r *MissionRepository) GetClaims(ctx context.Context, userID string, resetKeys []string) ([]domain.MissionClaim, error) {
	if len(resetKeys) == 0 {
		return []domain.MissionClaim{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT user_id, mission_id, reset_key, reward_xp, claimed_at
		FROM mission_claims
		WHERE user_id = $1 AND reset_key = ANY($2)`,
		userID, resetKeys,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryClaims, err)
	}
	defer rows.Close()

	claims := make([]domain.MissionClaim, 0)
	for rows.Next() {
		var c domain.MissionClaim
		if err := rows.Scan(&c.UserID, &c.MissionID, &c.ResetKey, &c.RewardXP, &c.ClaimedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanClaim, err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryClaims, err)
	}
	return claims, nil
}

// BeginClaimTx starts the transaction that inserts a claim and grants its reward
func (r *MissionRepository) BeginClaimTx(ctx context.Context) (repository.MissionClaimTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &missionClaimTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *missionClaimTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *missionClaimTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// InsertClaim appends the claim; the primary key rejects a second claim for the same window
func (t *missionClaimTx) InsertClaim(ctx context.Context, claim *domain.MissionClaim) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO mission_claims (user_id, mission_id, reset_key, reward_xp, claimed_at)
		VALUES ($1, $2, $3, $4, $5)`,
		claim.UserID, claim.MissionID, claim.ResetKey, claim.RewardXP, claim.ClaimedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyClaimed
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertClaim, err)
	}
	return nil
}

// AddSpiritXP grants the reward inside the claim transaction
func (t *missionClaimTx) AddSpiritXP(ctx context.Context, userID string, amount int64, reason, ref string) (int64, error) {
	return addSpiritXP(ctx, t.tx, userID, amount, reason, ref)
}
