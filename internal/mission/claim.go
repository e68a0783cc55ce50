package mission

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/repository"
	"github.com/journey-app/journey/internal/resetwindow"
)

// ClaimMission grants a mission reward once per reset window.
// The reset key comes from the server clock and progress is recomputed here;
// the claim row and the reward grant commit together or not at all.
func (s *service) ClaimMission(ctx context.Context, userID, missionID string) (outcome *domain.ClaimOutcome, err error) {
	ctx, span := tracer.Start(ctx, "mission.ClaimMission")
	span.SetAttributes(attribute.String("mission.id", missionID))
	defer span.End()

	unlock, ok := s.locks.TryLock(trackerKey(userID, missionID))
	if !ok {
		metrics.MissionClaimsTotal.WithLabelValues(metrics.OutcomePending).Inc()
		return nil, domain.ErrClaimPending
	}
	defer unlock()

	s.tracker.Set(userID, missionID, domain.PendingClaim())
	defer func() {
		if err != nil {
			s.tracker.Set(userID, missionID, domain.FailedClaim(failureReason(err)))
			metrics.MissionClaimsTotal.WithLabelValues(claimOutcome(err)).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.FromContext(ctx).Info(LogMsgClaimFailed, "user_id", userID, "mission_id", missionID, "error", err)
		}
	}()

	m, err := s.findMission(ctx, missionID)
	if err != nil {
		return nil, err
	}

	now := s.calc.Now()
	resetKey := resetwindow.Key(m.Type, now)
	span.SetAttributes(attribute.String("mission.reset_key", resetKey))

	claimed, err := s.claimedSet(ctx, userID, []domain.Mission{*m}, map[domain.MissionType]string{m.Type: resetKey})
	if err != nil {
		return nil, err
	}
	if claimed[m.ID] {
		return nil, domain.ErrAlreadyClaimed
	}

	result := s.aggregator.Aggregate(ctx, userID, []domain.Mission{*m}, nil, now)[m.ID]
	if result.Degraded || result.Progress < m.TargetCount {
		return nil, fmt.Errorf("%w: %d/%d", domain.ErrMissionIncomplete, result.Progress, m.TargetCount)
	}

	claim := &domain.MissionClaim{
		UserID:    userID,
		MissionID: m.ID,
		ResetKey:  resetKey,
		RewardXP:  m.RewardXP,
		ClaimedAt: now.UTC(),
	}

	balance, err := s.commitClaim(ctx, claim)
	if err != nil {
		return nil, err
	}

	committed := domain.CommittedClaim()
	s.tracker.Set(userID, missionID, committed)
	metrics.MissionClaimsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.FromContext(ctx).Info(LogMsgMissionClaimed, "user_id", userID, "mission_id", m.ID, "reset_key", resetKey, "reward_xp", m.RewardXP)

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
	s.publish(ctx, event.NewMissionClaimedEvent(claim))

	return &domain.ClaimOutcome{
		MissionID: m.ID,
		ResetKey:  resetKey,
		RewardXP:  m.RewardXP,
		Balance:   balance,
		State:     committed,
	}, nil
}

func (s *service) commitClaim(ctx context.Context, claim *domain.MissionClaim) (int64, error) {
	tx, err := s.repo.BeginClaimTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertClaim(ctx, claim); err != nil {
		if errors.Is(err, domain.ErrAlreadyClaimed) {
			return 0, err
		}
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToInsertClaim, err)
	}

	ref := claim.MissionID + ":" + claim.ResetKey
	balance, err := s.ledger.Grant(ctx, tx, claim.UserID, int64(claim.RewardXP), LedgerReasonMissionClaim, ref)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGrantReward, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	return balance, nil
}

func claimOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrMissionIncomplete):
		return metrics.OutcomeIncomplete
	case errors.Is(err, domain.ErrMissionNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
