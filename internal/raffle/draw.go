package raffle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/repository"
)

// DrawWinners selects and persists the winners of an active raffle.
// A raffle transitions to drawn exactly once; losing callers get ErrRaffleAlreadyDrawn.
func (s *service) DrawWinners(ctx context.Context, raffleID uuid.UUID) (result *domain.DrawResult, err error) {
	ctx, span := tracer.Start(ctx, "raffle.DrawWinners")
	span.SetAttributes(attribute.String("raffle.id", raffleID.String()))
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = drawOutcome(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.RaffleDrawsTotal.WithLabelValues(outcome).Inc()
		metrics.RaffleDrawDuration.Observe(time.Since(start).Seconds())
		span.End()
	}()

	log := logger.FromContext(ctx)
	log.Info(LogMsgDrawWinnersCalled, "raffle_id", raffleID)

	unlock := s.locks.Lock(LockKeyPrefix + raffleID.String())
	defer unlock()

	raffle, err := s.GetRaffle(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.Status != domain.RaffleStatusActive {
		return nil, domain.ErrRaffleAlreadyDrawn
	}

	participants, err := s.repo.GetParticipants(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetParticipants, err)
	}
	if len(participants) == 0 {
		log.Info(LogMsgDrawSkippedNoEntry, "raffle_id", raffleID)
		return nil, domain.ErrNoParticipants
	}

	candidates := make([]Candidate, len(participants))
	for i, p := range participants {
		candidates[i] = Candidate{ID: p.UserID, Weight: p.Weight}
	}

	src, err := s.newSource()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSeedSource, err)
	}
	winners := SelectWinners(candidates, raffle.WinnersCount, src)

	drawnAt := s.now().UTC()
	if err := s.persistDraw(ctx, raffleID, winners, drawnAt); err != nil {
		if errors.Is(err, domain.ErrRaffleAlreadyDrawn) {
			log.Warn(LogMsgDrawLostRace, "raffle_id", raffleID)
		}
		return nil, err
	}

	result = &domain.DrawResult{
		RaffleID:         raffleID,
		WinnerIDs:        winners,
		ParticipantCount: len(participants),
		TotalWeight:      TotalWeight(candidates),
		DrawnAt:          drawnAt,
	}
	raffle.Status = domain.RaffleStatusDrawn
	raffle.WinnerIDs = winners
	raffle.DrawnAt = &drawnAt

	span.SetAttributes(
		attribute.Int("raffle.participants", result.ParticipantCount),
		attribute.Int("raffle.winners", len(winners)),
	)
	log.Info(LogMsgRaffleDrawn, "raffle_id", raffleID, "winners", len(winners), "participants", len(participants))

	if s.auditor != nil {
		if err := s.auditor.RecordDraw(ctx, raffle, participants, result); err != nil {
			log.Error(LogMsgAuditFailed, "raffle_id", raffleID, "error", err)
		}
	}
	s.publish(ctx, event.NewRaffleDrawnEvent(raffle, result))

	return result, nil
}

func (s *service) persistDraw(ctx context.Context, raffleID uuid.UUID, winners []string, drawnAt time.Time) error {
	tx, err := s.repo.BeginRaffleTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	rows, err := tx.CompleteDrawIfActive(ctx, raffleID, winners, drawnAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCompleteDraw, err)
	}
	if rows == 0 {
		return domain.ErrRaffleAlreadyDrawn
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	return nil
}

func (s *service) DrawDueRaffles(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.repo.ListDueRaffles(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToListRaffles, err)
	}

	drawn := 0
	var errs []error
	for _, r := range due {
		_, err := s.DrawWinners(ctx, r.ID)
		switch {
		case err == nil:
			drawn++
		case errors.Is(err, domain.ErrNoParticipants), errors.Is(err, domain.ErrRaffleAlreadyDrawn):
			// Stays active until someone enters, or another instance got there first
		default:
			log.Error(LogMsgAutoDrawFailed, "raffle_id", r.ID, "error", err)
			errs = append(errs, err)
		}
	}

	log.Info(LogMsgAutoDrawCompleted, "due", len(due), "drawn", drawn)
	return drawn, errors.Join(errs...)
}

func drawOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoParticipants):
		return metrics.OutcomeNoParticipants
	case errors.Is(err, domain.ErrRaffleAlreadyDrawn):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrRaffleNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
