package mission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/journey-app/journey/internal/concurrency"
	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/repository"
	"github.com/journey-app/journey/internal/resetwindow"
)

// Service defines the interface for mission operations
type Service interface {
	ListMissions(ctx context.Context) ([]domain.Mission, error)
	GetProgress(ctx context.Context, userID string) ([]domain.MissionProgress, error)
	ClaimMission(ctx context.Context, userID, missionID string) (*domain.ClaimOutcome, error)
	GetClaimState(ctx context.Context, userID, missionID string) domain.ClaimState
}

// Ledger grants rewards inside the caller's transaction
type Ledger interface {
	Grant(ctx context.Context, tx repository.LedgerTx, userID string, amount int64, reason, ref string) (int64, error)
}

// Invalidator is notified when balances change (the leaderboard store)
type Invalidator interface {
	Invalidate()
}

type service struct {
	repo        repository.Mission
	aggregator  *Aggregator
	ledger      Ledger
	calc        *resetwindow.Calculator
	publisher   event.Publisher
	invalidator Invalidator
	cache       *catalogCache
	tracker     *ClaimTracker
	locks       *concurrency.LockManager
}

// NewService creates a new mission service. publisher and invalidator may be nil.
func NewService(repo repository.Mission, aggregator *Aggregator, ledger Ledger, calc *resetwindow.Calculator, publisher event.Publisher, invalidator Invalidator, catalogTTL time.Duration) Service {
	if catalogTTL <= 0 {
		catalogTTL = DefaultCatalogTTL
	}
	return &service{
		repo:        repo,
		aggregator:  aggregator,
		ledger:      ledger,
		calc:        calc,
		publisher:   publisher,
		invalidator: invalidator,
		cache:       newCatalogCache(catalogTTL),
		tracker:     NewClaimTracker(ClaimTrackerSize, ClaimStateTTL),
		locks:       concurrency.NewLockManager(),
	}
}

var tracer = otel.Tracer(TracerName)

func (s *service) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	if missions, ok := s.cache.Get(); ok {
		return missions, nil
	}

	missions, err := s.repo.GetActiveMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadCatalog, err)
	}

	s.cache.Set(missions)
	return missions, nil
}

func (s *service) GetProgress(ctx context.Context, userID string) ([]domain.MissionProgress, error) {
	ctx, span := tracer.Start(ctx, "mission.GetProgress")
	defer span.End()

	missions, err := s.ListMissions(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	now := s.calc.Now()
	keys := make(map[domain.MissionType]string)
	for _, m := range missions {
		if _, ok := keys[m.Type]; !ok {
			keys[m.Type] = resetwindow.Key(m.Type, now)
		}
	}

	claimed, err := s.claimedSet(ctx, userID, missions, keys)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	results := s.aggregator.Aggregate(ctx, userID, missions, claimed, now)

	progress := make([]domain.MissionProgress, 0, len(missions))
	for _, m := range missions {
		r := results[m.ID]
		progress = append(progress, domain.MissionProgress{
			MissionID:   m.ID,
			Type:        m.Type,
			ActionKey:   m.ActionKey,
			Title:       m.Title,
			Icon:        m.Icon,
			Progress:    r.Progress,
			TargetCount: m.TargetCount,
			RewardXP:    m.RewardXP,
			ResetKey:    keys[m.Type],
			Completed:   r.Progress >= m.TargetCount,
			Claimed:     claimed[m.ID],
			Degraded:    r.Degraded,
		})
	}

	span.SetAttributes(attribute.Int("mission.count", len(progress)))
	return progress, nil
}

// claimedSet returns the ids of missions claimed for their current reset key
func (s *service) claimedSet(ctx context.Context, userID string, missions []domain.Mission, keys map[domain.MissionType]string) (map[string]bool, error) {
	resetKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		resetKeys = append(resetKeys, k)
	}

	claims, err := s.repo.GetClaims(ctx, userID, resetKeys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetClaims, err)
	}

	byMission := make(map[string]map[string]bool, len(claims))
	for _, c := range claims {
		if byMission[c.MissionID] == nil {
			byMission[c.MissionID] = make(map[string]bool)
		}
		byMission[c.MissionID][c.ResetKey] = true
	}

	claimed := make(map[string]bool)
	for _, m := range missions {
		if byMission[m.ID][keys[m.Type]] {
			claimed[m.ID] = true
		}
	}
	return claimed, nil
}

func (s *service) GetClaimState(ctx context.Context, userID, missionID string) domain.ClaimState {
	return s.tracker.State(userID, missionID)
}

func (s *service) findMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	missions, err := s.ListMissions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range missions {
		if missions[i].ID == missionID {
			return &missions[i], nil
		}
	}
	return nil, domain.ErrMissionNotFound
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		logger.FromContext(ctx).Warn(LogMsgPublisherNotWired, "event_type", evt.Type)
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

// failureReason keeps internal error detail out of pollable claim state
func failureReason(err error) string {
	for _, known := range []error{
		domain.ErrMissionNotFound,
		domain.ErrMissionIncomplete,
		domain.ErrAlreadyClaimed,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal error"
}
