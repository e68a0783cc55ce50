package raffle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/journey-app/journey/internal/concurrency"
	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/repository"
)

// Service defines the interface for raffle operations
type Service interface {
	CreateRaffle(ctx context.Context, title string, winnersCount int, endsAt *time.Time) (*domain.Raffle, error)
	EnterRaffle(ctx context.Context, raffleID uuid.UUID, userID string, weight int, email string) (*domain.RaffleParticipant, error)
	GetRaffle(ctx context.Context, id uuid.UUID) (*domain.Raffle, error)
	ListRaffles(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error)
	ListParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.RaffleParticipant, error)
	DrawWinners(ctx context.Context, raffleID uuid.UUID) (*domain.DrawResult, error)
	// DrawDueRaffles draws every active raffle whose end time has passed and returns how many were drawn
	DrawDueRaffles(ctx context.Context) (int, error)
}

// Auditor stores a durable record of a completed draw
type Auditor interface {
	RecordDraw(ctx context.Context, raffle *domain.Raffle, participants []domain.RaffleParticipant, result *domain.DrawResult) error
}

type service struct {
	repo      repository.Raffle
	publisher event.Publisher
	auditor   Auditor
	locks     *concurrency.LockManager
	newSource func() (Source, error)
	now       func() time.Time
}

// NewService creates a new raffle service. auditor may be nil.
func NewService(repo repository.Raffle, publisher event.Publisher, auditor Auditor) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		auditor:   auditor,
		locks:     concurrency.NewLockManager(),
		newSource: NewSource,
		now:       time.Now,
	}
}

func (s *service) CreateRaffle(ctx context.Context, title string, winnersCount int, endsAt *time.Time) (*domain.Raffle, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if winnersCount < 1 {
		return nil, domain.ErrInvalidWinnersCount
	}

	raffle := &domain.Raffle{
		ID:           uuid.New(),
		Title:        title,
		WinnersCount: winnersCount,
		Status:       domain.RaffleStatusActive,
		WinnerIDs:    []string{},
		EndsAt:       endsAt,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.CreateRaffle(ctx, raffle); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateRaffle, err)
	}

	logger.FromContext(ctx).Info(LogMsgRaffleCreated, "raffle_id", raffle.ID, "winners_count", winnersCount)
	return raffle, nil
}

func (s *service) EnterRaffle(ctx context.Context, raffleID uuid.UUID, userID string, weight int, email string) (*domain.RaffleParticipant, error) {
	if userID == "" || weight < 1 {
		return nil, domain.ErrInvalidInput
	}

	unlock := s.locks.Lock(LockKeyPrefix + raffleID.String())
	defer unlock()

	raffle, err := s.GetRaffle(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if raffle.Status != domain.RaffleStatusActive || (raffle.EndsAt != nil && !now.Before(*raffle.EndsAt)) {
		return nil, domain.ErrRaffleNotActive
	}

	participant := &domain.RaffleParticipant{
		RaffleID:  raffleID,
		UserID:    userID,
		Weight:    weight,
		Email:     email,
		EnteredAt: now,
	}

	if err := s.repo.AddParticipant(ctx, participant); err != nil {
		if errors.Is(err, domain.ErrAlreadyEntered) || errors.Is(err, domain.ErrRaffleNotActive) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAddParticipant, err)
	}

	metrics.RaffleEntriesTotal.Inc()
	logger.FromContext(ctx).Info(LogMsgRaffleEntered, "raffle_id", raffleID, "user_id", userID, "weight", weight)
	s.publish(ctx, event.NewRaffleEnteredEvent(participant))

	return participant, nil
}

func (s *service) GetRaffle(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	raffle, err := s.repo.GetRaffle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRaffle, err)
	}
	if raffle == nil {
		return nil, domain.ErrRaffleNotFound
	}
	return raffle, nil
}

func (s *service) ListRaffles(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error) {
	raffles, err := s.repo.ListRaffles(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRaffles, err)
	}
	return raffles, nil
}

func (s *service) ListParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.RaffleParticipant, error) {
	if _, err := s.GetRaffle(ctx, raffleID); err != nil {
		return nil, err
	}

	participants, err := s.repo.GetParticipants(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetParticipants, err)
	}
	return participants, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		logger.FromContext(ctx).Warn(LogMsgPublisherNotWired, "event_type", evt.Type)
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

var tracer = otel.Tracer(TracerName)
