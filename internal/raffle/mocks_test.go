package raffle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateRaffle(ctx context.Context, raffle *domain.Raffle) error {
	args := m.Called(ctx, raffle)
	return args.Error(0)
}

func (m *MockRepository) GetRaffle(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRepository) ListRaffles(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Raffle), args.Error(1)
}

func (m *MockRepository) ListDueRaffles(ctx context.Context, now time.Time) ([]domain.Raffle, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Raffle), args.Error(1)
}

func (m *MockRepository) AddParticipant(ctx context.Context, participant *domain.RaffleParticipant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockRepository) GetParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.RaffleParticipant, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RaffleParticipant), args.Error(1)
}

func (m *MockRepository) BeginRaffleTx(ctx context.Context) (repository.RaffleTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.RaffleTx), args.Error(1)
}

// MockRaffleTx
type MockRaffleTx struct {
	mock.Mock
}

func (m *MockRaffleTx) CompleteDrawIfActive(ctx context.Context, id uuid.UUID, winnerIDs []string, drawnAt time.Time) (int64, error) {
	args := m.Called(ctx, id, winnerIDs, drawnAt)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockRaffleTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRaffleTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPublisher records published events
type MockPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, evt)
}

func (m *MockPublisher) Events() []event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]event.Event(nil), m.events...)
}

// MockAuditor
type MockAuditor struct {
	mock.Mock
}

func (m *MockAuditor) RecordDraw(ctx context.Context, raffle *domain.Raffle, participants []domain.RaffleParticipant, result *domain.DrawResult) error {
	args := m.Called(ctx, raffle, participants, result)
	return args.Error(0)
}
