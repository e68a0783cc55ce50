package mission

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/repository"
)

// fakeActivity is an in-memory repository.Activity
type fakeActivity struct {
	mu       sync.Mutex
	counts   map[domain.ActivitySource]int
	failing  map[domain.ActivitySource]error
	user     *domain.UserSnapshot
	userErr  error
	sinceLog map[domain.ActivitySource][]*time.Time
}

func newFakeActivity() *fakeActivity {
	return &fakeActivity{
		counts:   make(map[domain.ActivitySource]int),
		failing:  make(map[domain.ActivitySource]error),
		sinceLog: make(map[domain.ActivitySource][]*time.Time),
	}
}

func (f *fakeActivity) CountSince(ctx context.Context, source domain.ActivitySource, userID string, since *time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinceLog[source] = append(f.sinceLog[source], since)
	if err := f.failing[source]; err != nil {
		return 0, err
	}
	return f.counts[source], nil
}

func (f *fakeActivity) RecordActivity(ctx context.Context, userID string, source domain.ActivitySource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[source]++
	return nil
}

func (f *fakeActivity) GetUserSnapshot(ctx context.Context, userID string) (*domain.UserSnapshot, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user == nil {
		return &domain.UserSnapshot{UserID: userID, Level: 1}, nil
	}
	return f.user, nil
}

func (f *fakeActivity) reads(source domain.ActivitySource) []*time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sinceLog[source]
}

// MockMissionRepository
type MockMissionRepository struct {
	mock.Mock
}

func (m *MockMissionRepository) GetActiveMissions(ctx context.Context) ([]domain.Mission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mission), args.Error(1)
}

func (m *MockMissionRepository) GetClaims(ctx context.Context, userID string, resetKeys []string) ([]domain.MissionClaim, error) {
	args := m.Called(ctx, userID, resetKeys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissionClaim), args.Error(1)
}

func (m *MockMissionRepository) BeginClaimTx(ctx context.Context) (repository.MissionClaimTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MissionClaimTx), args.Error(1)
}

// MockClaimTx
type MockClaimTx struct {
	mock.Mock
}

func (m *MockClaimTx) InsertClaim(ctx context.Context, claim *domain.MissionClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockClaimTx) AddSpiritXP(ctx context.Context, userID string, amount int64, reason, ref string) (int64, error) {
	args := m.Called(ctx, userID, amount, reason, ref)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClaimTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Grant(ctx context.Context, tx repository.LedgerTx, userID string, amount int64, reason, ref string) (int64, error) {
	args := m.Called(ctx, tx, userID, amount, reason, ref)
	return args.Get(0).(int64), args.Error(1)
}

// recordingPublisher records published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.Event(nil), p.events...)
}

// countingInvalidator counts leaderboard invalidations
type countingInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (c *countingInvalidator) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
}

func (c *countingInvalidator) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
