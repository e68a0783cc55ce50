package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/middleware"
	"github.com/journey-app/journey/internal/repository"
)

// MockMissionService mocks mission.Service
type MockMissionService struct {
	mock.Mock
}

func (m *MockMissionService) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mission), args.Error(1)
}

func (m *MockMissionService) GetProgress(ctx context.Context, userID string) ([]domain.MissionProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissionProgress), args.Error(1)
}

func (m *MockMissionService) ClaimMission(ctx context.Context, userID, missionID string) (*domain.ClaimOutcome, error) {
	args := m.Called(ctx, userID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimOutcome), args.Error(1)
}

func (m *MockMissionService) GetClaimState(ctx context.Context, userID, missionID string) domain.ClaimState {
	args := m.Called(ctx, userID, missionID)
	return args.Get(0).(domain.ClaimState)
}

// MockRaffleService mocks raffle.Service
type MockRaffleService struct {
	mock.Mock
}

func (m *MockRaffleService) CreateRaffle(ctx context.Context, title string, winnersCount int, endsAt *time.Time) (*domain.Raffle, error) {
	args := m.Called(ctx, title, winnersCount, endsAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRaffleService) EnterRaffle(ctx context.Context, raffleID uuid.UUID, userID string, weight int, email string) (*domain.RaffleParticipant, error) {
	args := m.Called(ctx, raffleID, userID, weight, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RaffleParticipant), args.Error(1)
}

func (m *MockRaffleService) GetRaffle(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRaffleService) ListRaffles(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Raffle), args.Error(1)
}

func (m *MockRaffleService) ListParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.RaffleParticipant, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RaffleParticipant), args.Error(1)
}

func (m *MockRaffleService) DrawWinners(ctx context.Context, raffleID uuid.UUID) (*domain.DrawResult, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

func (m *MockRaffleService) DrawDueRaffles(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockActivityService mocks activity.Service
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, userID string, source domain.ActivitySource) error {
	args := m.Called(ctx, userID, source)
	return args.Error(0)
}

// MockEconomyService mocks economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Grant(ctx context.Context, tx repository.LedgerTx, userID string, amount int64, reason, ref string) (int64, error) {
	args := m.Called(ctx, tx, userID, amount, reason, ref)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) Balance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockLeaderboardRepo mocks repository.Leaderboard
type MockLeaderboardRepo struct {
	mock.Mock
}

func (m *MockLeaderboardRepo) GetTopUsers(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// newRequest builds a request for an authenticated caller with chi route params
func newRequest(method, target string, body interface{}, userID string, params map[string]string) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := req.Context()
	if userID != "" {
		ctx = middleware.WithUserID(ctx, userID)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
