package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/middleware"
	"github.com/journey-app/journey/internal/raffle"
)

const testSecret = "router-test-secret-with-enough-bytes"

type stubPool struct{}

func (stubPool) Ping(ctx context.Context) error { return nil }
func (stubPool) Close()                         {}

type mockMissionService struct {
	mock.Mock
}

func (m *mockMissionService) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Mission), args.Error(1)
}

func (m *mockMissionService) GetProgress(ctx context.Context, userID string) ([]domain.MissionProgress, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MissionProgress), args.Error(1)
}

func (m *mockMissionService) ClaimMission(ctx context.Context, userID, missionID string) (*domain.ClaimOutcome, error) {
	args := m.Called(ctx, userID, missionID)
	return args.Get(0).(*domain.ClaimOutcome), args.Error(1)
}

func (m *mockMissionService) GetClaimState(ctx context.Context, userID, missionID string) domain.ClaimState {
	return m.Called(ctx, userID, missionID).Get(0).(domain.ClaimState)
}

type mockRaffleService struct {
	mock.Mock
	raffle.Service
}

func (m *mockRaffleService) DrawWinners(ctx context.Context, raffleID uuid.UUID) (*domain.DrawResult, error) {
	args := m.Called(ctx, raffleID)
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

func newTestRouter(t *testing.T, missions *mockMissionService, raffles *mockRaffleService) (http.Handler, *middleware.Authenticator) {
	t.Helper()
	auth := middleware.NewAuthenticator(testSecret)
	r := NewRouter(Options{MaxRequestBytes: 1024}, stubPool{}, auth, Services{
		Missions: missions,
		Raffles:  raffles,
	})
	return r, auth
}

func bearer(t *testing.T, auth *middleware.Authenticator, userID, role string) string {
	t.Helper()
	token, err := auth.IssueToken(userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, _ := newTestRouter(t, new(mockMissionService), new(mockRaffleService))

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	r, _ := newTestRouter(t, new(mockMissionService), new(mockRaffleService))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/missions", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuthenticatedMissionRoutes(t *testing.T) {
	missions := new(mockMissionService)
	missions.On("ListMissions", mock.Anything).Return([]domain.Mission{{ID: "daily_chat"}}, nil)
	missions.On("GetClaimState", mock.Anything, "user-7", "daily_chat").Return(domain.PendingClaim())

	r, auth := newTestRouter(t, missions, new(mockRaffleService))
	token := bearer(t, auth, "user-7", middleware.RoleUser)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/missions", nil)
	req.Header.Set(HeaderAuthorization, token)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "daily_chat")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/missions/daily_chat/claim", nil)
	req.Header.Set(HeaderAuthorization, token)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"phase":"pending"`)

	missions.AssertExpectations(t)
}

func TestRouter_AdminRoutes(t *testing.T) {
	id := uuid.New()
	raffles := new(mockRaffleService)
	raffles.On("DrawWinners", mock.Anything, id).Return(&domain.DrawResult{RaffleID: id, WinnerIDs: []string{"w1"}}, nil)

	r, auth := newTestRouter(t, new(mockMissionService), raffles)
	path := "/api/v1/admin/raffles/" + id.String() + "/draw"

	t.Run("regular user is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(HeaderAuthorization, bearer(t, auth, "user-1", middleware.RoleUser))
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin draws", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(HeaderAuthorization, bearer(t, auth, "admin-1", middleware.RoleAdmin))
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"winner_ids":["w1"]`)
	})

	raffles.AssertExpectations(t)
}

func TestFailedAuthMiddleware_RecordsRejections(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	auth := middleware.NewAuthenticator(testSecret)
	h := FailedAuthMiddleware(nil, detector)(auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		req.Header.Set(HeaderAuthorization, "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	assert.Equal(t, 3, detector.FailedAuthCount("10.0.0.9"))
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set(HeaderForwardedFor, "203.0.113.5, 198.51.100.7")

	assert.Equal(t, "10.0.0.1", extractIP(req, nil), "untrusted proxy headers are ignored")
	assert.Equal(t, "198.51.100.7", extractIP(req, []string{"10.0.0.1"}))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body is larger than eight bytes"))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
