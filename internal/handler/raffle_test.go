package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/journey-app/journey/internal/domain"
)

func TestHandleListRaffles(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		svc := new(MockRaffleService)
		svc.On("ListRaffles", mock.Anything, domain.RaffleStatusActive).Return([]domain.Raffle{
			{ID: uuid.New(), Title: "Spring giveaway", WinnersCount: 2, Status: domain.RaffleStatusActive},
		}, nil)

		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleListRaffles(w, newRequest(http.MethodGet, "/api/v1/raffles?status=active", nil, "user-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Spring giveaway")
		svc.AssertExpectations(t)
	})

	t.Run("no filter", func(t *testing.T) {
		svc := new(MockRaffleService)
		svc.On("ListRaffles", mock.Anything, domain.RaffleStatus("")).Return([]domain.Raffle{}, nil)

		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleListRaffles(w, newRequest(http.MethodGet, "/api/v1/raffles", nil, "user-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := new(MockRaffleService)

		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleListRaffles(w, newRequest(http.MethodGet, "/api/v1/raffles?status=cancelled", nil, "user-1", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidStatus)
		svc.AssertNotCalled(t, "ListRaffles", mock.Anything, mock.Anything)
	})
}

func TestHandleGetRaffle(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := new(MockRaffleService)
		svc.On("GetRaffle", mock.Anything, id).Return(&domain.Raffle{ID: id, Title: "T", Status: domain.RaffleStatusDrawn, WinnerIDs: []string{"a"}}, nil)

		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleGetRaffle(w, newRequest(http.MethodGet, "/", nil, "user-1", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"winner_ids":["a"]`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockRaffleService)
		svc.On("GetRaffle", mock.Anything, id).Return(nil, domain.ErrRaffleNotFound)

		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleGetRaffle(w, newRequest(http.MethodGet, "/", nil, "user-1", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRaffleNotFoundError)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(MockRaffleService)

		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleGetRaffle(w, newRequest(http.MethodGet, "/", nil, "user-1", map[string]string{"id": "not-a-uuid"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRaffleID)
	})
}

func TestHandleEnterRaffle(t *testing.T) {
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	tests := []struct {
		name           string
		body           interface{}
		userID         string
		setupMock      func(*MockRaffleService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			body:   EnterRaffleRequest{Weight: 3, Email: "me@example.com"},
			userID: "user-1",
			setupMock: func(m *MockRaffleService) {
				m.On("EnterRaffle", mock.Anything, id, "user-1", 3, "me@example.com").
					Return(&domain.RaffleParticipant{RaffleID: id, UserID: "user-1", Weight: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"weight":3`,
		},
		{
			name:           "Zero weight rejected at the edge",
			body:           EnterRaffleRequest{Weight: 0},
			userID:         "user-1",
			setupMock:      func(m *MockRaffleService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"weight":"Must be at least 1"`,
		},
		{
			name:           "Malformed JSON",
			body:           "{not json",
			userID:         "user-1",
			setupMock:      func(m *MockRaffleService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:   "Already entered",
			body:   EnterRaffleRequest{Weight: 1},
			userID: "user-1",
			setupMock: func(m *MockRaffleService) {
				m.On("EnterRaffle", mock.Anything, id, "user-1", 1, "").Return(nil, domain.ErrAlreadyEntered)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyEnteredError,
		},
		{
			name:   "Raffle closed",
			body:   EnterRaffleRequest{Weight: 1},
			userID: "user-1",
			setupMock: func(m *MockRaffleService) {
				m.On("EnterRaffle", mock.Anything, id, "user-1", 1, "").Return(nil, domain.ErrRaffleNotActive)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgRaffleNotActiveError,
		},
		{
			name:           "Anonymous caller",
			body:           EnterRaffleRequest{Weight: 1},
			userID:         "",
			setupMock:      func(m *MockRaffleService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockRaffleService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			NewRaffleHandler(svc).HandleEnterRaffle(w, newRequest(http.MethodPost, "/", tt.body, tt.userID, params))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleCreateRaffle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		endsAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := new(MockRaffleService)
		svc.On("CreateRaffle", mock.Anything, "Summer", 3, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil && ts.Equal(endsAt)
		})).Return(&domain.Raffle{ID: uuid.New(), Title: "Summer", WinnersCount: 3, Status: domain.RaffleStatusActive}, nil)

		body := CreateRaffleRequest{Title: "Summer", WinnersCount: 3, EndsAt: &endsAt}
		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleCreateRaffle(w, newRequest(http.MethodPost, "/", body, "admin-1", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"active"`)
		svc.AssertExpectations(t)
	})

	t.Run("Validation errors", func(t *testing.T) {
		svc := new(MockRaffleService)

		w := httptest.NewRecorder()
		NewRaffleHandler(svc).HandleCreateRaffle(w, newRequest(http.MethodPost, "/", `{"title":"","winners_count":0}`, "admin-1", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Contains(t, resp.Fields, "title")
		assert.Contains(t, resp.Fields, "winnerscount")
	})
}

func TestHandleListParticipants(t *testing.T) {
	id := uuid.New()
	svc := new(MockRaffleService)
	svc.On("ListParticipants", mock.Anything, id).Return([]domain.RaffleParticipant{
		{RaffleID: id, UserID: "a", Weight: 1},
		{RaffleID: id, UserID: "b", Weight: 4},
	}, nil)

	w := httptest.NewRecorder()
	NewRaffleHandler(svc).HandleListParticipants(w, newRequest(http.MethodGet, "/", nil, "admin-1", map[string]string{"id": id.String()}))

	require.Equal(t, http.StatusOK, w.Code)
	var got []domain.RaffleParticipant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestHandleDrawRaffle(t *testing.T) {
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	tests := []struct {
		name           string
		result         *domain.DrawResult
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"Success", &domain.DrawResult{RaffleID: id, WinnerIDs: []string{"b", "a"}, ParticipantCount: 2, TotalWeight: 5}, nil, http.StatusOK, `"winner_ids":["b","a"]`},
		{"No participants", nil, domain.ErrNoParticipants, http.StatusBadRequest, ErrMsgNoParticipantsError},
		{"Already drawn", nil, domain.ErrRaffleAlreadyDrawn, http.StatusConflict, ErrMsgRaffleAlreadyDrawnError},
		{"Not found", nil, domain.ErrRaffleNotFound, http.StatusNotFound, ErrMsgRaffleNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockRaffleService)
			if tt.result != nil {
				svc.On("DrawWinners", mock.Anything, id).Return(tt.result, nil)
			} else {
				svc.On("DrawWinners", mock.Anything, id).Return(nil, tt.err)
			}

			w := httptest.NewRecorder()
			NewRaffleHandler(svc).HandleDrawRaffle(w, newRequest(http.MethodPost, "/", nil, "admin-1", params))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
