package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/journey-app/journey/internal/domain"
)

type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) AddSpiritXP(ctx context.Context, userID string, amount int64, reason, ref string) (int64, error) {
	args := m.Called(ctx, userID, amount, reason, ref)
	return args.Get(0).(int64), args.Error(1)
}

func TestGrant(t *testing.T) {
	t.Run("success returns new balance", func(t *testing.T) {
		tx := new(MockLedgerTx)
		tx.On("AddSpiritXP", mock.Anything, "user-1", int64(50), "mission_claim", "daily-chat:2026-10-18").Return(int64(1050), nil)

		balance, err := NewService(new(MockLedgerRepo)).Grant(context.Background(), tx, "user-1", 50, "mission_claim", "daily-chat:2026-10-18")

		require.NoError(t, err)
		assert.Equal(t, int64(1050), balance)
		tx.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		userID string
		amount int64
		reason string
	}{
		{"zero amount", "user-1", 0, "r"},
		{"negative amount", "user-1", -5, "r"},
		{"missing user", "", 5, "r"},
		{"missing reason", "user-1", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := new(MockLedgerTx)

			_, err := NewService(new(MockLedgerRepo)).Grant(context.Background(), tx, tt.userID, tt.amount, tt.reason, "")

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			tx.AssertNotCalled(t, "AddSpiritXP", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("tx failure is wrapped", func(t *testing.T) {
		tx := new(MockLedgerTx)
		dbErr := errors.New("serialization failure")
		tx.On("AddSpiritXP", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), dbErr)

		_, err := NewService(new(MockLedgerRepo)).Grant(context.Background(), tx, "user-1", 5, "r", "")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestBalance(t *testing.T) {
	repo := new(MockLedgerRepo)
	repo.On("GetBalance", mock.Anything, "user-1").Return(int64(300), nil)
	repo.On("GetBalance", mock.Anything, "broken").Return(int64(0), errors.New("db down"))
	svc := NewService(repo)

	balance, err := svc.Balance(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(300), balance)

	_, err = svc.Balance(context.Background(), "broken")
	assert.Error(t, err)
}
