package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
)

type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) CountSince(ctx context.Context, source domain.ActivitySource, userID string, since *time.Time) (int, error) {
	args := m.Called(ctx, source, userID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockActivityRepo) RecordActivity(ctx context.Context, userID string, source domain.ActivitySource) error {
	args := m.Called(ctx, userID, source)
	return args.Error(0)
}

func (m *MockActivityRepo) GetUserSnapshot(ctx context.Context, userID string) (*domain.UserSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSnapshot), args.Error(1)
}

type capturePublisher struct {
	events []event.Event
}

func (c *capturePublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	c.events = append(c.events, evt)
}

func TestRecord(t *testing.T) {
	t.Run("records recordable source", func(t *testing.T) {
		repo := new(MockActivityRepo)
		pub := &capturePublisher{}
		repo.On("RecordActivity", mock.Anything, "user-1", domain.SourceForgeHistory).Return(nil)

		err := NewService(repo, pub).Record(context.Background(), "user-1", domain.SourceForgeHistory)

		require.NoError(t, err)
		require.Len(t, pub.events, 1)
		assert.Equal(t, event.ActivityRecorded, pub.events[0].Type)
		repo.AssertExpectations(t)
	})

	t.Run("raffle entries are not recordable directly", func(t *testing.T) {
		repo := new(MockActivityRepo)

		err := NewService(repo, nil).Record(context.Background(), "user-1", domain.SourceRaffleEntry)

		assert.ErrorIs(t, err, domain.ErrUnknownSource)
		repo.AssertNotCalled(t, "RecordActivity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown source", func(t *testing.T) {
		err := NewService(new(MockActivityRepo), nil).Record(context.Background(), "user-1", domain.ActivitySource("users; drop table"))
		assert.ErrorIs(t, err, domain.ErrUnknownSource)
	})

	t.Run("missing user", func(t *testing.T) {
		err := NewService(new(MockActivityRepo), nil).Record(context.Background(), "", domain.SourceChatMessages)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockActivityRepo)
		repo.On("RecordActivity", mock.Anything, "user-1", domain.SourceChatMessages).Return(errors.New("insert failed"))

		err := NewService(repo, nil).Record(context.Background(), "user-1", domain.SourceChatMessages)
		assert.Error(t, err)
	})
}
