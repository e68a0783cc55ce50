package activity

import (
	"context"
	"fmt"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/repository"
)

// Service appends rows to the activity logs missions are counted from
type Service interface {
	Record(ctx context.Context, userID string, source domain.ActivitySource) error
}

type service struct {
	repo      repository.Activity
	publisher event.Publisher
}

// NewService creates a new activity service. publisher may be nil.
func NewService(repo repository.Activity, publisher event.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Record(ctx context.Context, userID string, source domain.ActivitySource) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if !domain.RecordableSources[source] {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSource, source)
	}

	if err := s.repo.RecordActivity(ctx, userID, source); err != nil {
		return fmt.Errorf("failed to record %s activity: %w", source, err)
	}

	metrics.ActivityRecordedTotal.WithLabelValues(string(source)).Inc()
	logger.FromContext(ctx).Debug("Activity recorded", "user_id", userID, "source", source)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewActivityRecordedEvent(userID, source))
	}
	return nil
}
