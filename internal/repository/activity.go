package repository

import (
	"context"
	"time"

	"github.com/journey-app/journey/internal/domain"
)

// Activity defines read and append access to the activity logs missions count
type Activity interface {
	// CountSince counts rows for the user in source. A nil since means unbounded.
	CountSince(ctx context.Context, source domain.ActivitySource, userID string, since *time.Time) (int, error)
	RecordActivity(ctx context.Context, userID string, source domain.ActivitySource) error
	GetUserSnapshot(ctx context.Context, userID string) (*domain.UserSnapshot, error)
}
