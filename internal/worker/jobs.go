package worker

import (
	"context"

	"github.com/journey-app/journey/internal/leaderboard"
	"github.com/journey-app/journey/internal/logger"
)

// RaffleDrawer draws raffles whose end time has passed
type RaffleDrawer interface {
	DrawDueRaffles(ctx context.Context) (int, error)
}

// LeaderboardRefresher rebuilds the cached leaderboard snapshot
type LeaderboardRefresher interface {
	Refresh(ctx context.Context) (*leaderboard.Snapshot, error)
}

// AutoDrawJob draws every due raffle
type AutoDrawJob struct {
	raffles RaffleDrawer
}

// NewAutoDrawJob creates the auto-draw job
func NewAutoDrawJob(raffles RaffleDrawer) *AutoDrawJob {
	return &AutoDrawJob{raffles: raffles}
}

func (j *AutoDrawJob) Name() string { return JobNameRaffleAutoDraw }

func (j *AutoDrawJob) Process(ctx context.Context) error {
	drawn, err := j.raffles.DrawDueRaffles(ctx)
	if drawn > 0 {
		logger.FromContext(ctx).Info(LogMsgAutoDrawCompleted, "drawn", drawn)
	}
	return err
}

// LeaderboardRefreshJob keeps the leaderboard snapshot warm
type LeaderboardRefreshJob struct {
	store LeaderboardRefresher
}

// NewLeaderboardRefreshJob creates the refresh job
func NewLeaderboardRefreshJob(store LeaderboardRefresher) *LeaderboardRefreshJob {
	return &LeaderboardRefreshJob{store: store}
}

func (j *LeaderboardRefreshJob) Name() string { return JobNameLeaderboardRefresh }

func (j *LeaderboardRefreshJob) Process(ctx context.Context) error {
	snap, err := j.store.Refresh(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgLeaderboardRefresh, "entries", snap.Len())
	return nil
}
