package mission

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/repository"
	"github.com/journey-app/journey/internal/resetwindow"
)

// readKey identifies one activity-log query: a source read over one mission type's window
type readKey struct {
	source      domain.ActivitySource
	missionType domain.MissionType
}

// Snapshot is every value the pure computation needs, resolved up front
type Snapshot struct {
	User       domain.UserSnapshot
	UserFailed bool
	Counts     map[readKey]int
	Failed     map[readKey]bool
}

// Result is the computed progress of one mission
type Result struct {
	Progress int
	Degraded bool
}

// Aggregator computes mission progress from independent activity logs
type Aggregator struct {
	repo     repository.Activity
	maxReads int
}

// NewAggregator creates an Aggregator issuing at most maxConcurrentReads queries at once
func NewAggregator(repo repository.Activity, maxConcurrentReads int) *Aggregator {
	if maxConcurrentReads < 1 {
		maxConcurrentReads = DefaultMaxConcurrentReads
	}
	return &Aggregator{repo: repo, maxReads: maxConcurrentReads}
}

// Aggregate resolves the snapshot for userID and computes progress for every mission.
// now must already be in the mission timezone. claimed holds the ids of missions
// claimed for their current reset key.
func (a *Aggregator) Aggregate(ctx context.Context, userID string, missions []domain.Mission, claimed map[string]bool, now time.Time) map[string]Result {
	snap := a.Resolve(ctx, userID, missions, now)
	return Compute(ctx, missions, snap, claimed)
}

// Resolve issues the distinct reads the missions depend on, concurrently and bounded.
// A failed read is recorded in the snapshot rather than returned.
func (a *Aggregator) Resolve(ctx context.Context, userID string, missions []domain.Mission, now time.Time) *Snapshot {
	snap := &Snapshot{
		Counts: make(map[readKey]int),
		Failed: make(map[readKey]bool),
	}

	reads := make(map[readKey]struct{})
	needUser := false
	for _, m := range missions {
		st, ok := strategyFor(m.ActionKey)
		if !ok {
			continue
		}
		if st.kind == kindCount {
			reads[readKey{source: st.source, missionType: m.Type}] = struct{}{}
		} else {
			needUser = true
		}
	}

	log := logger.FromContext(ctx)
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(a.maxReads)

	if needUser {
		g.Go(func() error {
			user, err := a.repo.GetUserSnapshot(ctx, userID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil || user == nil {
				log.Warn(LogMsgSnapshotReadFailed, "user_id", userID, "error", err)
				metrics.MissionSourceFailuresTotal.WithLabelValues("user_snapshot").Inc()
				snap.UserFailed = true
				return nil
			}
			snap.User = *user
			return nil
		})
	}

	for key := range reads {
		g.Go(func() error {
			var since *time.Time
			if start, bounded := resetwindow.WindowStart(key.missionType, now); bounded {
				since = &start
			}

			count, err := a.repo.CountSince(ctx, key.source, userID, since)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn(LogMsgSourceReadFailed, "source", key.source, "mission_type", key.missionType, "user_id", userID, "error", err)
				metrics.MissionSourceFailuresTotal.WithLabelValues(string(key.source)).Inc()
				snap.Failed[key] = true
				return nil
			}
			snap.Counts[key] = count
			return nil
		})
	}

	// Workers never return errors; failures live in the snapshot
	_ = g.Wait()
	return snap
}

// Compute is the pure half of aggregation. Unknown action keys yield 0 and
// claimed missions report exactly their target.
func Compute(ctx context.Context, missions []domain.Mission, snap *Snapshot, claimed map[string]bool) map[string]Result {
	results := make(map[string]Result, len(missions))

	for _, m := range missions {
		if claimed[m.ID] {
			results[m.ID] = Result{Progress: m.TargetCount}
			continue
		}

		st, ok := strategyFor(m.ActionKey)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgUnknownActionKey, "mission_id", m.ID, "action_key", m.ActionKey)
			results[m.ID] = Result{}
			continue
		}

		switch st.kind {
		case kindCount:
			key := readKey{source: st.source, missionType: m.Type}
			if snap.Failed[key] {
				results[m.ID] = Result{Degraded: true}
				continue
			}
			results[m.ID] = Result{Progress: nonNegative(snap.Counts[key])}
		case kindScalar:
			if snap.UserFailed {
				results[m.ID] = Result{Degraded: true}
				continue
			}
			results[m.ID] = Result{Progress: nonNegative(st.scalar(snap.User))}
		case kindThreshold:
			if snap.UserFailed {
				results[m.ID] = Result{Degraded: true}
				continue
			}
			progress := 0
			if st.scalar(snap.User) >= thresholdFor(m) {
				progress = 1
			}
			results[m.ID] = Result{Progress: progress}
		default:
			results[m.ID] = Result{}
		}
	}

	return results
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
