// Package leaderboard owns the ranked Spirit XP snapshots served to clients.
//
// A Store is created by the composition root, refreshed on a schedule,
// invalidated after reward grants and closed on shutdown. Readers always
// receive an immutable Snapshot; nothing is mutated in place.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/repository"
)

// DefaultSize is the number of ranked users kept per snapshot
const DefaultSize = 100

// ErrStoreClosed is returned after Close
var ErrStoreClosed = errors.New("leaderboard store is closed")

// Snapshot is an immutable ranked view of the leaderboard
type Snapshot struct {
	entries     []domain.LeaderboardEntry
	GeneratedAt time.Time
}

// Top returns a copy of at most n entries. n <= 0 returns every entry.
func (s *Snapshot) Top(n int) []domain.LeaderboardEntry {
	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]domain.LeaderboardEntry, n)
	copy(out, s.entries[:n])
	return out
}

// Len returns the number of ranked entries
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Store holds the current snapshot
type Store struct {
	repo    repository.Leaderboard
	size    int
	current atomic.Pointer[Snapshot]
	stale   atomic.Bool
	closed  atomic.Bool
	group   singleflight.Group
	now     func() time.Time
}

// NewStore creates an empty store. The first read or scheduled refresh loads it.
func NewStore(repo repository.Leaderboard, size int) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &Store{repo: repo, size: size, now: time.Now}
}

// Refresh rebuilds the snapshot. Concurrent callers share one query.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	v, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		// Cleared before the query so an Invalidate during the read triggers another refresh
		s.stale.Store(false)

		rows, err := s.repo.GetTopUsers(ctx, s.size)
		if err != nil {
			s.stale.Store(true)
			metrics.LeaderboardRefreshTotal.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, fmt.Errorf("failed to load leaderboard: %w", err)
		}

		snap := &Snapshot{entries: rank(rows), GeneratedAt: s.now().UTC()}
		s.current.Store(snap)
		metrics.LeaderboardRefreshTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		logger.FromContext(ctx).Debug("Leaderboard refreshed", "entries", snap.Len())
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Snapshot returns the current snapshot, refreshing first if none exists or it was invalidated.
// If a refresh fails and an older snapshot exists, the older one is served.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	cur := s.current.Load()
	if cur != nil && !s.stale.Load() {
		return cur, nil
	}

	snap, err := s.Refresh(ctx)
	if err != nil {
		if cur != nil {
			logger.FromContext(ctx).Warn("Serving stale leaderboard", "error", err)
			return cur, nil
		}
		return nil, err
	}
	return snap, nil
}

// Invalidate marks the snapshot stale so the next read rebuilds it
func (s *Store) Invalidate() {
	s.stale.Store(true)
}

// Close drops the snapshot and rejects further reads
func (s *Store) Close() {
	s.closed.Store(true)
	s.current.Store(nil)
}

// rank assigns dense-by-position ranks; ties share the rank of the first tied row
func rank(rows []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(rows))
	for i, r := range rows {
		r.Level = domain.LevelForXP(r.SpiritXP)
		r.Rank = i + 1
		if i > 0 && r.SpiritXP == out[i-1].SpiritXP {
			r.Rank = out[i-1].Rank
		}
		out[i] = r
	}
	return out
}
