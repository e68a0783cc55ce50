package mission

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/journey-app/journey/internal/domain"
)

// ClaimTracker remembers the latest ClaimState per (user, mission) so clients
// can poll a claim. Entries expire; an unknown pair reads as Idle.
type ClaimTracker struct {
	lru *expirable.LRU[string, domain.ClaimState]
}

// NewClaimTracker creates a tracker holding at most size entries for ttl
func NewClaimTracker(size int, ttl time.Duration) *ClaimTracker {
	return &ClaimTracker{
		lru: expirable.NewLRU[string, domain.ClaimState](size, nil, ttl),
	}
}

func trackerKey(userID, missionID string) string {
	return userID + ":" + missionID
}

// State returns the current state for the pair
func (t *ClaimTracker) State(userID, missionID string) domain.ClaimState {
	if st, ok := t.lru.Get(trackerKey(userID, missionID)); ok {
		return st
	}
	return domain.IdleClaim()
}

// Set records a state transition
func (t *ClaimTracker) Set(userID, missionID string, st domain.ClaimState) {
	t.lru.Add(trackerKey(userID, missionID), st)
}
