package mission

import "github.com/journey-app/journey/internal/domain"

// strategyKind enumerates how a mission's progress is counted
type strategyKind int

const (
	// kindCount counts rows in one activity log inside the mission's window
	kindCount strategyKind = iota + 1
	// kindScalar reports a user attribute as a raw count
	kindScalar
	// kindThreshold yields 1 once a user attribute reaches the mission threshold
	kindThreshold
)

type strategy struct {
	kind   strategyKind
	source domain.ActivitySource
	scalar func(domain.UserSnapshot) int
}

// strategies maps every known action key to exactly one counting strategy
var strategies = map[domain.ActionKey]strategy{
	domain.ActionSendChat:           {kind: kindCount, source: domain.SourceChatMessages},
	domain.ActionForgeArtifact:      {kind: kindCount, source: domain.SourceForgeHistory},
	domain.ActionCompleteDevotional: {kind: kindCount, source: domain.SourceDevotionals},
	domain.ActionMarketPurchase:     {kind: kindCount, source: domain.SourceMarketBuys},
	domain.ActionEnterRaffle:        {kind: kindCount, source: domain.SourceRaffleEntry},
	domain.ActionJoinCommunity:      {kind: kindCount, source: domain.SourceCommunities},
	domain.ActionCollectVerses:      {kind: kindScalar, scalar: func(u domain.UserSnapshot) int { return u.CollectedVerses }},
	domain.ActionInviteFriend:       {kind: kindScalar, scalar: func(u domain.UserSnapshot) int { return u.ReferralCount }},
	domain.ActionReachLevel:         {kind: kindThreshold, scalar: func(u domain.UserSnapshot) int { return u.Level }},
}

func strategyFor(key domain.ActionKey) (strategy, bool) {
	s, ok := strategies[key]
	return s, ok
}

// KnownActionKey reports whether key has a counting strategy
func KnownActionKey(key domain.ActionKey) bool {
	_, ok := strategies[key]
	return ok
}

// thresholdFor falls back to target_count when a catalog row leaves threshold unset
func thresholdFor(m domain.Mission) int {
	if m.Threshold > 0 {
		return m.Threshold
	}
	return m.TargetCount
}
