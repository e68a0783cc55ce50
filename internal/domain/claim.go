package domain

// ClaimPhase is the tag of a ClaimState
type ClaimPhase string

const (
	ClaimIdle      ClaimPhase = "idle"
	ClaimPending   ClaimPhase = "pending"
	ClaimCommitted ClaimPhase = "committed"
	ClaimFailed    ClaimPhase = "failed"
)

// ClaimState tracks a reward claim. Reason is only set when Phase is ClaimFailed.
type ClaimState struct {
	Phase  ClaimPhase `json:"phase"`
	Reason string     `json:"reason,omitempty"`
}

// IdleClaim returns the zero state of a claim
func IdleClaim() ClaimState { return ClaimState{Phase: ClaimIdle} }

// PendingClaim marks a claim as in flight
func PendingClaim() ClaimState { return ClaimState{Phase: ClaimPending} }

// CommittedClaim marks a claim whose reward was durably granted
func CommittedClaim() ClaimState { return ClaimState{Phase: ClaimCommitted} }

// FailedClaim marks a claim that was not granted
func FailedClaim(reason string) ClaimState {
	return ClaimState{Phase: ClaimFailed, Reason: reason}
}

// ClaimOutcome is returned by a successful claim
type ClaimOutcome struct {
	MissionID string     `json:"mission_id"`
	ResetKey  string     `json:"reset_key"`
	RewardXP  int        `json:"reward_xp"`
	Balance   int64      `json:"balance"`
	State     ClaimState `json:"state"`
}
