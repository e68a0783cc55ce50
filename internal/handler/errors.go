package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnauthorized          = "Authentication required"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidRaffleID   = "Invalid raffle ID"
	ErrMsgInvalidMissionID  = "Invalid mission ID"
	ErrMsgInvalidLimit      = "Invalid limit"
	ErrMsgInvalidStatus     = "Invalid raffle status"

	// Operation error messages
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetBalanceFailed     = "Failed to retrieve balance"
)

// Operation names used in logs
const (
	OpListMissions     = "List missions"
	OpGetProgress      = "Get mission progress"
	OpClaimMission     = "Claim mission"
	OpRecordActivity   = "Record activity"
	OpListRaffles      = "List raffles"
	OpGetRaffle        = "Get raffle"
	OpEnterRaffle      = "Enter raffle"
	OpCreateRaffle     = "Create raffle"
	OpListParticipants = "List participants"
	OpDrawRaffle       = "Draw raffle"
	OpGetLeaderboard   = "Get leaderboard"
	OpGetBalance       = "Get balance"
)

// Leaderboard query limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)
