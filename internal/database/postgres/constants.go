package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User and Ledger Operations
const (
	ErrMsgFailedToGetBalance      = "failed to get balance"
	ErrMsgFailedToAddSpiritXP     = "failed to add spirit xp"
	ErrMsgFailedToInsertLedgerRow = "failed to insert ledger row"
	ErrMsgFailedToGetUserSnapshot = "failed to get user snapshot"
	ErrMsgFailedToQueryTopUsers   = "failed to query top users"
	ErrMsgFailedToScanLeaderboard = "failed to scan leaderboard row"
)

// Error Messages - Mission Operations
const (
	ErrMsgFailedToQueryMissions = "failed to query missions"
	ErrMsgFailedToScanMission   = "failed to scan mission"
	ErrMsgFailedToQueryClaims   = "failed to query mission claims"
	ErrMsgFailedToScanClaim     = "failed to scan mission claim"
	ErrMsgFailedToInsertClaim   = "failed to insert mission claim"
)

// Error Messages - Raffle Operations
const (
	ErrMsgFailedToCreateRaffle    = "failed to create raffle"
	ErrMsgFailedToGetRaffle       = "failed to get raffle"
	ErrMsgFailedToQueryRaffles    = "failed to query raffles"
	ErrMsgFailedToScanRaffle      = "failed to scan raffle"
	ErrMsgFailedToAddParticipant  = "failed to add participant"
	ErrMsgFailedToGetParticipants = "failed to get participants"
	ErrMsgFailedToScanParticipant = "failed to scan participant"
	ErrMsgFailedToCompleteDraw    = "failed to complete draw"
)

// Error Messages - Activity Operations
const (
	ErrMsgFailedToCountActivity  = "failed to count activity"
	ErrMsgFailedToRecordActivity = "failed to record activity"
)
