package raffle

// ============================================================================
// Locking
// ============================================================================

// LockKeyPrefix namespaces per-raffle draw locks
const LockKeyPrefix = "raffle:"

// ============================================================================
// Tracing
// ============================================================================

// TracerName is the instrumentation scope for raffle spans
const TracerName = "github.com/journey-app/journey/internal/raffle"

// ============================================================================
// Error Context
// ============================================================================

const (
	ErrContextFailedToGetRaffle       = "failed to get raffle"
	ErrContextFailedToCreateRaffle    = "failed to create raffle"
	ErrContextFailedToListRaffles     = "failed to list raffles"
	ErrContextFailedToAddParticipant  = "failed to add participant"
	ErrContextFailedToGetParticipants = "failed to get participants"
	ErrContextFailedToSeedSource      = "failed to seed random source"
	ErrContextFailedToBeginTx         = "failed to begin transaction"
	ErrContextFailedToCompleteDraw    = "failed to persist draw"
	ErrContextFailedToCommitTx        = "failed to commit transaction"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRaffleCreated      = "Raffle created"
	LogMsgRaffleEntered      = "Raffle entered"
	LogMsgDrawWinnersCalled  = "DrawWinners called"
	LogMsgRaffleDrawn        = "Raffle drawn"
	LogMsgDrawSkippedNoEntry = "Raffle draw skipped, no participants"
	LogMsgDrawLostRace       = "Raffle already drawn by a concurrent request"
	LogMsgAuditFailed        = "Failed to record draw audit"
	LogMsgAutoDrawFailed     = "Auto-draw failed"
	LogMsgAutoDrawCompleted  = "Auto-draw pass completed"
	LogMsgPublisherNotWired  = "Raffle event not published, publisher is nil"
)
