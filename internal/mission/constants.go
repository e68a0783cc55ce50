package mission

import "time"

// ============================================================================
// Aggregation
// ============================================================================

// DefaultMaxConcurrentReads bounds the activity-log queries issued per progress request
const DefaultMaxConcurrentReads = 4

// ============================================================================
// Caching
// ============================================================================

const (
	// CacheSchemaVersion is bumped when the cached catalog layout changes
	CacheSchemaVersion = "1.0"

	// DefaultCatalogTTL is how long the active catalog is served from memory
	DefaultCatalogTTL = 5 * time.Minute

	// ClaimTrackerSize caps the number of (user, mission) claim states kept for polling
	ClaimTrackerSize = 10000

	// ClaimStateTTL is how long a finished claim state stays pollable
	ClaimStateTTL = 10 * time.Minute

	catalogCacheKey = "active"
)

// ============================================================================
// Ledger
// ============================================================================

// LedgerReasonMissionClaim tags ledger rows written by mission claims
const LedgerReasonMissionClaim = "mission_claim"

// TracerName is the instrumentation scope for mission spans
const TracerName = "github.com/journey-app/journey/internal/mission"

// ============================================================================
// Error Context
// ============================================================================

const (
	ErrContextFailedToLoadCatalog = "failed to load mission catalog"
	ErrContextFailedToGetClaims   = "failed to get mission claims"
	ErrContextFailedToBeginTx     = "failed to begin claim transaction"
	ErrContextFailedToInsertClaim = "failed to insert claim"
	ErrContextFailedToGrantReward = "failed to grant reward"
	ErrContextFailedToCommitTx    = "failed to commit claim transaction"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSourceReadFailed   = "Activity source read failed, affected missions report zero progress"
	LogMsgSnapshotReadFailed = "User snapshot read failed, scalar missions report zero progress"
	LogMsgUnknownActionKey   = "Unknown mission action key, reporting zero progress"
	LogMsgMissionClaimed     = "Mission claimed"
	LogMsgClaimFailed        = "Mission claim failed"
	LogMsgPublisherNotWired  = "Mission event not published, publisher is nil"
)
