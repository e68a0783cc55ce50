package economy

// Formatted error messages
const (
	ErrMsgInvalidAmountFmt = "invalid grant amount: %d: %w"
	ErrMsgGrantFailed      = "failed to grant spirit xp: %w"
	ErrMsgGetBalanceFailed = "failed to get balance: %w"
	ErrMsgMissingUserID    = "missing user id: %w"
	ErrMsgMissingReason    = "missing grant reason: %w"
)

// Log messages
const (
	LogMsgSpiritXPGranted = "Spirit XP granted"
)
