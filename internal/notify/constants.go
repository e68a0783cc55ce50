package notify

// Embed styling
const (
	ColorRaffleDrawn = 0xf1c40f
	FooterText       = "Journey"
	MaxListedWinners = 20
)

// Log messages
const (
	LogMsgNotifierSubscribed = "Raffle winner notifier subscribed"
	LogMsgWebhookFailed      = "Failed to send raffle webhook"
	LogMsgWebhookSent        = "Raffle webhook sent"
	LogMsgBadPayload         = "Unexpected raffle.drawn payload"
)

// Error messages
const (
	ErrMsgMissingWebhook = "discord webhook id and token are required"
	ErrMsgCreateSession  = "failed to create discord session"
)
