package domain

// ActivitySource names an independently owned activity log
type ActivitySource string

const (
	SourceChatMessages ActivitySource = "chat_messages"
	SourceForgeHistory ActivitySource = "forge_history"
	SourceDevotionals  ActivitySource = "devotional_completions"
	SourceMarketBuys   ActivitySource = "market_purchases"
	SourceRaffleEntry  ActivitySource = "raffle_participants"
	SourceCommunities  ActivitySource = "community_members"
)

// RecordableSources are the logs users can append to through the activity API.
// Raffle entries are written by the raffle service.
var RecordableSources = map[ActivitySource]bool{
	SourceChatMessages: true,
	SourceForgeHistory: true,
	SourceDevotionals:  true,
	SourceMarketBuys:   true,
	SourceCommunities:  true,
}
