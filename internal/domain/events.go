package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "raffle.drawn")
const (
	// EventTypeRaffleDrawn is published once when a raffle transitions to drawn
	EventTypeRaffleDrawn = "raffle.drawn"

	// EventTypeRaffleEntered is published when a user enters a raffle
	EventTypeRaffleEntered = "raffle.entered"

	// EventTypeMissionClaimed is published after a claim and its reward commit
	EventTypeMissionClaimed = "mission.claimed"

	// EventTypeActivityRecorded is published when an activity row is appended
	EventTypeActivityRecorded = "activity.recorded"
)
