package domain

// RaffleDrawnPayload is the event payload for raffle.drawn events
type RaffleDrawnPayload struct {
	RaffleID         string   `json:"raffle_id"`
	Title            string   `json:"title"`
	WinnerIDs        []string `json:"winner_ids"`
	ParticipantCount int      `json:"participant_count"`
	TotalWeight      int64    `json:"total_weight"`
	Timestamp        int64    `json:"timestamp"`
}

// RaffleEnteredPayload is the event payload for raffle.entered events
type RaffleEnteredPayload struct {
	RaffleID  string `json:"raffle_id"`
	UserID    string `json:"user_id"`
	Weight    int    `json:"weight"`
	Timestamp int64  `json:"timestamp"`
}

// MissionClaimedPayload is the event payload for mission.claimed events
type MissionClaimedPayload struct {
	UserID    string `json:"user_id"`
	MissionID string `json:"mission_id"`
	ResetKey  string `json:"reset_key"`
	RewardXP  int    `json:"reward_xp"`
	Timestamp int64  `json:"timestamp"`
}

// ActivityRecordedPayload is the event payload for activity.recorded events
type ActivityRecordedPayload struct {
	UserID    string `json:"user_id"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}
