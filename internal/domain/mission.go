package domain

import "time"

// MissionType determines the reset window a mission is tracked against
type MissionType string

const (
	MissionTypeDaily  MissionType = "Daily"
	MissionTypeWeekly MissionType = "Weekly"
	MissionTypeCareer MissionType = "Career"
)

// Valid reports whether t is one of the known mission types
func (t MissionType) Valid() bool {
	switch t {
	case MissionTypeDaily, MissionTypeWeekly, MissionTypeCareer:
		return true
	}
	return false
}

// ActionKey identifies the counting strategy used for a mission.
// Catalogs may carry keys this build does not know about; those report zero progress.
type ActionKey string

const (
	ActionSendChat           ActionKey = "send_chat"
	ActionForgeArtifact      ActionKey = "forge_artifact"
	ActionCompleteDevotional ActionKey = "complete_devotional"
	ActionMarketPurchase     ActionKey = "market_purchase"
	ActionEnterRaffle        ActionKey = "enter_raffle"
	ActionJoinCommunity      ActionKey = "join_community"
	ActionCollectVerses      ActionKey = "collect_verses"
	ActionInviteFriend       ActionKey = "invite_friend"
	ActionReachLevel         ActionKey = "reach_level"
)

// Mission is a read-only catalog entry
type Mission struct {
	ID          string      `json:"id"`
	Type        MissionType `json:"type"`
	ActionKey   ActionKey   `json:"action_key"`
	TargetCount int         `json:"target_count"`
	Threshold   int         `json:"threshold,omitempty"` // For threshold strategies such as reach_level
	RewardXP    int         `json:"reward_xp"`
	Icon        string      `json:"icon"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Active      bool        `json:"active"`
}

// MissionClaim records that a user collected a mission reward for one reset window.
// Claims are append-only.
type MissionClaim struct {
	UserID    string    `json:"user_id"`
	MissionID string    `json:"mission_id"`
	ResetKey  string    `json:"reset_key"`
	RewardXP  int       `json:"reward_xp"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// MissionProgress is the computed view of a mission for one user
type MissionProgress struct {
	MissionID   string      `json:"mission_id"`
	Type        MissionType `json:"type"`
	ActionKey   ActionKey   `json:"action_key"`
	Title       string      `json:"title"`
	Icon        string      `json:"icon"`
	Progress    int         `json:"progress"`
	TargetCount int         `json:"target_count"`
	RewardXP    int         `json:"reward_xp"`
	ResetKey    string      `json:"reset_key"`
	Completed   bool        `json:"completed"`
	Claimed     bool        `json:"claimed"`
	Degraded    bool        `json:"degraded,omitempty"` // A data source failed; progress fell back to zero
}
