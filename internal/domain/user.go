package domain

// XPPerLevel is the amount of Spirit XP needed per level
const XPPerLevel = 1000

// LevelForXP derives a user's level from their Spirit XP balance
func LevelForXP(xp int64) int {
	if xp < 0 {
		return 1
	}
	return int(xp/XPPerLevel) + 1
}

// User is the subset of a profile this service reads
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	SpiritXP int64  `json:"spirit_xp"`
}

// UserSnapshot carries the scalar attributes missions compare against
type UserSnapshot struct {
	UserID          string `json:"user_id"`
	SpiritXP        int64  `json:"spirit_xp"`
	Level           int    `json:"level"`
	CollectedVerses int    `json:"collected_verses"`
	ReferralCount   int    `json:"referral_count"`
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	SpiritXP int64  `json:"spirit_xp"`
	Level    int    `json:"level"`
}
