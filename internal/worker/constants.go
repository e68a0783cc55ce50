package worker

import "time"

// Job names, used as metric labels and gocron job names
const (
	JobNameRaffleAutoDraw     = "raffle_auto_draw"
	JobNameLeaderboardRefresh = "leaderboard_refresh"
)

// Pool defaults
const (
	DefaultWorkers    = 2
	DefaultQueueSize  = 16
	DefaultJobTimeout = 30 * time.Second
)

// Log messages
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobDropped   = "Worker queue full, dropping scheduled run"
	LogMsgJobScheduled       = "Background job scheduled"
	LogMsgSchedulerStopped   = "Scheduler stopped"
	LogMsgAutoDrawCompleted  = "Auto-draw completed"
	LogMsgLeaderboardRefresh = "Scheduled leaderboard refresh completed"
)
