package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameRaffleDrawsTotal           = "raffle_draws_total"
	MetricNameRaffleDrawDuration         = "raffle_draw_duration_seconds"
	MetricNameRaffleEntriesTotal         = "raffle_entries_total"
	MetricNameRaffleWinnersTotal         = "raffle_winners_total"
	MetricNameMissionClaimsTotal         = "mission_claims_total"
	MetricNameMissionSourceFailuresTotal = "mission_source_failures_total"
	MetricNameSpiritXPGrantedTotal       = "spirit_xp_granted_total"
	MetricNameActivityRecordedTotal      = "activity_recorded_total"
	MetricNameLeaderboardRefreshTotal    = "leaderboard_refresh_total"
)

// Background job metric names
const (
	MetricNameJobRunsTotal     = "background_job_runs_total"
	MetricNameJobsDroppedTotal = "background_jobs_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextRaffleDrawsTotal           = "Total number of raffle draw attempts by outcome"
	HelpTextRaffleDrawDuration         = "Raffle draw latency in seconds"
	HelpTextRaffleEntriesTotal         = "Total number of raffle entries recorded"
	HelpTextRaffleWinnersTotal         = "Total number of raffle winners selected"
	HelpTextMissionClaimsTotal         = "Total number of mission claim attempts by outcome"
	HelpTextMissionSourceFailuresTotal = "Total number of failed activity source reads during progress aggregation"
	HelpTextSpiritXPGrantedTotal       = "Total spirit XP granted by reason"
	HelpTextActivityRecordedTotal      = "Total number of activity rows recorded by source"
	HelpTextLeaderboardRefreshTotal    = "Total number of leaderboard snapshot refreshes by outcome"
)

// Background job metric help text
const (
	HelpTextJobRunsTotal     = "Total number of background job runs by job and outcome"
	HelpTextJobsDroppedTotal = "Total number of scheduled jobs dropped because the worker queue was full"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelSource  = "source"
	LabelReason  = "reason"
	LabelJob     = "job"
)

// Outcome label values
const (
	OutcomeSuccess        = "success"
	OutcomeError          = "error"
	OutcomeConflict       = "conflict"
	OutcomeNotFound       = "not_found"
	OutcomeNoParticipants = "no_participants"
	OutcomeIncomplete     = "incomplete"
	OutcomePending        = "pending"
)

// UnmatchedRoute labels requests that did not match a chi route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DrawLatencyBuckets covers lock wait plus the draw transaction.
var DrawLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
