package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Raffle metrics
var (
	RaffleDrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRaffleDrawsTotal,
			Help: HelpTextRaffleDrawsTotal,
		},
		[]string{LabelOutcome},
	)

	RaffleDrawDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRaffleDrawDuration,
			Help:    HelpTextRaffleDrawDuration,
			Buckets: DrawLatencyBuckets,
		},
	)

	RaffleEntriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRaffleEntriesTotal,
			Help: HelpTextRaffleEntriesTotal,
		},
	)

	RaffleWinnersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRaffleWinnersTotal,
			Help: HelpTextRaffleWinnersTotal,
		},
	)
)

// Mission and progression metrics
var (
	MissionClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionClaimsTotal,
			Help: HelpTextMissionClaimsTotal,
		},
		[]string{LabelOutcome},
	)

	MissionSourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionSourceFailuresTotal,
			Help: HelpTextMissionSourceFailuresTotal,
		},
		[]string{LabelSource},
	)

	SpiritXPGrantedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpiritXPGrantedTotal,
			Help: HelpTextSpiritXPGrantedTotal,
		},
		[]string{LabelReason},
	)

	ActivityRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivityRecordedTotal,
			Help: HelpTextActivityRecordedTotal,
		},
		[]string{LabelSource},
	)

	LeaderboardRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardRefreshTotal,
			Help: HelpTextLeaderboardRefreshTotal,
		},
		[]string{LabelOutcome},
	)

	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRunsTotal,
			Help: HelpTextJobRunsTotal,
		},
		[]string{LabelJob, LabelOutcome},
	)

	JobsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobsDroppedTotal,
			Help: HelpTextJobsDroppedTotal,
		},
		[]string{LabelJob},
	)
)
