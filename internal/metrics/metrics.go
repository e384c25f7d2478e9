package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
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

// Gathering Metrics
var (
	ActionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsCompleted,
			Help: HelpTextActionsCompleted,
		},
		[]string{LabelSkill, LabelMode},
	)

	ResourcesGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesGranted,
			Help: HelpTextResourcesGranted,
		},
		[]string{LabelResource},
	)

	ExperienceGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExperienceGranted,
			Help: HelpTextExperienceGranted,
		},
		[]string{LabelSkill},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelSkill},
	)

	ActivityTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivityTransitions,
			Help: HelpTextActivityTransitions,
		},
		[]string{LabelSkill, LabelTransition},
	)

	RejectedOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRejectedOperations,
			Help: HelpTextRejectedOperations,
		},
		[]string{LabelReason},
	)

	OfflineReconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOfflineReconciles,
			Help: HelpTextOfflineReconciles,
		},
		[]string{LabelSkill},
	)

	OfflineElapsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameOfflineElapsed,
			Help:    HelpTextOfflineElapsed,
			Buckets: OfflineElapsedBuckets,
		},
	)

	ActiveSkills = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSkills,
			Help: HelpTextActiveSkills,
		},
	)
)

// Host loop metrics
var (
	SchedulerSkippedFirings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSchedulerSkipped,
			Help: HelpTextSchedulerSkipped,
		},
	)

	WorkerJobFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJobFailures,
			Help: HelpTextJobFailures,
		},
	)

	TickDelta = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDelta,
			Help:    HelpTextTickDelta,
			Buckets: TickDeltaBuckets,
		},
	)
)
