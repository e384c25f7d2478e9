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

// Gathering metric names
const (
	MetricNameActionsCompleted    = "gathering_actions_completed_total"
	MetricNameResourcesGranted    = "gathering_resources_granted_total"
	MetricNameExperienceGranted   = "gathering_experience_granted_total"
	MetricNameLevelUps            = "gathering_level_ups_total"
	MetricNameActivityTransitions = "gathering_activity_transitions_total"
	MetricNameRejectedOperations  = "gathering_rejected_operations_total"
	MetricNameOfflineReconciles   = "gathering_offline_reconciliations_total"
	MetricNameOfflineElapsed      = "gathering_offline_elapsed_seconds"
	MetricNameActiveSkills        = "gathering_active_skills"
)

// Host loop metric names
const (
	MetricNameSchedulerSkipped = "scheduler_skipped_firings_total"
	MetricNameJobFailures      = "worker_job_failures_total"
	MetricNameTickDelta        = "session_tick_delta_seconds"
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

// Gathering metric help text
const (
	HelpTextActionsCompleted    = "Total number of completed gather actions"
	HelpTextResourcesGranted    = "Total whole resource units emitted to the inventory"
	HelpTextExperienceGranted   = "Total whole experience points applied to skills"
	HelpTextLevelUps            = "Total number of skill levels gained"
	HelpTextActivityTransitions = "Total number of activity state transitions"
	HelpTextRejectedOperations  = "Total number of engine operations rejected"
	HelpTextOfflineReconciles   = "Total number of offline reconciliations performed"
	HelpTextOfflineElapsed      = "Elapsed offline time covered by a reconciliation, in seconds"
	HelpTextActiveSkills        = "Number of skills currently gathering"
)

// Host loop metric help text
const (
	HelpTextSchedulerSkipped = "Scheduled firings dropped because the worker queue was full"
	HelpTextJobFailures      = "Worker jobs that returned an error"
	HelpTextTickDelta        = "Measured wall-clock delta applied by a live tick, in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelSkill      = "skill"
	LabelResource   = "resource"
	LabelTransition = "transition"
	LabelReason     = "reason"
	LabelMode       = "mode"
)

// Mode label values
const (
	ModeTick    = "tick"
	ModeOffline = "offline"
)

// Transition label values
const (
	TransitionStart  = "start"
	TransitionSwitch = "switch"
	TransitionStop   = "stop"
)

// OfflineElapsedBuckets spans one minute to one week
var OfflineElapsedBuckets = []float64{60, 300, 900, 3600, 4 * 3600, 12 * 3600, 24 * 3600, 72 * 3600, 168 * 3600}

// TickDeltaBuckets center on the default tick interval
var TickDeltaBuckets = []float64{.01, .05, .1, .25, .5, 1, 5, 30}

// HTTPLatencyBuckets for the inspection server
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
