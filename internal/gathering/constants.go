package gathering

// Default rate modifiers
const (
	DefaultResourceMultiplier   = 1.0
	DefaultExperienceMultiplier = 1.0
)

// Rejection reasons (metric label values)
const (
	ReasonInvalidActivity  = "invalid_activity"
	ReasonInactive         = "inactive"
	ReasonNoActiveActivity = "no_active_activity"
	ReasonSkillNotFound    = "skill_not_found"
	ReasonInvalidInput     = "invalid_input"
)

// Log messages
const (
	LogMsgActivityStarted   = "Gathering activity started"
	LogMsgActivitySwitched  = "Gathering activity switched, partial progress forfeited"
	LogMsgActivityStopped   = "Gathering activity stopped"
	LogMsgActivityRejected  = "Gathering activity rejected"
	LogMsgTickRejected      = "Tick rejected"
	LogMsgActionsCompleted  = "Gather actions completed"
	LogMsgLevelUp           = "Skill leveled up"
	LogMsgOfflineReconciled = "Offline progress reconciled"
	LogMsgReconcileRejected = "Offline reconciliation rejected"
	LogMsgStateRestored     = "Engine state restored"
	LogMsgSkillAdded        = "Skill registered"
)
