package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Activity errors
	ErrMsgInvalidActivity  = "invalid activity"
	ErrMsgInactiveActivity = "activity is not active"
	ErrMsgNoActiveActivity = "no active activity to reconcile"

	// Lookup errors
	ErrMsgSkillNotFound = "skill not found"
	ErrMsgNodeNotFound  = "node not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidActivity is returned when an activity cannot be started:
	// the skill level is below the node requirement or the node belongs to another skill.
	ErrInvalidActivity = errors.New(ErrMsgInvalidActivity)

	// ErrInactiveActivity is returned by Tick when the skill is idle.
	ErrInactiveActivity = errors.New(ErrMsgInactiveActivity)

	// ErrNoActiveActivity is returned by ReconcileOffline when the skill is idle.
	// Hosts usually treat it as "nothing happened while away" and ignore it.
	ErrNoActiveActivity = errors.New(ErrMsgNoActiveActivity)

	ErrSkillNotFound = errors.New(ErrMsgSkillNotFound)
	ErrNodeNotFound  = errors.New(ErrMsgNodeNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
