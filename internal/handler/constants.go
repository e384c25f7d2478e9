package handler

// Client-facing error messages
const (
	ErrMsgInternal        = "Something went wrong"
	ErrMsgNotReady        = "Service not ready"
	ErrMsgInvalidLevel    = "Invalid level parameter"
	ErrMsgLevelNeedsSkill = "level filter requires a skill parameter"
)

// Health statuses
const (
	StatusOK       = "ok"
	StatusNotReady = "not_ready"
)

// Query parameters
const (
	QueryParamSkill = "skill"
	QueryParamLevel = "level"
)

// URL parameters
const (
	URLParamSkill = "skill"
)

// Log messages
const (
	LogMsgEncodeFailed = "Failed to encode JSON response"
	LogMsgWriteFailed  = "Failed to write response buffer"
	LogMsgNotReady     = "Readiness check failed"
)
