package logger

// Accepted level names. "warning" is an alias for "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeySessionID   = "session_id"
)
