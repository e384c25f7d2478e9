package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion        = "ENV_SCHEMA_VERSION"
	EnvEnvironment          = "ENVIRONMENT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvHTTPPort             = "HTTP_PORT"
	EnvNodesPath            = "NODES_PATH"
	EnvTickInterval         = "TICK_INTERVAL"
	EnvWorkerCount          = "WORKER_COUNT"
	EnvQueueSize            = "QUEUE_SIZE"
	EnvLevelBaseXP          = "LEVEL_BASE_XP"
	EnvLevelGrowth          = "LEVEL_GROWTH"
	EnvMaxLevel             = "MAX_LEVEL"
	EnvResourceMultiplier   = "RESOURCE_MULTIPLIER"
	EnvExperienceMultiplier = "EXPERIENCE_MULTIPLIER"
	EnvAPIKey               = "API_KEY"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
	EnvRateLimit            = "RATE_LIMIT"
	EnvRateWindow           = "RATE_WINDOW"
)

// Defaults
const (
	DefaultEnvironment          = "dev"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultServiceName          = "idle-gather"
	DefaultVersion              = "dev"
	DefaultHTTPPort             = 8080
	DefaultTickInterval         = 100 * time.Millisecond
	DefaultWorkerCount          = 1
	DefaultQueueSize            = 16
	DefaultLevelBaseXP          = 100.0
	DefaultLevelGrowth          = 1.1
	DefaultMaxLevel             = 99
	DefaultResourceMultiplier   = 1.0
	DefaultExperienceMultiplier = 1.0
	DefaultRateLimit            = 600
	DefaultRateWindow           = 5 * time.Minute
)

// suspiciousMultiplier triggers a warning; anything above it is almost certainly a typo
const suspiciousMultiplier = 10.0
