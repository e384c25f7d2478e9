package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required,oneof=dev development staging prod production test"`
	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string

	HTTPPort int `validate:"min=0,max=65535"` // 0 disables the inspection server

	// Inspection server security. An empty APIKey leaves /api/v1 open.
	APIKey         string
	TrustedProxies []string
	RateLimit      int           `validate:"min=1"`
	RateWindow     time.Duration `validate:"gt=0"`

	NodesPath string // empty uses the built-in tree table

	TickInterval time.Duration `validate:"gt=0"`
	WorkerCount  int           `validate:"min=1"`
	QueueSize    int           `validate:"min=1"`

	LevelBaseXP float64 `validate:"gte=1"`
	LevelGrowth float64 `validate:"gte=1"`
	MaxLevel    int     `validate:"min=0"`

	ResourceMultiplier   float64 `validate:"gte=0"`
	ExperienceMultiplier float64 `validate:"gte=0"`
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		NodesPath:   getEnv(EnvNodesPath, ""),
		WorkerCount: getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		QueueSize:   getEnvAsInt(EnvQueueSize, DefaultQueueSize),
		MaxLevel:    getEnvAsInt(EnvMaxLevel, DefaultMaxLevel),
		LevelBaseXP: getEnvAsFloat(EnvLevelBaseXP, DefaultLevelBaseXP),
		LevelGrowth: getEnvAsFloat(EnvLevelGrowth, DefaultLevelGrowth),

		ResourceMultiplier:   getEnvAsFloat(EnvResourceMultiplier, DefaultResourceMultiplier),
		ExperienceMultiplier: getEnvAsFloat(EnvExperienceMultiplier, DefaultExperienceMultiplier),
		TickInterval:         getEnvAsDuration(EnvTickInterval, DefaultTickInterval),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RateLimit:      getEnvAsInt(EnvRateLimit, DefaultRateLimit),
		RateWindow:     getEnvAsDuration(EnvRateWindow, DefaultRateWindow),
	}

	portStr := getEnv(EnvHTTPPort, strconv.Itoa(DefaultHTTPPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvHTTPPort, err)
	}
	cfg.HTTPPort = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns the default on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat retrieves a float environment variable or returns the default on absence or parse failure
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration ("250ms", "1s") or returns the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
