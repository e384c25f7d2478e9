package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared.
// Every other variable has a default, so an empty environment is valid.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// Warnings returns non-critical issues with a loaded configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.ResourceMultiplier > suspiciousMultiplier {
		warnings = append(warnings, fmt.Sprintf("%s=%v is unusually high", EnvResourceMultiplier, c.ResourceMultiplier))
	}
	if c.ExperienceMultiplier > suspiciousMultiplier {
		warnings = append(warnings, fmt.Sprintf("%s=%v is unusually high", EnvExperienceMultiplier, c.ExperienceMultiplier))
	}
	if c.ResourceMultiplier == 0 {
		warnings = append(warnings, fmt.Sprintf("%s=0: gathering will never yield resources", EnvResourceMultiplier))
	}
	if c.LevelGrowth == 1 {
		warnings = append(warnings, fmt.Sprintf("%s=1: every level costs the same experience", EnvLevelGrowth))
	}
	if c.WorkerCount > 1 {
		warnings = append(warnings, fmt.Sprintf("%s=%d: session ticks are serialized, extra workers stay idle", EnvWorkerCount, c.WorkerCount))
	}
	if c.APIKey == "" && !c.IsDevelopment() && c.Environment != "test" {
		warnings = append(warnings, fmt.Sprintf("%s is empty: /api/v1 is unauthenticated", EnvAPIKey))
	}

	return warnings
}
