package main

import (
	"github.com/osse101/IdleGather_Go/internal/config"
	"github.com/osse101/IdleGather_Go/internal/logger"
)

// initLogger initializes the logger from the application configuration
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(), // source locations only in dev
	)

	logger.InitLogger(loggerConfig)
}
